package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lineconnect/internal/delivery/api/middleware"
	"lineconnect/internal/delivery/api/response"
	"lineconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountLinkHandlerParams holds dependencies for AccountLinkHandler, injected by Fx.
type AccountLinkHandlerParams struct {
	fx.In

	ChatLogin usecase.ChatLoginUsecase
	Logger    *slog.Logger
}

// AccountLinkHandler lets a signed-in account inspect and remove its binding.
type AccountLinkHandler struct {
	chatLogin usecase.ChatLoginUsecase
	logger    *slog.Logger
}

// NewAccountLinkHandler is the constructor for AccountLinkHandler.
func NewAccountLinkHandler(params AccountLinkHandlerParams) *AccountLinkHandler {
	return &AccountLinkHandler{
		chatLogin: params.ChatLogin,
		logger:    params.Logger,
	}
}

// LinkStatusResponse is the body of GET /me/line.
type LinkStatusResponse struct {
	Linked           bool       `json:"linked"`
	ExternalID       string     `json:"external_id,omitempty"`
	LinkedAt         *time.Time `json:"linked_at,omitempty"`
	RegisteredByChat bool       `json:"registered_by_chat"`
}

// GetStatus reports the caller's binding.
func (h *AccountLinkHandler) GetStatus(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account in token")
	}

	status, err := h.chatLogin.LinkStatus(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LinkStatusResponse{
		Linked:           status.Linked,
		ExternalID:       status.ExternalID,
		LinkedAt:         status.LinkedAt,
		RegisteredByChat: status.RegisteredByChat,
	})
}

// Unlink removes the caller's binding.
func (h *AccountLinkHandler) Unlink(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account in token")
	}

	if err := h.chatLogin.Unlink(c.Request().Context(), accountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
