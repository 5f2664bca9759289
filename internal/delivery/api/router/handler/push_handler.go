package handler

import (
	"log/slog"
	"net/http"

	"lineconnect/internal/delivery/api/response"
	"lineconnect/internal/delivery/api/validator"
	"lineconnect/internal/domain/entity"
	"lineconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushHandlerParams holds dependencies for PushHandler, injected by Fx.
type PushHandlerParams struct {
	fx.In

	Messenger usecase.OutboundMessenger
	Logger    *slog.Logger
}

// PushHandler lets operators message a linked account.
type PushHandler struct {
	messenger usecase.OutboundMessenger
	logger    *slog.Logger
}

// NewPushHandler is the constructor for PushHandler.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		messenger: params.Messenger,
		logger:    params.Logger,
	}
}

// PushRequest is the body of POST /admin/line/push.
type PushRequest struct {
	AccountID int64    `json:"account_id" validate:"required,gt=0"`
	Messages  []string `json:"messages" validate:"required,min=1,max=5,dive,required,max=5000"`
}

// PushResponse reports the delivery outcome.
type PushResponse struct {
	Status     entity.DeliveryStatus `json:"status"`
	StatusCode int                   `json:"status_code"`
	Attempts   int                   `json:"attempts"`
	RequestID  string                `json:"request_id,omitempty"`
}

// Push sends text messages to an account's chat identity.
func (h *PushHandler) Push(c echo.Context) error {
	var req PushRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid push input", validator.Describe(err))
	}

	messages := make([]entity.Message, 0, len(req.Messages))
	for _, text := range req.Messages {
		messages = append(messages, entity.NewTextMessage(text))
	}

	result, err := h.messenger.PushToAccount(c.Request().Context(), req.AccountID, messages)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PushResponse{
		Status:     result.Status,
		StatusCode: result.StatusCode,
		Attempts:   result.Attempts,
		RequestID:  result.RequestID,
	})
}
