package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lineconnect/config"
	"lineconnect/internal/delivery/api/middleware"
	"lineconnect/internal/delivery/api/response"
	deliverycontext "lineconnect/internal/delivery/context"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/service"
	"lineconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LineAuthHandlerParams holds dependencies for LineAuthHandler, injected by Fx.
type LineAuthHandlerParams struct {
	fx.In

	Auth      usecase.AuthorizationFlow
	ChatLogin usecase.ChatLoginUsecase
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// LineAuthHandler serves the LINE Login handshake endpoints.
type LineAuthHandler struct {
	auth         usecase.AuthorizationFlow
	chatLogin    usecase.ChatLoginUsecase
	qrcode       service.QRCodeService
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
}

// NewLineAuthHandler is the constructor for LineAuthHandler.
func NewLineAuthHandler(params LineAuthHandlerParams) *LineAuthHandler {
	h := &LineAuthHandler{
		auth:      params.Auth,
		chatLogin: params.ChatLogin,
		qrcode:    params.QRCode,
		logger:    params.Logger,
	}
	if params.Config.Auth != nil {
		h.cookieName = params.Config.Auth.CookieName
		h.cookieSecure = params.Config.Auth.CookieSecure
	}

	return h
}

// AuthorizeRequest carries the authorize query parameters.
type AuthorizeRequest struct {
	ReturnURL string `query:"return_url" validate:"omitempty,max=2048"`
	Redirect  bool   `query:"redirect"`
}

// CallbackRequest carries the provider's callback parameters.
type CallbackRequest struct {
	Code             string `query:"code"`
	State            string `query:"state" validate:"required"`
	Error            string `query:"error"`
	ErrorDescription string `query:"error_description"`
}

// Authorize starts a handshake. A signed-in caller starts a link handshake.
func (h *LineAuthHandler) Authorize(c echo.Context) error {
	output, req, err := h.begin(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if req.Redirect {
		return c.Redirect(http.StatusTemporaryRedirect, output.AuthorizeURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": output.AuthorizeURL})
}

// QRCode renders the authorize URL as a PNG so it can be opened on a phone.
func (h *LineAuthHandler) QRCode(c echo.Context) error {
	output, _, err := h.begin(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrcode.GenerateURLQR(output.AuthorizeURL)
	if err != nil {
		return errors.Wrap(err, "failed to render authorize QR code")
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *LineAuthHandler) begin(c echo.Context) (*usecase.BeginAuthorizationOutput, *AuthorizeRequest, error) {
	var req AuthorizeRequest
	if err := c.Bind(&req); err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("invalid authorize parameters")
	}
	if err := c.Validate(&req); err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	input := usecase.BeginAuthorizationInput{ReturnURL: req.ReturnURL}
	if accountID, ok := middleware.GetAccountID(c); ok {
		input.AccountID = &accountID
	}

	output, err := h.auth.BeginAuthorization(c.Request().Context(), input)
	if err != nil {
		return nil, nil, err
	}

	return output, &req, nil
}

// Callback completes the handshake, sets the session cookie and redirects.
func (h *LineAuthHandler) Callback(c echo.Context) error {
	var req CallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid callback parameters")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidState)
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if req.Error != "" {
		logger.Info("Provider returned an authorization error",
			slog.String("error", req.Error),
			slog.String("description", req.ErrorDescription))

		if err := h.auth.AbortCallback(ctx, req.State); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.HandleAppError(c, domainerrors.ErrOAuthDenied)
	}

	output, err := h.chatLogin.CompleteLogin(ctx, req.Code, req.State)
	if err != nil {
		var authErr *usecase.AuthorizationError
		if errors.As(err, &authErr) {
			logger.Warn("Authorization callback failed", slog.String("stage", string(authErr.Stage)), slog.Any("error", err))
		}

		return response.HandleAppError(c, err)
	}

	if output.Conflict != nil {
		logger.Info("Chat identity conflict on callback",
			slog.Int64("accountID", output.AccountID),
			slog.String("outcome", string(output.Conflict.Outcome)))

		return response.Error(c, http.StatusConflict,
			domainerrors.ErrIdentityConflict.ErrorCode(),
			domainerrors.ErrIdentityConflict.Message(),
			map[string]string{"outcome": string(output.Conflict.Outcome)})
	}

	if h.cookieName != "" {
		c.SetCookie(&http.Cookie{
			Name:     h.cookieName,
			Value:    output.SessionToken,
			Path:     "/",
			Expires:  output.SessionExpiresAt,
			MaxAge:   int(time.Until(output.SessionExpiresAt).Seconds()),
			HttpOnly: true,
			Secure:   h.cookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return c.Redirect(http.StatusFound, output.RedirectURL)
}
