package handler

import (
	"io"
	"log/slog"
	"net/http"

	"lineconnect/internal/delivery/api/response"
	deliverycontext "lineconnect/internal/delivery/context"
	"lineconnect/internal/domain/constants"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	Verifier  service.SignatureVerifier
	Parser    service.WebhookPayloadParser
	Publisher service.WebhookPublisher
	Logger    *slog.Logger
}

// WebhookHandler accepts Messaging API webhooks. It verifies and validates the
// body, hands the batch off and answers without waiting for processing.
type WebhookHandler struct {
	verifier  service.SignatureVerifier
	parser    service.WebhookPayloadParser
	publisher service.WebhookPublisher
	logger    *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler.
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		verifier:  params.Verifier,
		parser:    params.Parser,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// Receive handles POST /webhook/line.
func (h *WebhookHandler) Receive(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	// The signature covers the exact bytes, so the body is read before any decoding.
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("could not read request body"))
	}

	if err := h.verifier.Verify(body, c.Request().Header.Get(constants.HeaderLineSignature)); err != nil {
		logger.Warn("Rejected webhook", slog.Any("error", err), slog.String("remote_ip", c.RealIP()))

		return response.HandleAppError(c, err)
	}

	payload, err := h.parser.Parse(body)
	if err != nil {
		logger.Warn("Webhook payload failed validation", slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	// Console "verify" requests carry no events.
	if len(payload.Events) == 0 {
		return response.Success(c, http.StatusOK, map[string]int{"accepted": 0})
	}

	batch := &service.WebhookBatch{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Destination: payload.Destination,
		Events:      payload.Events,
	}
	if err := h.publisher.PublishWebhookBatch(ctx, batch); err != nil {
		// A non-2xx answer makes the platform redeliver the batch.
		return errors.Wrap(err, "failed to hand off webhook batch")
	}

	logger.Info("Accepted webhook batch", slog.Int("event_count", len(payload.Events)))

	return response.Success(c, http.StatusOK, map[string]int{"accepted": len(payload.Events)})
}
