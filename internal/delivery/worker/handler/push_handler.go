package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"lineconnect/config"
	deliverycontext "lineconnect/internal/delivery/context"
	"lineconnect/internal/domain/service"
	"lineconnect/internal/infra/pubsub"
	"lineconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks a Google-signed OIDC token for an audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying webhook batches.
type PushHandler struct {
	audience   string
	validate   tokenValidator
	logger     *slog.Logger
	dispatcher usecase.WebhookDispatcher
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Dispatcher usecase.WebhookDispatcher
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are
// verified only when an audience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	audience := ""
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		audience:   audience,
		validate:   idtoken.Validate,
		logger:     params.Logger,
		dispatcher: params.Dispatcher,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPushToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	batch, err := pushMsg.DecodeBatch()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode webhook batch",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, batch)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing webhook batch",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("destination", batch.Destination),
		slog.Int("event_count", len(batch.Events)),
	)

	// Per-event failures are final once recorded; redelivery would only hit the dedup cache.
	summary := h.dispatcher.ProcessEvents(ctx, batch.Events)

	reqLogger.Info("[Worker] Webhook batch processed",
		slog.Int("processed", summary.Processed),
		slog.Int("duplicates", summary.Duplicates),
		slog.Int("unknown", summary.Unknown),
		slog.Int("failed", summary.Failed),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the batch, then the inbound header, then a fresh id.
func (h *PushHandler) extractRequestID(ctx context.Context, batch *service.WebhookBatch) string {
	if batch.RequestID != "" {
		return batch.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPushToken verifies the JWT Google Pub/Sub attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPushToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := h.validate(req.Context(), token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
