package pubsub

import (
	"context"
	"log/slog"

	"lineconnect/config"
	"lineconnect/internal/domain/constants"
	"lineconnect/internal/domain/service"
	"lineconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishWebhookBatch(ctx context.Context, batch *service.WebhookBatch) error {
	p.logger.Debug("[NoopPubSub] Webhook publishing disabled, skipping",
		slog.Int("event_count", len(batch.Events)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for WebhookPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger

	// Dispatcher is only needed by the inline provider
	Dispatcher usecase.WebhookDispatcher `optional:"true"`
}

// NewWebhookPublisher creates a WebhookPublisher based on configuration
func NewWebhookPublisher(params PublisherParams) (service.WebhookPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.WebhookPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderInline:
		if params.Dispatcher == nil {
			return nil, errors.New("inline provider requires a webhook dispatcher")
		}
		logger.Info("Using inline webhook processing",
			slog.Duration("processing_timeout", cfg.ProcessingTimeout),
		)

		publisher = NewInlinePublisher(params.Dispatcher, cfg.ProcessingTimeout, logger)

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing WebhookPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewWebhookPublisher),
)
