package main

import (
	"context"
	"log/slog"
	"os"

	"lineconnect/config"
	"lineconnect/internal/delivery"
	"lineconnect/internal/delivery/api"
	"lineconnect/internal/delivery/api/middleware"
	"lineconnect/internal/delivery/api/router/handler"
	"lineconnect/internal/domain/service"
	"lineconnect/internal/infra/auth"
	"lineconnect/internal/infra/auth/line"
	"lineconnect/internal/infra/cache"
	logs "lineconnect/internal/infra/log"
	"lineconnect/internal/infra/messaging"
	"lineconnect/internal/infra/metrics"
	"lineconnect/internal/infra/persistence/postgres"
	"lineconnect/internal/infra/pubsub"
	"lineconnect/internal/infra/qrcode"
	"lineconnect/internal/usecase"
	"lineconnect/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			impl.RegisterObservers,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			cache.NewStores,
		),
		metrics.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewBindingRepository,
			postgres.NewSyncLogRepository,
			postgres.NewWebhookEventRepository,
			postgres.NewDeliveryLogRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			line.NewLoginClient,
			messaging.NewClient,
			messaging.NewSignatureVerifier,
			messaging.NewPayloadParser,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityLedger,
			impl.NewAuthorizationService,
			impl.NewProfileSyncService,
			impl.NewMessengerService,
			impl.NewWebhookDispatcher,
			impl.NewChatLoginService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			// The dispatcher owns the capability rules.
			func(d usecase.WebhookDispatcher) middleware.PermissionChecker { return d },
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLineAuthHandler,
			handler.NewWebhookHandler,
			handler.NewAccountLinkHandler,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
