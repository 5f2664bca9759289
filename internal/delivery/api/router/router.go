// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lineconnect/config"
	"lineconnect/internal/delivery/api/middleware"
	"lineconnect/internal/delivery/api/router/handler"
	"lineconnect/internal/domain/constants"
	"lineconnect/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LineAuthHandler    *handler.LineAuthHandler
	WebhookHandler     *handler.WebhookHandler
	AccountLinkHandler *handler.AccountLinkHandler
	PushHandler        *handler.PushHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Metrics            *metrics.PrometheusMetrics `optional:"true"`
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	lineAuthHandler    *handler.LineAuthHandler
	webhookHandler     *handler.WebhookHandler
	accountLinkHandler *handler.AccountLinkHandler
	pushHandler        *handler.PushHandler
	authMiddleware     *middleware.AuthMiddleware
	metrics            *metrics.PrometheusMetrics
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		lineAuthHandler:    params.LineAuthHandler,
		webhookHandler:     params.WebhookHandler,
		accountLinkHandler: params.AccountLinkHandler,
		pushHandler:        params.PushHandler,
		authMiddleware:     params.AuthMiddleware,
		metrics:            params.Metrics,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Handshake routes; a valid session turns the handshake into a link
	authGroup := e.Group("/auth/line")
	{
		authGroup.GET("/authorize", r.lineAuthHandler.Authorize, r.authMiddleware.OptionalAuthenticate)
		authGroup.GET("/qrcode", r.lineAuthHandler.QRCode, r.authMiddleware.OptionalAuthenticate)
		authGroup.GET("/callback", r.lineAuthHandler.Callback)
	}

	// Authenticated by signature, not by session
	e.POST("/webhook/line", r.webhookHandler.Receive)

	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/line", r.accountLinkHandler.GetStatus)
		meGroup.DELETE("/line", r.accountLinkHandler.Unlink)
	}

	adminGroup := e.Group("/admin/line")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireCapability(constants.CapabilityManageOptions))
	{
		adminGroup.POST("/push", r.pushHandler.Push)
	}

	r.registerMetrics(e)
}

func (r *router) registerMetrics(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	path := r.config.Metrics.Path
	if path == "" {
		path = "/metrics"
	}
	e.GET(path, echo.WrapHandler(r.metrics.Handler()))
}
