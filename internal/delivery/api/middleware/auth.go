package middleware

import (
	"context"
	"log/slog"
	"strings"

	"lineconnect/config"
	"lineconnect/internal/delivery/api/response"
	deliverycontext "lineconnect/internal/delivery/context"
	"lineconnect/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const keyAccountID = "accountID"

// PermissionChecker decides whether an account holds a capability.
type PermissionChecker interface {
	HasPermission(ctx context.Context, accountID *int64, capability string) (bool, error)
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Permissions  PermissionChecker
	Config       *config.Config
	Logger       *slog.Logger
}

// AuthMiddleware authenticates session tokens issued after a chat login.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	permissions PermissionChecker
	cookieName  string
	logger      *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	cookieName := ""
	if params.Config.Auth != nil {
		cookieName = params.Config.Auth.CookieName
	}

	return &AuthMiddleware{
		tokenSvc:    params.TokenService,
		permissions: params.Permissions,
		cookieName:  cookieName,
		logger:      params.Logger,
	}
}

// Authenticate rejects requests without a valid session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.extractToken(c)
		if token == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
		}

		claims, err := m.tokenSvc.ValidateToken(token)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		setIdentity(c, claims)

		return next(c)
	}
}

// OptionalAuthenticate attaches the session identity when a valid token is
// present and lets the request through either way.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := m.extractToken(c); token != "" {
			if claims, err := m.tokenSvc.ValidateToken(token); err == nil {
				setIdentity(c, claims)
			}
		}

		return next(c)
	}
}

// RequireCapability checks the authenticated account for a capability.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireCapability(capability string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			accountID, ok := GetAccountID(c)
			if !ok {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied")
			}

			allowed, err := m.permissions.HasPermission(c.Request().Context(), &accountID, capability)
			if err != nil {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
					Error("Permission check failed", slog.Int64("accountID", accountID), slog.Any("error", err))

				return response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
			}
			if !allowed {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: requires '"+capability+"'")
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if token, found := strings.CutPrefix(header, "Bearer "); found {
			return strings.TrimSpace(token)
		}

		return ""
	}

	if m.cookieName == "" {
		return ""
	}
	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func setIdentity(c echo.Context, claims *service.Claims) {
	c.Set(keyAccountID, claims.AccountID)
}

// GetAccountID returns the authenticated account id.
func GetAccountID(c echo.Context) (int64, bool) {
	id, ok := c.Get(keyAccountID).(int64)

	return id, ok && id > 0
}
