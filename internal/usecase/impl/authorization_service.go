// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"time"

	"lineconnect/config"
	deliverycontext "lineconnect/internal/delivery/context"
	"lineconnect/internal/domain/entity"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/service"
	"lineconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	handshakeKeyPrefix = "handshake:"
	stateTokenBytes    = 16
)

// authorizationService implements the AuthorizationFlow interface.
type authorizationService struct {
	stateStore      service.StateStore
	loginClient     service.LoginClient
	metrics         service.Metrics
	defaultRedirect string
	allowedHosts    []string
	ttl             time.Duration
	now             func() time.Time
	logger          *slog.Logger
}

// AuthorizationServiceParams holds dependencies for AuthorizationService, injected by Fx.
type AuthorizationServiceParams struct {
	fx.In

	StateStore  service.StateStore
	LoginClient service.LoginClient
	Metrics     service.Metrics `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthorizationService creates the handshake controller.
func NewAuthorizationService(params AuthorizationServiceParams) usecase.AuthorizationFlow {
	return newAuthorizationService(params)
}

func newAuthorizationService(params AuthorizationServiceParams) *authorizationService {
	srv := &authorizationService{
		stateStore:      params.StateStore,
		loginClient:     params.LoginClient,
		metrics:         params.Metrics,
		defaultRedirect: "/",
		ttl:             usecase.HandshakeTTL,
		now:             time.Now,
		logger:          params.Logger,
	}
	if srv.metrics == nil {
		srv.metrics = service.NopMetrics{}
	}
	if params.Config != nil && params.Config.Redirect != nil {
		if params.Config.Redirect.Default != "" {
			srv.defaultRedirect = params.Config.Redirect.Default
		}
		srv.allowedHosts = params.Config.Redirect.AllowedHosts
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authorizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginAuthorization stores a fresh handshake and builds the provider URL.
func (srv *authorizationService) BeginAuthorization(ctx context.Context, input usecase.BeginAuthorizationInput) (*usecase.BeginAuthorizationOutput, error) {
	token, err := newStateToken()
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithCause(err)
	}

	handshake := &entity.HandshakeState{
		ReturnURL: srv.sanitizeReturnURL(input.ReturnURL),
		AccountID: input.AccountID,
		CreatedAt: srv.now().UTC(),
	}
	payload, err := json.Marshal(handshake)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode handshake state")
	}

	if err := srv.stateStore.Put(ctx, handshakeKeyPrefix+token, payload, srv.ttl); err != nil {
		srv.log(ctx).Error("Failed to store handshake state", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store handshake state")
	}

	srv.log(ctx).Debug("Authorization handshake started",
		slog.String("stage", string(entity.StageAwaitingCallback)),
		slog.Bool("link", handshake.IsLinkFlow()),
		slog.String("returnURL", handshake.ReturnURL))

	return &usecase.BeginAuthorizationOutput{
		AuthorizeURL: srv.loginClient.BuildAuthorizationURL(token),
		State:        token,
		ReturnURL:    handshake.ReturnURL,
	}, nil
}

// HandleCallback consumes the handshake state and resolves the remote profile.
func (srv *authorizationService) HandleCallback(ctx context.Context, code, state string) (*usecase.CallbackOutput, error) {
	handshake, err := srv.consumeHandshake(ctx, state)
	if err != nil {
		return nil, srv.fail(ctx, entity.StageAwaitingCallback, err)
	}
	srv.log(ctx).Debug("Handshake validated", slog.String("stage", string(entity.StageValidated)))

	if code == "" {
		return nil, srv.fail(ctx, entity.StageValidated, domainerrors.ErrInvalidState.WithDetails("authorization code is missing"))
	}

	tokens, err := srv.loginClient.ExchangeCode(ctx, code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrMissingCredentials) {
			return nil, srv.fail(ctx, entity.StageValidated, err)
		}

		return nil, srv.fail(ctx, entity.StageValidated, domainerrors.ErrTokenExchangeFailed.WithDetails(err.Error()).WithCause(err))
	}
	srv.log(ctx).Debug("Authorization code exchanged", slog.String("stage", string(entity.StageTokenExchanged)))

	profile, err := srv.loginClient.FetchProfile(ctx, tokens.AccessToken)
	if err != nil {
		return nil, srv.fail(ctx, entity.StageTokenExchanged, domainerrors.ErrProfileFetchFailed.WithDetails(err.Error()).WithCause(err))
	}
	if profile == nil || profile.ExternalID == "" {
		return nil, srv.fail(ctx, entity.StageTokenExchanged, domainerrors.ErrProfileFetchFailed.WithDetails("profile has no user id"))
	}

	if tokens.IDToken != "" {
		email, err := srv.loginClient.EmailFromIDToken(tokens.IDToken)
		if err != nil {
			// The email is optional; an unverifiable ID token only loses it.
			srv.log(ctx).Warn("Discarding email from unverifiable ID token", slog.Any("error", err))
		} else {
			profile.Email = email
		}
	}

	srv.metrics.AuthCallback(string(entity.StageComplete))
	srv.log(ctx).Info("Authorization handshake complete",
		slog.String("stage", string(entity.StageComplete)),
		slog.String("externalID", profile.ExternalID),
		slog.Bool("link", handshake.IsLinkFlow()))

	return &usecase.CallbackOutput{
		Handshake: handshake,
		Profile:   profile,
		Stage:     entity.StageProfileFetched,
	}, nil
}

// AbortCallback burns the state of a handshake the provider reported as denied.
func (srv *authorizationService) AbortCallback(ctx context.Context, state string) error {
	if _, err := srv.consumeHandshake(ctx, state); err != nil {
		return srv.fail(ctx, entity.StageAwaitingCallback, err)
	}

	return srv.fail(ctx, entity.StageAwaitingCallback, domainerrors.ErrOAuthDenied)
}

// consumeHandshake takes the state exactly once and rejects stale entries.
func (srv *authorizationService) consumeHandshake(ctx context.Context, state string) (*entity.HandshakeState, error) {
	if state == "" {
		return nil, domainerrors.ErrInvalidState.WithDetails("state is missing")
	}

	payload, err := srv.stateStore.Take(ctx, handshakeKeyPrefix+state)
	if errors.Is(err, service.ErrStateNotFound) {
		return nil, domainerrors.ErrInvalidState.WithDetails("state is unknown or already used")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read handshake state")
	}

	var handshake entity.HandshakeState
	if err := json.Unmarshal(payload, &handshake); err != nil {
		return nil, domainerrors.ErrInvalidState.WithDetails("state payload is malformed").WithCause(err)
	}

	// The store's own expiry may lag behind.
	if handshake.Expired(srv.now(), srv.ttl) {
		return nil, domainerrors.ErrInvalidState.WithDetails("state has expired")
	}

	return &handshake, nil
}

func (srv *authorizationService) fail(ctx context.Context, stage entity.FlowStage, err error) error {
	srv.metrics.AuthCallback(string(entity.StageFailed))
	srv.log(ctx).Warn("Authorization handshake failed",
		slog.String("stage", string(entity.StageFailed)),
		slog.String("failedAfter", string(stage)),
		slog.Any("error", err))

	return &usecase.AuthorizationError{Stage: stage, Err: err}
}

// sanitizeReturnURL keeps relative paths and allowed hosts, anything else
// falls back to the default redirect.
func (srv *authorizationService) sanitizeReturnURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return srv.defaultRedirect
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return srv.defaultRedirect
	}

	if parsed.Scheme == "" && parsed.Host == "" {
		// Reject protocol-relative and backslash tricks.
		if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
			return srv.defaultRedirect
		}

		return raw
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return srv.defaultRedirect
	}
	if slices.Contains(srv.allowedHosts, strings.ToLower(parsed.Hostname())) {
		return raw
	}

	return srv.defaultRedirect
}

func newStateToken() (string, error) {
	buf := make([]byte, stateTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate state token")
	}

	return hex.EncodeToString(buf), nil
}
