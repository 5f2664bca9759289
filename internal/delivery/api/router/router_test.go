package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lineconnect/config"
	apimiddleware "lineconnect/internal/delivery/api/middleware"
	"lineconnect/internal/delivery/api/router/handler"
	"lineconnect/internal/delivery/api/validator"
	"lineconnect/internal/domain/constants"
	"lineconnect/internal/domain/entity"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/service"
	"lineconnect/internal/infra/auth"
	"lineconnect/internal/infra/messaging"
	"lineconnect/internal/infra/metrics"
	"lineconnect/internal/infra/qrcode"
	mockSvc "lineconnect/internal/mocks/service"
	mockUsecase "lineconnect/internal/mocks/usecase"
	"lineconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	channelSecret = "channel-secret"
	cookieName    = "lc_session"
	authorizeURL  = "https://access.line.me/oauth2/v2.1/authorize?response_type=code&state=abc"
)

type apiFixtures struct {
	echo       *echo.Echo
	tokens     service.TokenService
	auth       *mockUsecase.MockAuthorizationFlow
	chatLogin  *mockUsecase.MockChatLoginUsecase
	messenger  *mockUsecase.MockOutboundMessenger
	dispatcher *mockUsecase.MockWebhookDispatcher
	publisher  *mockSvc.MockWebhookPublisher
}

func newTestAPI(t *testing.T) apiFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Auth:    &config.AuthConfig{CookieName: cookieName, SessionTTL: time.Hour},
		Line:    &config.LineConfig{Messaging: config.LineMessagingConfig{ChannelSecret: channelSecret}},
		Metrics: &config.MetricsConfig{Enabled: true},
	}
	cfg.SecretKey.Access = "test-access-secret"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	parser, err := messaging.NewPayloadParser()
	require.NoError(t, err)

	fx := apiFixtures{
		tokens:     tokens,
		auth:       mockUsecase.NewMockAuthorizationFlow(t),
		chatLogin:  mockUsecase.NewMockChatLoginUsecase(t),
		messenger:  mockUsecase.NewMockOutboundMessenger(t),
		dispatcher: mockUsecase.NewMockWebhookDispatcher(t),
		publisher:  mockSvc.NewMockWebhookPublisher(t),
	}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		LineAuthHandler: handler.NewLineAuthHandler(handler.LineAuthHandlerParams{
			Auth:      fx.auth,
			ChatLogin: fx.chatLogin,
			QRCode:    qrcode.NewQRCodeService(256, "M"),
			Config:    cfg,
			Logger:    logger,
		}),
		WebhookHandler: handler.NewWebhookHandler(handler.WebhookHandlerParams{
			Verifier:  messaging.NewSignatureVerifier(cfg),
			Parser:    parser,
			Publisher: fx.publisher,
			Logger:    logger,
		}),
		AccountLinkHandler: handler.NewAccountLinkHandler(handler.AccountLinkHandlerParams{ChatLogin: fx.chatLogin, Logger: logger}),
		PushHandler:        handler.NewPushHandler(handler.PushHandlerParams{Messenger: fx.messenger, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			TokenService: tokens,
			Permissions:  fx.dispatcher,
			Config:       cfg,
			Logger:       logger,
		}),
		Metrics: metrics.NewPrometheusMetrics(logger),
		Config:  cfg,
	}).RegisterRoutes(e)
	fx.echo = e

	return fx
}

func (fx apiFixtures) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func (fx apiFixtures) bearer(t *testing.T, accountID int64) string {
	token, _, err := fx.tokens.GenerateSessionToken(accountID, []string{"customer"})
	require.NoError(t, err)

	return "Bearer " + token
}

func webhookRequest(body, signature string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhook/line", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set(constants.HeaderLineSignature, signature)
	}

	return req
}

func sign(body string) string {
	return messaging.SignBase64([]byte(channelSecret), []byte(body))
}

func TestRouter_Health(t *testing.T) {
	fx := newTestAPI(t)

	rec := fx.serve(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestWebhook_AcceptsSignedBatch(t *testing.T) {
	fx := newTestAPI(t)
	body := `{"destination":"Ubot","events":[{"type":"follow","webhookEventId":"E1","replyToken":"rt","source":{"type":"user","userId":"U1"}}]}`

	fx.publisher.EXPECT().
		PublishWebhookBatch(mock.Anything, mock.MatchedBy(func(b *service.WebhookBatch) bool {
			return b.Destination == "Ubot" && len(b.Events) == 1 && b.Events[0].WebhookEventID == "E1"
		})).
		Return(nil).Once()

	rec := fx.serve(webhookRequest(body, sign(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accepted":1`)
}

func TestWebhook_Rejections(t *testing.T) {
	valid := `{"events":[{"type":"follow"}]}`
	noEvents := `{"destination":"Ubot"}`

	tests := []struct {
		name      string
		body      string
		signature string
		wantCode  int
	}{
		{"missing signature", valid, "", http.StatusUnauthorized},
		{"wrong signature", valid, sign(valid + " "), http.StatusUnauthorized},
		{"signature not base64", valid, "***", http.StatusUnauthorized},
		{"schema failure", noEvents, sign(noEvents), http.StatusBadRequest},
		{"not json", "{", sign("{"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newTestAPI(t)

			rec := fx.serve(webhookRequest(tt.body, tt.signature))

			assert.Equal(t, tt.wantCode, rec.Code)
			fx.publisher.AssertNotCalled(t, "PublishWebhookBatch", mock.Anything, mock.Anything)
		})
	}
}

func TestWebhook_VerifyRequestWithoutEvents(t *testing.T) {
	fx := newTestAPI(t)
	body := `{"destination":"Ubot","events":[]}`

	rec := fx.serve(webhookRequest(body, sign(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	fx.publisher.AssertNotCalled(t, "PublishWebhookBatch", mock.Anything, mock.Anything)
}

func TestWebhook_PublishFailureAsksForRedelivery(t *testing.T) {
	fx := newTestAPI(t)
	body := `{"events":[{"type":"follow","webhookEventId":"E1"}]}`

	fx.publisher.EXPECT().PublishWebhookBatch(mock.Anything, mock.Anything).Return(errors.New("topic unavailable")).Once()

	rec := fx.serve(webhookRequest(body, sign(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "topic unavailable")
}

func TestAuthorize_ReturnsURL(t *testing.T) {
	fx := newTestAPI(t)

	fx.auth.EXPECT().
		BeginAuthorization(mock.Anything, usecase.BeginAuthorizationInput{ReturnURL: "/cart"}).
		Return(&usecase.BeginAuthorizationOutput{AuthorizeURL: authorizeURL, State: "abc", ReturnURL: "/cart"}, nil).Once()

	rec := fx.serve(httptest.NewRequest(http.MethodGet, "/auth/line/authorize?return_url=/cart", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, authorizeURL, body.Data.URL)
}

func TestAuthorize_SignedInStartsLinkAndRedirects(t *testing.T) {
	fx := newTestAPI(t)
	accountID := int64(7)

	fx.auth.EXPECT().
		BeginAuthorization(mock.Anything, usecase.BeginAuthorizationInput{AccountID: &accountID}).
		Return(&usecase.BeginAuthorizationOutput{AuthorizeURL: authorizeURL, State: "abc"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/auth/line/authorize?redirect=true", nil)
	req.Header.Set(echo.HeaderAuthorization, fx.bearer(t, accountID))
	rec := fx.serve(req)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, authorizeURL, rec.Header().Get(echo.HeaderLocation))
}

func TestAuthorize_StateStoreFailure(t *testing.T) {
	fx := newTestAPI(t)

	fx.auth.EXPECT().BeginAuthorization(mock.Anything, mock.Anything).Return(nil, errors.New("redis down")).Once()

	rec := fx.serve(httptest.NewRequest(http.MethodGet, "/auth/line/authorize", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestQRCode_ReturnsPNG(t *testing.T) {
	fx := newTestAPI(t)

	fx.auth.EXPECT().
		BeginAuthorization(mock.Anything, mock.Anything).
		Return(&usecase.BeginAuthorizationOutput{AuthorizeURL: authorizeURL, State: "abc"}, nil).Once()

	rec := fx.serve(httptest.NewRequest(http.MethodGet, "/auth/line/qrcode", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}

func TestCallback_SetsCookieAndRedirects(t *testing.T) {
	fx := newTestAPI(t)

	fx.chatLogin.EXPECT().
		CompleteLogin(mock.Anything, "code-1", "state-1").
		Return(&usecase.ChatLoginOutput{
			AccountID:        7,
			Action:           entity.SyncActionLogin,
			RedirectURL:      "/cart",
			SessionToken:     "session-token",
			SessionExpiresAt: time.Now().Add(time.Hour),
		}, nil).Once()

	rec := fx.serve(httptest.NewRequest(http.MethodGet, "/auth/line/callback?code=code-1&state=state-1", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/cart", rec.Header().Get(echo.HeaderLocation))
	cookie := rec.Header().Get(echo.HeaderSetCookie)
	assert.Contains(t, cookie, cookieName+"=session-token")
	assert.Contains(t, cookie, "HttpOnly")
}

func TestCallback_Conflict(t *testing.T) {
	fx := newTestAPI(t)

	fx.chatLogin.EXPECT().
		CompleteLogin(mock.Anything, "code-1", "state-1").
		Return(&usecase.ChatLoginOutput{
			AccountID: 7,
			Conflict:  &usecase.LinkResult{Outcome: usecase.LinkOutcomeExternalIDTaken},
		}, nil).Once()

	rec := fx.serve(httptest.NewRequest(http.MethodGet, "/auth/line/callback?code=code-1&state=state-1", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "IDENTITY_CONFLICT")
	assert.Empty(t, rec.Header().Get(echo.HeaderSetCookie))
}

func TestCallback_Failures(t *testing.T) {
	t.Run("replayed state", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.chatLogin.EXPECT().
			CompleteLogin(mock.Anything, "code-1", "used").
			Return(nil, &usecase.AuthorizationError{Stage: entity.StageAwaitingCallback, Err: domainerrors.ErrInvalidState}).Once()

		rec := fx.serve(httptest.NewRequest(http.MethodGet, "/auth/line/callback?code=code-1&state=used", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_STATE")
	})

	t.Run("missing state", func(t *testing.T) {
		fx := newTestAPI(t)

		rec := fx.serve(httptest.NewRequest(http.MethodGet, "/auth/line/callback?code=code-1", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("provider denied", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.auth.EXPECT().AbortCallback(mock.Anything, "state-1").Return(domainerrors.ErrOAuthDenied).Once()

		rec := fx.serve(httptest.NewRequest(http.MethodGet, "/auth/line/callback?error=access_denied&state=state-1", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "OAUTH_DENIED")
	})
}

func TestMeLine_RequiresSession(t *testing.T) {
	fx := newTestAPI(t)

	rec := fx.serve(httptest.NewRequest(http.MethodGet, "/me/line", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeLine_StatusFromCookie(t *testing.T) {
	fx := newTestAPI(t)
	linkedAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	token, _, err := fx.tokens.GenerateSessionToken(7, nil)
	require.NoError(t, err)

	fx.chatLogin.EXPECT().
		LinkStatus(mock.Anything, int64(7)).
		Return(&usecase.LinkStatus{Linked: true, ExternalID: "U1", LinkedAt: &linkedAt}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/me/line", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	rec := fx.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"linked":true`)
	assert.Contains(t, rec.Body.String(), `"external_id":"U1"`)
}

func TestMeLine_Unlink(t *testing.T) {
	fx := newTestAPI(t)

	fx.chatLogin.EXPECT().Unlink(mock.Anything, int64(7)).Return(nil).Once()
	fx.chatLogin.EXPECT().Unlink(mock.Anything, int64(8)).Return(domainerrors.ErrAccountNotLinked).Once()

	req := httptest.NewRequest(http.MethodDelete, "/me/line", nil)
	req.Header.Set(echo.HeaderAuthorization, fx.bearer(t, 7))
	assert.Equal(t, http.StatusNoContent, fx.serve(req).Code)

	req = httptest.NewRequest(http.MethodDelete, "/me/line", nil)
	req.Header.Set(echo.HeaderAuthorization, fx.bearer(t, 8))
	assert.Equal(t, http.StatusNotFound, fx.serve(req).Code)
}

func pushRequest(t *testing.T, fx apiFixtures, accountID int64, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/line/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, fx.bearer(t, accountID))

	return req
}

func TestAdminPush_RequiresCapability(t *testing.T) {
	fx := newTestAPI(t)

	fx.dispatcher.EXPECT().
		HasPermission(mock.Anything, mock.MatchedBy(func(id *int64) bool { return id != nil && *id == 7 }), constants.CapabilityManageOptions).
		Return(false, nil).Once()

	rec := fx.serve(pushRequest(t, fx, 7, `{"account_id":9,"messages":["hi"]}`))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	fx.messenger.AssertNotCalled(t, "PushToAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminPush_SendsText(t *testing.T) {
	fx := newTestAPI(t)

	fx.dispatcher.EXPECT().HasPermission(mock.Anything, mock.Anything, constants.CapabilityManageOptions).Return(true, nil).Once()
	fx.messenger.EXPECT().
		PushToAccount(mock.Anything, int64(9), mock.MatchedBy(func(msgs []entity.Message) bool {
			return len(msgs) == 1 && msgs[0]["text"] == "hi"
		})).
		Return(&usecase.DeliveryResult{Status: entity.DeliveryStatusSuccess, StatusCode: 200, Attempts: 1}, nil).Once()

	rec := fx.serve(pushRequest(t, fx, 1, `{"account_id":9,"messages":["hi"]}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
}

func TestAdminPush_Validation(t *testing.T) {
	fx := newTestAPI(t)

	fx.dispatcher.EXPECT().HasPermission(mock.Anything, mock.Anything, constants.CapabilityManageOptions).Return(true, nil).Once()

	rec := fx.serve(pushRequest(t, fx, 1, `{"account_id":9,"messages":[]}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"messages":"min"`)
}

func TestAdminPush_UnlinkedAccount(t *testing.T) {
	fx := newTestAPI(t)

	fx.dispatcher.EXPECT().HasPermission(mock.Anything, mock.Anything, constants.CapabilityManageOptions).Return(true, nil).Once()
	fx.messenger.EXPECT().PushToAccount(mock.Anything, int64(9), mock.Anything).Return(nil, domainerrors.ErrAccountNotLinked).Once()

	rec := fx.serve(pushRequest(t, fx, 1, `{"account_id":9,"messages":["hi"]}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_Exposed(t *testing.T) {
	fx := newTestAPI(t)

	rec := fx.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil).WithContext(context.Background()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
