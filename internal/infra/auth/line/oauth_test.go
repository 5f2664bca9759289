package line

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"lineconnect/config"
	domainerrors "lineconnect/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(serverURL string) *config.Config {
	cfg := &config.Config{
		Line: &config.LineConfig{
			Login: config.LineLoginConfig{
				ChannelID:     "1234567890",
				ChannelSecret: "channel-secret",
				CallbackURL:   "https://shop.example.com/auth/line/callback",
				Scopes:        []string{"profile", "openid", "email"},
				BotPrompt:     "aggressive",
				AuthorizeURL:  "https://access.line.me/oauth2/v2.1/authorize",
				TokenURL:      serverURL + "/oauth2/v2.1/token",
				ProfileURL:    serverURL + "/v2/profile",
			},
		},
	}

	return cfg
}

func TestLoginClient_BuildAuthorizationURL(t *testing.T) {
	client := NewLoginClient(newTestConfig("http://unused"))

	raw := client.BuildAuthorizationURL("abc123")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "access.line.me", u.Host)
	assert.Equal(t, "/oauth2/v2.1/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "1234567890", q.Get("client_id"))
	assert.Equal(t, "https://shop.example.com/auth/line/callback", q.Get("redirect_uri"))
	assert.Equal(t, "abc123", q.Get("state"))
	assert.Equal(t, "profile openid email", q.Get("scope"))
	assert.Equal(t, "aggressive", q.Get("bot_prompt"))
}

func TestLoginClient_BuildAuthorizationURL_NoBotPrompt(t *testing.T) {
	cfg := newTestConfig("http://unused")
	cfg.Line.Login.BotPrompt = ""
	client := NewLoginClient(cfg)

	u, err := url.Parse(client.BuildAuthorizationURL("s"))
	require.NoError(t, err)
	assert.False(t, u.Query().Has("bot_prompt"))
}

func TestLoginClient_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth2/v2.1/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "https://shop.example.com/auth/line/callback", r.PostForm.Get("redirect_uri"))
		assert.Equal(t, "1234567890", r.PostForm.Get("client_id"))
		assert.Equal(t, "channel-secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-xyz",
			"token_type":   "Bearer",
			"expires_in":   2592000,
			"id_token":     "id-token",
		})
	}))
	defer server.Close()

	client := NewLoginClient(newTestConfig(server.URL))
	token, err := client.ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "access-xyz", token.AccessToken)
	assert.Equal(t, "id-token", token.IDToken)
}

func TestLoginClient_ExchangeCode_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"code expired"}`))
	}))
	defer server.Close()

	client := NewLoginClient(newTestConfig(server.URL))
	_, err := client.ExchangeCode(context.Background(), "stale")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "invalid_grant: code expired")
}

func TestLoginClient_ExchangeCode_MissingCredentials(t *testing.T) {
	cfg := newTestConfig("http://unused")
	cfg.Line.Login.ChannelSecret = ""
	client := NewLoginClient(cfg)

	_, err := client.ExchangeCode(context.Background(), "code")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))
}

func TestLoginClient_FetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-xyz", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"userId":"U123","displayName":"Alice","pictureUrl":"https://img/a.png","statusMessage":"hi"}`))
	}))
	defer server.Close()

	client := NewLoginClient(newTestConfig(server.URL))
	profile, err := client.FetchProfile(context.Background(), "access-xyz")
	require.NoError(t, err)
	assert.Equal(t, "U123", profile.ExternalID)
	assert.Equal(t, "Alice", profile.DisplayName)
	assert.Equal(t, "https://img/a.png", profile.AvatarURL)
}

func TestLoginClient_FetchProfile_MissingUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"displayName":"Alice"}`))
	}))
	defer server.Close()

	client := NewLoginClient(newTestConfig(server.URL))
	_, err := client.FetchProfile(context.Background(), "access-xyz")
	assert.Error(t, err)
}

func TestLoginClient_FetchProfile_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer server.Close()

	client := NewLoginClient(newTestConfig(server.URL))
	_, err := client.FetchProfile(context.Background(), "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func signIDToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestLoginClient_EmailFromIDToken(t *testing.T) {
	client := NewLoginClient(newTestConfig("http://unused"))
	now := time.Now()

	valid := signIDToken(t, "channel-secret", jwt.MapClaims{
		"iss":   "https://access.line.me",
		"sub":   "U123",
		"aud":   "1234567890",
		"exp":   now.Add(time.Hour).Unix(),
		"iat":   now.Unix(),
		"email": "alice@example.com",
	})
	email, err := client.EmailFromIDToken(valid)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)

	wrongAudience := signIDToken(t, "channel-secret", jwt.MapClaims{
		"iss": "https://access.line.me",
		"aud": "other-channel",
		"exp": now.Add(time.Hour).Unix(),
	})
	_, err = client.EmailFromIDToken(wrongAudience)
	assert.Error(t, err)

	wrongSecret := signIDToken(t, "not-the-secret", jwt.MapClaims{
		"iss": "https://access.line.me",
		"aud": "1234567890",
		"exp": now.Add(time.Hour).Unix(),
	})
	_, err = client.EmailFromIDToken(wrongSecret)
	assert.Error(t, err)

	email, err = client.EmailFromIDToken("")
	require.NoError(t, err)
	assert.Empty(t, email)
}
