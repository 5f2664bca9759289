package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lineconnect/config"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/service"
	"lineconnect/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientConfig(baseURL, token string) *config.Config {
	cfg := &config.Config{Line: &config.LineConfig{}}
	cfg.Line.Messaging.APIBaseURL = baseURL
	cfg.Line.Messaging.ChannelAccessToken = token

	return cfg
}

func TestClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, service.MessagingPushPath, r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "U123", body["to"])

		w.Header().Set("X-Line-Request-Id", "req-1")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(newClientConfig(server.URL+"/", "token-abc"))
	resp, err := client.Post(context.Background(), service.MessagingPushPath, map[string]any{"to": "U123"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-1", resp.RequestID)
}

func TestClient_PostReturnsErrorStatusAsResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer server.Close()

	client := NewClient(newClientConfig(server.URL, "token-abc"))
	resp, err := client.Post(context.Background(), service.MessagingReplyPath, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, resp.Body, "rate limited")
}

func TestClient_PostWithoutToken(t *testing.T) {
	client := NewClient(newClientConfig("http://unused", ""))

	_, err := client.Post(context.Background(), service.MessagingPushPath, map[string]any{})
	assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))
}
