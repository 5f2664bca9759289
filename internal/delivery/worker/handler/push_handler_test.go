package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "lineconnect/internal/delivery/context"
	"lineconnect/internal/domain/entity"
	"lineconnect/internal/domain/service"
	"lineconnect/internal/infra/pubsub"
	mockUsecase "lineconnect/internal/mocks/usecase"
	"lineconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, audience string) (*PushHandler, *mockUsecase.MockWebhookDispatcher) {
	dispatcher := mockUsecase.NewMockWebhookDispatcher(t)

	return &PushHandler{
		audience:   audience,
		validate:   idtoken.Validate,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		dispatcher: dispatcher,
	}, dispatcher
}

func pushBody(t *testing.T, batch *service.WebhookBatch, attributes map[string]string) string {
	data, err := json.Marshal(batch)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DispatchesBatch(t *testing.T) {
	h, dispatcher := newTestPushHandler(t, "")
	batch := &service.WebhookBatch{
		RequestID:   "req-1",
		Destination: "Ubot",
		Events:      []entity.WebhookEvent{{Type: entity.EventTypeFollow, WebhookEventID: "E1"}},
	}

	dispatcher.EXPECT().
		ProcessEvents(mock.Anything, mock.MatchedBy(func(events []entity.WebhookEvent) bool {
			return len(events) == 1 && events[0].WebhookEventID == "E1"
		})).
		Return(usecase.ProcessSummary{Received: 1, Processed: 1}).Once()

	rec := servePush(h, pushBody(t, batch, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_FailedEventsAreNotRedelivered(t *testing.T) {
	h, dispatcher := newTestPushHandler(t, "")
	batch := &service.WebhookBatch{Events: []entity.WebhookEvent{{Type: entity.EventTypeFollow}}}

	dispatcher.EXPECT().ProcessEvents(mock.Anything, mock.Anything).Return(usecase.ProcessSummary{Received: 1, Failed: 1}).Once()

	rec := servePush(h, pushBody(t, batch, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RequestIDFromAttributes(t *testing.T) {
	h, dispatcher := newTestPushHandler(t, "")
	batch := &service.WebhookBatch{Events: []entity.WebhookEvent{{Type: entity.EventTypeFollow}}}

	dispatcher.EXPECT().
		ProcessEvents(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, events []entity.WebhookEvent) usecase.ProcessSummary {
			assert.Equal(t, "from-attribute", deliverycontext.GetRequestIDFromContext(ctx))

			return usecase.ProcessSummary{Received: len(events), Processed: len(events)}
		}).Once()

	rec := servePush(h, pushBody(t, batch, map[string]string{"request_id": "from-attribute"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_BadMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"data not base64", `{"message":{"data":"***"}}`},
		{"data not a batch", `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, dispatcher := newTestPushHandler(t, "")

			rec := servePush(h, tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			dispatcher.AssertNotCalled(t, "ProcessEvents", mock.Anything, mock.Anything)
		})
	}
}

func TestPushHandler_VerifiesTokenWhenAudienceSet(t *testing.T) {
	batch := &service.WebhookBatch{Events: []entity.WebhookEvent{{Type: entity.EventTypeFollow}}}

	tests := []struct {
		name     string
		header   http.Header
		payload  *idtoken.Payload
		err      error
		wantCode int
	}{
		{"missing header", nil, nil, nil, http.StatusUnauthorized},
		{"not bearer", http.Header{"Authorization": {"Basic abc"}}, nil, nil, http.StatusUnauthorized},
		{"invalid token", http.Header{"Authorization": {"Bearer bad"}}, nil, errors.New("bad signature"), http.StatusUnauthorized},
		{"wrong issuer", http.Header{"Authorization": {"Bearer tok"}}, &idtoken.Payload{Issuer: "evil.example"}, nil, http.StatusUnauthorized},
		{"unverified email", http.Header{"Authorization": {"Bearer tok"}}, &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}}, nil, http.StatusUnauthorized},
		{"valid", http.Header{"Authorization": {"Bearer tok"}}, &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, dispatcher := newTestPushHandler(t, "https://worker.example/push")
			h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "https://worker.example/push", audience)

				return tt.payload, tt.err
			}
			if tt.wantCode == http.StatusOK {
				dispatcher.EXPECT().ProcessEvents(mock.Anything, mock.Anything).Return(usecase.ProcessSummary{Received: 1, Processed: 1}).Once()
			}

			rec := servePush(h, pushBody(t, batch, nil), tt.header)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
