package impl

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"lineconnect/internal/domain/entity"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/service"
	mockRepo "lineconnect/internal/mocks/repository"
	mockSvc "lineconnect/internal/mocks/service"
	mockUsecase "lineconnect/internal/mocks/usecase"
	"lineconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messengerFixtures struct {
	service      *messengerService
	client       *mockSvc.MockMessagingClient
	ledger       *mockUsecase.MockIdentityLedger
	deliveryLogs *mockRepo.MockDeliveryLogRepository
	sleeps       *[]time.Duration
}

func createTestMessengerService(t *testing.T) messengerFixtures {
	client := mockSvc.NewMockMessagingClient(t)
	ledger := mockUsecase.NewMockIdentityLedger(t)
	deliveryLogs := mockRepo.NewMockDeliveryLogRepository(t)

	srv := newMessengerService(MessengerServiceParams{
		Client:       client,
		Ledger:       ledger,
		DeliveryLogs: deliveryLogs,
		Logger:       newDiscardLogger(),
	})
	sleeps := &[]time.Duration{}
	srv.sleep = func(_ context.Context, d time.Duration) error {
		*sleeps = append(*sleeps, d)

		return nil
	}

	return messengerFixtures{service: srv, client: client, ledger: ledger, deliveryLogs: deliveryLogs, sleeps: sleeps}
}

func textMessages(texts ...string) []entity.Message {
	msgs := make([]entity.Message, 0, len(texts))
	for _, text := range texts {
		msgs = append(msgs, entity.NewTextMessage(text))
	}

	return msgs
}

func TestMessengerService_Push_Success(t *testing.T) {
	fx := createTestMessengerService(t)
	ctx := context.Background()

	fx.ledger.EXPECT().FindAccountByExternalID(ctx, "U123").Return(int64Ptr(5), nil).Once()
	fx.client.EXPECT().
		Post(mock.Anything, service.MessagingPushPath, mock.MatchedBy(func(body map[string]any) bool {
			return body["to"] == "U123"
		})).
		Return(&service.MessagingResponse{StatusCode: http.StatusOK, RequestID: "req-1"}, nil).Once()
	fx.deliveryLogs.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(l *entity.DeliveryLog) bool {
			return l.Status == entity.DeliveryStatusSuccess && l.Kind == entity.DeliveryKindPush &&
				l.AccountID != nil && *l.AccountID == 5 && l.Attempts == 1
		})).
		Return(nil).Once()

	result, err := fx.service.Push(ctx, "U123", textMessages("hi"))

	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusSuccess, result.Status)
	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, "req-1", result.RequestID)
	assert.Empty(t, *fx.sleeps)
}

func TestMessengerService_Push_UnlinkedMakesNoNetworkCall(t *testing.T) {
	fx := createTestMessengerService(t)
	ctx := context.Background()

	fx.ledger.EXPECT().FindAccountByExternalID(ctx, "U123").Return(nil, nil).Once()

	result, err := fx.service.Push(ctx, "U123", textMessages("hi"))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotLinked))
	fx.client.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything)
}

func TestMessengerService_PushToAccount_Unlinked(t *testing.T) {
	fx := createTestMessengerService(t)
	ctx := context.Background()

	fx.ledger.EXPECT().FindExternalIDByAccount(ctx, int64(7)).Return("", nil).Once()

	_, err := fx.service.PushToAccount(ctx, 7, textMessages("hi"))

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotLinked))
}

func TestMessengerService_SendRequest_RateLimitedThreeTimes(t *testing.T) {
	fx := createTestMessengerService(t)
	ctx := context.Background()

	fx.ledger.EXPECT().FindExternalIDByAccount(ctx, int64(5)).Return("U123", nil).Once()
	fx.client.EXPECT().
		Post(mock.Anything, service.MessagingPushPath, mock.Anything).
		Return(&service.MessagingResponse{StatusCode: http.StatusTooManyRequests, Body: `{"message":"rate limit"}`}, nil).
		Times(3)
	fx.deliveryLogs.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(l *entity.DeliveryLog) bool {
			return l.Status == entity.DeliveryStatusFailed && l.Attempts == 3 && l.StatusCode == http.StatusTooManyRequests
		})).
		Return(nil).Once()

	result, err := fx.service.PushToAccount(ctx, 5, textMessages("hi"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRetryableDeliveryFailure))
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, *fx.sleeps)
}

func TestMessengerService_SendRequest_NotFoundIsTerminal(t *testing.T) {
	fx := createTestMessengerService(t)
	ctx := context.Background()

	fx.client.EXPECT().
		Post(mock.Anything, service.MessagingReplyPath, mock.Anything).
		Return(&service.MessagingResponse{StatusCode: http.StatusNotFound}, nil).Once()
	fx.deliveryLogs.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

	result, err := fx.service.Reply(ctx, "reply-token", usecase.Recipient{}, textMessages("hi"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTerminalDeliveryFailure))
	assert.Equal(t, 1, result.Attempts)
	assert.Empty(t, *fx.sleeps)
}

func TestMessengerService_SendRequest_TransportErrorThenSuccess(t *testing.T) {
	fx := createTestMessengerService(t)
	ctx := context.Background()

	fx.client.EXPECT().
		Post(mock.Anything, service.MessagingReplyPath, mock.Anything).
		Return(nil, errors.New("connection reset by peer")).Once()
	fx.client.EXPECT().
		Post(mock.Anything, service.MessagingReplyPath, mock.Anything).
		Return(&service.MessagingResponse{StatusCode: http.StatusInternalServerError}, nil).Once()
	fx.client.EXPECT().
		Post(mock.Anything, service.MessagingReplyPath, mock.Anything).
		Return(&service.MessagingResponse{StatusCode: http.StatusOK}, nil).Once()
	fx.deliveryLogs.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(l *entity.DeliveryLog) bool {
			return l.Status == entity.DeliveryStatusSuccess && l.Attempts == 3 && l.ErrorDetail == ""
		})).
		Return(nil).Once()

	result, err := fx.service.Reply(ctx, "reply-token", usecase.Recipient{}, textMessages("hi"))

	require.NoError(t, err)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, *fx.sleeps)
}

func TestMessengerService_SendRequest_MissingTokenNotRetried(t *testing.T) {
	fx := createTestMessengerService(t)
	ctx := context.Background()

	fx.client.EXPECT().
		Post(mock.Anything, service.MessagingReplyPath, mock.Anything).
		Return(nil, domainerrors.ErrMissingCredentials).Once()
	fx.deliveryLogs.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

	result, err := fx.service.Reply(ctx, "reply-token", usecase.Recipient{}, textMessages("hi"))

	assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))
	assert.Equal(t, 1, result.Attempts)
}

func TestMessengerService_SendRequest_CancelledDuringBackoff(t *testing.T) {
	fx := createTestMessengerService(t)
	ctx, cancel := context.WithCancel(context.Background())
	fx.service.sleep = func(ctx context.Context, _ time.Duration) error {
		cancel()

		return ctx.Err()
	}

	fx.client.EXPECT().
		Post(mock.Anything, service.MessagingReplyPath, mock.Anything).
		Return(&service.MessagingResponse{StatusCode: http.StatusServiceUnavailable}, nil).Once()
	fx.deliveryLogs.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

	result, err := fx.service.Reply(ctx, "reply-token", usecase.Recipient{}, textMessages("hi"))

	assert.True(t, errors.Is(err, domainerrors.ErrRetryableDeliveryFailure))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, result.Attempts)
}

func TestMessengerService_Reply_RecordsRecipient(t *testing.T) {
	fx := createTestMessengerService(t)
	ctx := context.Background()

	fx.client.EXPECT().
		Post(mock.Anything, service.MessagingReplyPath, mock.Anything).
		Return(&service.MessagingResponse{StatusCode: http.StatusOK}, nil).Once()
	fx.deliveryLogs.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(l *entity.DeliveryLog) bool {
			return l.Kind == entity.DeliveryKindReply && l.ExternalID == "U1" && l.AccountID != nil && *l.AccountID == 5
		})).
		Return(nil).Once()

	_, err := fx.service.Reply(ctx, "reply-token", usecase.Recipient{ExternalID: "U1", AccountID: int64Ptr(5)}, textMessages("hi"))

	require.NoError(t, err)
}

func TestMessengerService_ErrorDetailKeepsValidUTF8(t *testing.T) {
	fx := createTestMessengerService(t)
	ctx := context.Background()
	body := strings.Repeat("a", maxErrorDetailLength-1) + "錯誤"

	fx.client.EXPECT().
		Post(mock.Anything, service.MessagingReplyPath, mock.Anything).
		Return(&service.MessagingResponse{StatusCode: http.StatusBadRequest, Body: body}, nil).Once()
	fx.deliveryLogs.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(l *entity.DeliveryLog) bool {
			return utf8.ValidString(l.ErrorDetail) && len(l.ErrorDetail) <= maxErrorDetailLength
		})).
		Return(nil).Once()

	_, err := fx.service.Reply(ctx, "reply-token", usecase.Recipient{}, textMessages("hi"))

	require.Error(t, err)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "abc", 5, "abc"},
		{"ascii cut", "abcdef", 3, "abc"},
		{"mid rune backs off", "ab錯", 4, "ab"},
		{"rune boundary", "ab錯c", 5, "ab錯"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)

			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestMessengerService_ValidateMessages(t *testing.T) {
	fx := createTestMessengerService(t)
	ctx := context.Background()

	_, err := fx.service.Reply(ctx, "token", usecase.Recipient{}, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.Reply(ctx, "token", usecase.Recipient{}, textMessages("1", "2", "3", "4", "5", "6"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.Reply(ctx, "token", usecase.Recipient{}, []entity.Message{{"text": "no type"}})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.Reply(ctx, "", usecase.Recipient{}, textMessages("hi"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSleepContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sleepContext(ctx, time.Hour)

	assert.ErrorIs(t, err, context.Canceled)
}
