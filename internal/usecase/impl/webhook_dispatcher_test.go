package impl

import (
	"context"
	"sync"
	"testing"

	"lineconnect/internal/domain/constants"
	"lineconnect/internal/domain/entity"
	"lineconnect/internal/domain/repository"
	"lineconnect/internal/infra/cache"
	mockRepo "lineconnect/internal/mocks/repository"
	mockSvc "lineconnect/internal/mocks/service"
	mockUsecase "lineconnect/internal/mocks/usecase"
	"lineconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type webhookDispatcherFixtures struct {
	dispatcher *webhookDispatcher
	dedup      *mockSvc.MockDedupCache
	ledger     *mockUsecase.MockIdentityLedger
	events     *mockRepo.MockWebhookEventRepository
	accounts   *mockRepo.MockAccountRepository
}

func createTestWebhookDispatcher(t *testing.T) webhookDispatcherFixtures {
	dedup := mockSvc.NewMockDedupCache(t)
	ledger := mockUsecase.NewMockIdentityLedger(t)
	events := mockRepo.NewMockWebhookEventRepository(t)
	accounts := mockRepo.NewMockAccountRepository(t)

	dispatcher := newWebhookDispatcher(WebhookDispatcherParams{
		Dedup:    dedup,
		Ledger:   ledger,
		Events:   events,
		Accounts: accounts,
		Logger:   newDiscardLogger(),
	})

	return webhookDispatcherFixtures{dispatcher: dispatcher, dedup: dedup, ledger: ledger, events: events, accounts: accounts}
}

// topicRecorder collects the topics it was notified on.
type topicRecorder struct {
	mu     sync.Mutex
	topics []string
	err    error
}

func (r *topicRecorder) Name() string { return "recorder" }

func (r *topicRecorder) Handle(_ context.Context, n *usecase.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topics = append(r.topics, n.Topic)

	return r.err
}

func (r *topicRecorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.topics...)
}

func subscribeAll(d *webhookDispatcher, o usecase.Observer, topics ...string) {
	for _, topic := range topics {
		d.Subscribe(topic, o)
	}
}

func textEvent(id, userID, text string) entity.WebhookEvent {
	return entity.WebhookEvent{
		Type:           entity.EventTypeMessage,
		WebhookEventID: id,
		ReplyToken:     "rt-" + id,
		Source:         &entity.EventSource{Type: "user", UserID: userID},
		Message:        &entity.EventMessage{ID: "m-" + id, Type: entity.MessageTypeText, Text: text},
	}
}

func TestWebhookDispatcher_ProcessEvents_DispatchOrder(t *testing.T) {
	fx := createTestWebhookDispatcher(t)
	ctx := context.Background()
	recorder := &topicRecorder{}
	subscribeAll(fx.dispatcher, recorder, "webhook", "webhook.message", "webhook.message.text", "webhook.follow")

	fx.dedup.EXPECT().MarkIfAbsent(ctx, "webhook:E1", DedupTTL).Return(true, nil).Once()
	fx.ledger.EXPECT().FindAccountByExternalID(ctx, "U1").Return(int64Ptr(5), nil).Once()
	fx.events.EXPECT().
		Append(ctx, mock.MatchedBy(func(r *entity.WebhookEventRecord) bool {
			return r.EventType == "message" && r.MessageType == "text" && r.AccountID != nil && *r.AccountID == 5 && r.WebhookEventID == "E1"
		})).
		Return(nil).Once()

	summary := fx.dispatcher.ProcessEvents(ctx, []entity.WebhookEvent{textEvent("E1", "U1", "hello")})

	assert.Equal(t, usecase.ProcessSummary{Received: 1, Processed: 1}, summary)
	assert.Equal(t, []string{"webhook", "webhook.message", "webhook.message.text"}, recorder.seen())
}

func TestWebhookDispatcher_ProcessEvents_DuplicateSkippedEntirely(t *testing.T) {
	fx := createTestWebhookDispatcher(t)
	ctx := context.Background()
	recorder := &topicRecorder{}
	fx.dispatcher.Subscribe(usecase.TopicAny, recorder)

	fx.dedup.EXPECT().MarkIfAbsent(ctx, "webhook:E1", DedupTTL).Return(false, nil).Once()

	summary := fx.dispatcher.ProcessEvents(ctx, []entity.WebhookEvent{textEvent("E1", "U1", "hello")})

	assert.Equal(t, 1, summary.Duplicates)
	assert.Empty(t, recorder.seen())
}

func TestWebhookDispatcher_ProcessEvents_UnknownTypeGenericOnly(t *testing.T) {
	fx := createTestWebhookDispatcher(t)
	ctx := context.Background()
	recorder := &topicRecorder{}
	subscribeAll(fx.dispatcher, recorder, "webhook", "webhook.membership")

	event := entity.WebhookEvent{Type: "membership", WebhookEventID: "E2", Source: &entity.EventSource{UserID: "U1"}}
	fx.dedup.EXPECT().MarkIfAbsent(ctx, "webhook:E2", DedupTTL).Return(true, nil).Once()
	fx.ledger.EXPECT().FindAccountByExternalID(ctx, "U1").Return(nil, nil).Once()
	fx.events.EXPECT().Append(ctx, mock.Anything).Return(nil).Once()

	summary := fx.dispatcher.ProcessEvents(ctx, []entity.WebhookEvent{event})

	assert.Equal(t, 1, summary.Unknown)
	assert.Equal(t, []string{"webhook"}, recorder.seen())
}

func TestWebhookDispatcher_ProcessEvents_UnknownMessageTypeStopsAtMessageTopic(t *testing.T) {
	fx := createTestWebhookDispatcher(t)
	ctx := context.Background()
	recorder := &topicRecorder{}
	subscribeAll(fx.dispatcher, recorder, "webhook", "webhook.message", "webhook.message.imagemap")

	event := textEvent("E3", "U1", "")
	event.Message.Type = "imagemap"
	fx.dedup.EXPECT().MarkIfAbsent(ctx, "webhook:E3", DedupTTL).Return(true, nil).Once()
	fx.ledger.EXPECT().FindAccountByExternalID(ctx, "U1").Return(nil, nil).Once()
	fx.events.EXPECT().Append(ctx, mock.Anything).Return(nil).Once()

	fx.dispatcher.ProcessEvents(ctx, []entity.WebhookEvent{event})

	assert.Equal(t, []string{"webhook", "webhook.message"}, recorder.seen())
}

func TestWebhookDispatcher_ProcessEvents_ObserverFailureDoesNotStopBatch(t *testing.T) {
	fx := createTestWebhookDispatcher(t)
	ctx := context.Background()
	failing := &topicRecorder{err: errors.New("boom")}
	panicking := usecase.ObserverFunc{ID: "panics", Fn: func(context.Context, *usecase.Notification) error { panic("observer bug") }}
	recorder := &topicRecorder{}
	fx.dispatcher.Subscribe(usecase.TopicAny, failing)
	fx.dispatcher.Subscribe(usecase.TopicAny, panicking)
	fx.dispatcher.Subscribe(usecase.TopicAny, recorder)

	fx.dedup.EXPECT().MarkIfAbsent(ctx, mock.Anything, DedupTTL).Return(true, nil).Twice()
	fx.ledger.EXPECT().FindAccountByExternalID(ctx, "U1").Return(nil, nil).Twice()
	fx.events.EXPECT().Append(ctx, mock.Anything).Return(nil).Twice()

	summary := fx.dispatcher.ProcessEvents(ctx, []entity.WebhookEvent{
		textEvent("E1", "U1", "a"),
		textEvent("E2", "U1", "b"),
	})

	assert.Equal(t, 2, summary.Failed)
	assert.Len(t, recorder.seen(), 2)
}

func TestWebhookDispatcher_ProcessEvents_NoEventIDSkipsDedup(t *testing.T) {
	fx := createTestWebhookDispatcher(t)
	ctx := context.Background()

	fx.ledger.EXPECT().FindAccountByExternalID(ctx, "").Return(nil, nil).Once()
	fx.events.EXPECT().Append(ctx, mock.Anything).Return(nil).Once()

	summary := fx.dispatcher.ProcessEvents(ctx, []entity.WebhookEvent{{Type: entity.EventTypeJoin}})

	assert.Equal(t, 1, summary.Processed)
}

func TestWebhookDispatcher_ProcessEvents_ReplayWithRealCacheDispatchesOnce(t *testing.T) {
	store := cache.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	ledger := mockUsecase.NewMockIdentityLedger(t)
	events := mockRepo.NewMockWebhookEventRepository(t)
	dispatcher := newWebhookDispatcher(WebhookDispatcherParams{
		Dedup:  store,
		Ledger: ledger,
		Events: events,
		Logger: newDiscardLogger(),
	})
	recorder := &topicRecorder{}
	dispatcher.Subscribe(usecase.TopicForMessage(entity.MessageTypeText), recorder)

	ledger.EXPECT().FindAccountByExternalID(mock.Anything, "U1").Return(nil, nil).Once()
	events.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

	ctx := context.Background()
	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dispatcher.ProcessEvents(ctx, []entity.WebhookEvent{textEvent("E-replayed", "U1", "hi")})
		}()
	}
	wg.Wait()

	assert.Len(t, recorder.seen(), 1)
}

func TestWebhookDispatcher_HasPermission(t *testing.T) {
	tests := []struct {
		name    string
		account *entity.Account
		want    bool
	}{
		{"administrator", &entity.Account{ID: 1, Roles: entity.Roles{entity.RoleAdministrator}}, true},
		{"shop manager", &entity.Account{ID: 1, Roles: entity.Roles{entity.RoleShopManager}}, true},
		{"editor", &entity.Account{ID: 1, Roles: entity.Roles{entity.RoleEditor}}, true},
		{"customer with capability", &entity.Account{ID: 1, Roles: entity.Roles{entity.RoleCustomer}, Capabilities: []string{constants.CapabilityViewReports}}, true},
		{"customer without capability", &entity.Account{ID: 1, Roles: entity.Roles{entity.RoleCustomer}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestWebhookDispatcher(t)
			ctx := context.Background()
			fx.accounts.EXPECT().FindByID(ctx, int64(1)).Return(tt.account, nil).Once()

			got, err := fx.dispatcher.HasPermission(ctx, int64Ptr(1), constants.CapabilityViewReports)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWebhookDispatcher_HasPermission_NoAccount(t *testing.T) {
	fx := createTestWebhookDispatcher(t)
	ctx := context.Background()

	got, err := fx.dispatcher.HasPermission(ctx, nil, constants.CapabilityViewReports)
	require.NoError(t, err)
	assert.False(t, got)

	fx.accounts.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrAccountNotFound).Once()
	got, err = fx.dispatcher.HasPermission(ctx, int64Ptr(9), constants.CapabilityViewReports)
	require.NoError(t, err)
	assert.False(t, got)
}
