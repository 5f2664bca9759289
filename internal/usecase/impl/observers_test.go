package impl

import (
	"context"
	"testing"

	"lineconnect/config"
	"lineconnect/internal/domain/constants"
	"lineconnect/internal/domain/entity"
	mockRepo "lineconnect/internal/mocks/repository"
	mockUsecase "lineconnect/internal/mocks/usecase"
	"lineconnect/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func replyText(want string) interface{} {
	return mock.MatchedBy(func(msgs []entity.Message) bool {
		return len(msgs) == 1 && msgs[0]["text"] == want
	})
}

func TestRegisterObservers_SubscribesBuiltins(t *testing.T) {
	dispatcher := mockUsecase.NewMockWebhookDispatcher(t)
	messenger := mockUsecase.NewMockOutboundMessenger(t)
	events := mockRepo.NewMockWebhookEventRepository(t)

	dispatcher.EXPECT().Subscribe("webhook.follow", mock.AnythingOfType("*impl.followGreeter")).Return().Once()
	dispatcher.EXPECT().Subscribe("webhook.message.text", mock.AnythingOfType("*impl.commandObserver")).Return().Once()

	RegisterObservers(ObserverParams{
		Dispatcher: dispatcher,
		Messenger:  messenger,
		Events:     events,
		Config:     &config.Config{Line: &config.LineConfig{Messaging: config.LineMessagingConfig{WelcomeMessage: "Welcome!"}}},
		Logger:     newDiscardLogger(),
	})
}

func TestFollowGreeter_Handle(t *testing.T) {
	messenger := mockUsecase.NewMockOutboundMessenger(t)
	greeter := &followGreeter{messenger: messenger, welcome: "Welcome!"}
	ctx := context.Background()

	messenger.EXPECT().Reply(ctx, "rt-1", usecase.Recipient{ExternalID: "U1"}, replyText("Welcome!")).Return(&usecase.DeliveryResult{}, nil).Once()

	err := greeter.Handle(ctx, &usecase.Notification{Event: &entity.WebhookEvent{Type: entity.EventTypeFollow, ReplyToken: "rt-1"}, ExternalID: "U1"})

	require.NoError(t, err)
}

func newTestCommandObserver(t *testing.T) (*commandObserver, *mockUsecase.MockWebhookDispatcher, *mockUsecase.MockOutboundMessenger, *mockRepo.MockWebhookEventRepository) {
	dispatcher := mockUsecase.NewMockWebhookDispatcher(t)
	messenger := mockUsecase.NewMockOutboundMessenger(t)
	events := mockRepo.NewMockWebhookEventRepository(t)

	return &commandObserver{
		permissions: dispatcher,
		messenger:   messenger,
		events:      events,
		logger:      newDiscardLogger(),
	}, dispatcher, messenger, events
}

func commandNotification(text string, accountID *int64) *usecase.Notification {
	event := textEvent("E1", "U1", text)

	return &usecase.Notification{Topic: "webhook.message.text", Event: &event, ExternalID: "U1", AccountID: accountID}
}

func TestCommandObserver_Status(t *testing.T) {
	observer, _, messenger, _ := newTestCommandObserver(t)
	ctx := context.Background()

	messenger.EXPECT().
		Reply(ctx, "rt-E1", usecase.Recipient{ExternalID: "U1", AccountID: int64Ptr(5)}, replyText("This LINE account is linked to site account #5.")).
		Return(&usecase.DeliveryResult{}, nil).Once()

	require.NoError(t, observer.Handle(ctx, commandNotification(" /STATUS ", int64Ptr(5))))
}

func TestCommandObserver_StatsRequiresCapability(t *testing.T) {
	observer, dispatcher, messenger, _ := newTestCommandObserver(t)
	ctx := context.Background()

	dispatcher.EXPECT().HasPermission(ctx, (*int64)(nil), constants.CapabilityViewReports).Return(false, nil).Once()
	messenger.EXPECT().
		Reply(ctx, "rt-E1", usecase.Recipient{ExternalID: "U1"}, replyText("You do not have permission to view reports.")).
		Return(&usecase.DeliveryResult{}, nil).Once()

	require.NoError(t, observer.Handle(ctx, commandNotification("/stats", nil)))
}

func TestCommandObserver_StatsAllowed(t *testing.T) {
	observer, dispatcher, messenger, events := newTestCommandObserver(t)
	ctx := context.Background()

	dispatcher.EXPECT().HasPermission(ctx, int64Ptr(5), constants.CapabilityViewReports).Return(true, nil).Once()
	events.EXPECT().ListByExternalID(ctx, "U1", recentEventsLimit).Return([]*entity.WebhookEventRecord{
		{EventType: entity.EventTypeMessage},
		{EventType: entity.EventTypeMessage},
		{EventType: entity.EventTypeFollow},
	}, nil).Once()
	messenger.EXPECT().
		Reply(ctx, "rt-E1", usecase.Recipient{ExternalID: "U1", AccountID: int64Ptr(5)}, replyText("Your last 3 events:\nmessage: 2\nfollow: 1\npostback: 0")).
		Return(&usecase.DeliveryResult{}, nil).Once()

	require.NoError(t, observer.Handle(ctx, commandNotification("/stats", int64Ptr(5))))
}

func TestCommandObserver_IgnoresOrdinaryText(t *testing.T) {
	observer, _, _, _ := newTestCommandObserver(t)

	assert.NoError(t, observer.Handle(context.Background(), commandNotification("hello there", nil)))
}
