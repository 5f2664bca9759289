package usecase

import (
	"context"

	"lineconnect/internal/domain/entity"
)

// Dispatch topics. Observers subscribe to TopicAny, to TopicForEvent(type) or
// to TopicForMessage(subtype).
const (
	TopicAny = "webhook"
)

// TopicForEvent returns the type-specific topic.
func TopicForEvent(eventType string) string {
	return TopicAny + "." + eventType
}

// TopicForMessage returns the message-subtype topic.
func TopicForMessage(messageType string) string {
	return TopicAny + "." + entity.EventTypeMessage + "." + messageType
}

// Notification is what observers receive for each accepted event.
type Notification struct {
	Topic      string
	Event      *entity.WebhookEvent
	ExternalID string
	AccountID  *int64 // Nil when the sender has no binding.
}

// Observer reacts to dispatched webhook notifications.
type Observer interface {
	Name() string
	Handle(ctx context.Context, n *Notification) error
}

// ObserverFunc adapts a function into an Observer.
type ObserverFunc struct {
	ID string
	Fn func(ctx context.Context, n *Notification) error
}

func (f ObserverFunc) Name() string { return f.ID }

func (f ObserverFunc) Handle(ctx context.Context, n *Notification) error { return f.Fn(ctx, n) }

// ProcessSummary counts how a batch was handled.
type ProcessSummary struct {
	Received   int
	Processed  int
	Duplicates int
	Unknown    int // Accepted but without a type-specific topic.
	Failed     int
}

// WebhookDispatcher deduplicates, audits and fans out inbound events.
type WebhookDispatcher interface {
	// ProcessEvents handles every event independently; one failure never
	// stops the rest of the batch.
	ProcessEvents(ctx context.Context, events []entity.WebhookEvent) ProcessSummary

	// Subscribe registers an observer for a topic. Observers run in
	// registration order.
	Subscribe(topic string, observer Observer)

	// HasPermission checks an account capability. A nil account has none.
	HasPermission(ctx context.Context, accountID *int64, capability string) (bool, error)
}
