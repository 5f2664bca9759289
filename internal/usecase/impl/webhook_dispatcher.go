package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "lineconnect/internal/delivery/context"
	"lineconnect/internal/domain/entity"
	"lineconnect/internal/domain/repository"
	"lineconnect/internal/domain/service"
	"lineconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// DedupTTL is how long a webhook event id is remembered.
	DedupTTL = 60 * time.Second

	dedupKeyPrefix = "webhook:"
)

// Per-event results reported to metrics.
const (
	eventResultProcessed = "processed"
	eventResultDuplicate = "duplicate"
	eventResultUnknown   = "unknown"
	eventResultFailed    = "failed"
)

// webhookDispatcher implements the WebhookDispatcher interface. Observers are
// kept per topic in registration order.
type webhookDispatcher struct {
	dedup    service.DedupCache
	ledger   usecase.IdentityLedger
	events   repository.WebhookEventRepository
	accounts repository.AccountRepository
	metrics  service.Metrics
	now      func() time.Time
	logger   *slog.Logger

	mu        sync.RWMutex
	observers map[string][]usecase.Observer
}

// WebhookDispatcherParams holds dependencies for WebhookDispatcher, injected by Fx.
type WebhookDispatcherParams struct {
	fx.In

	Dedup    service.DedupCache
	Ledger   usecase.IdentityLedger
	Events   repository.WebhookEventRepository
	Accounts repository.AccountRepository
	Metrics  service.Metrics `optional:"true"`
	Logger   *slog.Logger
}

// NewWebhookDispatcher creates a dispatcher with no observers.
func NewWebhookDispatcher(params WebhookDispatcherParams) usecase.WebhookDispatcher {
	return newWebhookDispatcher(params)
}

func newWebhookDispatcher(params WebhookDispatcherParams) *webhookDispatcher {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &webhookDispatcher{
		dedup:     params.Dedup,
		ledger:    params.Ledger,
		events:    params.Events,
		accounts:  params.Accounts,
		metrics:   metrics,
		now:       time.Now,
		logger:    params.Logger,
		observers: make(map[string][]usecase.Observer),
	}
}

func (d *webhookDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Subscribe registers an observer for a topic.
func (d *webhookDispatcher) Subscribe(topic string, observer usecase.Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.observers[topic] = append(d.observers[topic], observer)
	d.logger.Debug("Observer subscribed", slog.String("topic", topic), slog.String("observer", observer.Name()))
}

// ProcessEvents handles each event on its own; failures are logged and counted.
func (d *webhookDispatcher) ProcessEvents(ctx context.Context, events []entity.WebhookEvent) usecase.ProcessSummary {
	summary := usecase.ProcessSummary{Received: len(events)}

	for i := range events {
		result := d.processEvent(ctx, &events[i])
		d.metrics.WebhookEvent(result)

		switch result {
		case eventResultDuplicate:
			summary.Duplicates++
		case eventResultFailed:
			summary.Failed++
		case eventResultUnknown:
			summary.Unknown++
			summary.Processed++
		default:
			summary.Processed++
		}
	}

	d.log(ctx).Info("Webhook batch processed",
		slog.Int("received", summary.Received),
		slog.Int("processed", summary.Processed),
		slog.Int("duplicates", summary.Duplicates),
		slog.Int("failed", summary.Failed))

	return summary
}

func (d *webhookDispatcher) processEvent(ctx context.Context, event *entity.WebhookEvent) string {
	logger := d.log(ctx).With(slog.String("eventType", event.Type), slog.String("webhookEventID", event.WebhookEventID))

	if event.WebhookEventID != "" {
		fresh, err := d.dedup.MarkIfAbsent(ctx, dedupKeyPrefix+event.WebhookEventID, DedupTTL)
		if err != nil {
			// Without the cache we still process; observers see at-least-once delivery.
			logger.Warn("Dedup cache unavailable", slog.Any("error", err))
		} else if !fresh {
			logger.Debug("Skipping duplicate webhook event")

			return eventResultDuplicate
		}
	}

	externalID := event.SourceUserID()
	accountID, err := d.ledger.FindAccountByExternalID(ctx, externalID)
	if err != nil {
		logger.Warn("Failed to resolve event sender", slog.Any("error", err))
		accountID = nil
	}

	record := &entity.WebhookEventRecord{
		EventType:      event.Type,
		MessageType:    event.MessageType(),
		ExternalID:     externalID,
		AccountID:      accountID,
		WebhookEventID: event.WebhookEventID,
		Redelivery:     event.IsRedelivery(),
		ReceivedAt:     d.now().UTC(),
	}
	failed := false
	if err := d.events.Append(ctx, record); err != nil {
		logger.Error("Failed to record webhook event", slog.Any("error", err))
		failed = true
	}

	base := usecase.Notification{Event: event, ExternalID: externalID, AccountID: accountID}

	topics := []string{usecase.TopicAny}
	known := entity.IsKnownEventType(event.Type)
	if known {
		topics = append(topics, usecase.TopicForEvent(event.Type))
		if event.Type == entity.EventTypeMessage && entity.IsKnownMessageType(event.MessageType()) {
			topics = append(topics, usecase.TopicForMessage(event.MessageType()))
		}
	}

	for _, topic := range topics {
		notification := base
		notification.Topic = topic
		if !d.publish(ctx, &notification) {
			failed = true
		}
	}

	switch {
	case failed:
		return eventResultFailed
	case !known:
		return eventResultUnknown
	default:
		return eventResultProcessed
	}
}

// publish runs every observer of the notification's topic and reports whether all succeeded.
func (d *webhookDispatcher) publish(ctx context.Context, n *usecase.Notification) bool {
	d.mu.RLock()
	observers := append([]usecase.Observer(nil), d.observers[n.Topic]...)
	d.mu.RUnlock()

	ok := true
	for _, observer := range observers {
		if err := d.dispatchToObserver(ctx, observer, n); err != nil {
			d.log(ctx).Error("Observer failed",
				slog.String("topic", n.Topic),
				slog.String("observer", observer.Name()),
				slog.Any("error", err))
			ok = false
		}
	}

	return ok
}

func (d *webhookDispatcher) dispatchToObserver(ctx context.Context, observer usecase.Observer, n *usecase.Notification) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("observer panicked: %v", r)
		}
	}()

	return observer.Handle(ctx, n)
}

// HasPermission grants administrators and elevated roles everything, others
// only their individually granted capabilities.
func (d *webhookDispatcher) HasPermission(ctx context.Context, accountID *int64, capability string) (bool, error) {
	if accountID == nil || *accountID <= 0 {
		return false, nil
	}

	account, err := d.accounts.FindByID(ctx, *accountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to load account for permission check")
	}

	if account.Roles.Contains(entity.RoleAdministrator) {
		return true, nil
	}
	for _, role := range account.Roles {
		if role.IsElevated() {
			return true, nil
		}
	}

	return account.HasCapability(capability), nil
}
