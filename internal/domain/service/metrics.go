package service

import "lineconnect/internal/domain/entity"

// Metrics receives operational counters from the use cases.
type Metrics interface {
	WebhookEvent(result string)
	Delivery(kind entity.DeliveryKind, status entity.DeliveryStatus, attempts int)
	AuthCallback(result string)
	Link(outcome string)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) WebhookEvent(string) {}

func (NopMetrics) Delivery(entity.DeliveryKind, entity.DeliveryStatus, int) {}

func (NopMetrics) AuthCallback(string) {}

func (NopMetrics) Link(string) {}
