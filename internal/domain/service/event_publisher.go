package service

import (
	"context"

	"lineconnect/internal/domain/entity"
)

// WebhookBatch is the unit handed from the webhook endpoint to the dispatcher.
type WebhookBatch struct {
	RequestID   string                `json:"request_id,omitempty"` // For distributed tracing
	Destination string                `json:"destination"`
	Events      []entity.WebhookEvent `json:"events"`
}

// WebhookPublisher hands verified webhook batches to asynchronous processing,
// so processing does not depend on the inbound connection staying open.
type WebhookPublisher interface {
	PublishWebhookBatch(ctx context.Context, batch *WebhookBatch) error

	// Close releases any resources held by the publisher
	Close() error
}
