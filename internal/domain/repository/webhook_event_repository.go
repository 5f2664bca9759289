package repository

import (
	"context"

	"lineconnect/internal/domain/entity"
)

// WebhookEventRepository is the append-only audit log of accepted webhook events.
type WebhookEventRepository interface {
	Append(ctx context.Context, record *entity.WebhookEventRecord) error

	// ListByExternalID returns the newest records first.
	ListByExternalID(ctx context.Context, externalID string, limit int) ([]*entity.WebhookEventRecord, error)
}
