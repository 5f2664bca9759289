package repository

import (
	"context"

	"lineconnect/internal/domain/entity"
)

// DeliveryLogRepository is the append-only log of outbound sends.
type DeliveryLogRepository interface {
	Append(ctx context.Context, log *entity.DeliveryLog) error

	// ListByAccountID returns the newest records first.
	ListByAccountID(ctx context.Context, accountID int64, limit int) ([]*entity.DeliveryLog, error)
}
