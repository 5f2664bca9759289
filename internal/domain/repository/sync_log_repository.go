package repository

import (
	"context"

	"lineconnect/internal/domain/entity"
)

// SyncLogRepository stores per-account sync and conflict history.
type SyncLogRepository interface {
	// Append stores the entry and prunes the account's entries of the same
	// kind down to the newest keep.
	Append(ctx context.Context, entry *entity.SyncLogEntry, keep int) error

	// List returns the newest entries first.
	List(ctx context.Context, accountID int64, kind entity.SyncLogKind) ([]*entity.SyncLogEntry, error)
}
