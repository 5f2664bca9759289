package repository

import (
	"context"
	"errors"
	"time"

	"lineconnect/internal/domain/entity"
)

var (
	// ErrBindingNotFound is returned when no binding matches the lookup.
	ErrBindingNotFound = errors.New("identity binding not found")
	// ErrBindingConflict is returned when an insert violates either unique index.
	ErrBindingConflict = errors.New("identity binding conflicts with an existing binding")
)

// BindingRepository persists identity bindings. Implementations enforce
// uniqueness of (provider, account_id) and (provider, external_id).
type BindingRepository interface {
	FindByAccountID(ctx context.Context, provider entity.ProviderType, accountID int64) (*entity.IdentityBinding, error)

	FindByExternalID(ctx context.Context, provider entity.ProviderType, externalID string) (*entity.IdentityBinding, error)

	// Create inserts a binding and returns ErrBindingConflict on a unique violation.
	Create(ctx context.Context, binding *entity.IdentityBinding) error

	// Touch refreshes linked_at and, when registeredAt is non-nil, sets
	// registered_at only if it is still empty.
	Touch(ctx context.Context, id int64, linkedAt time.Time, registeredAt *time.Time) error

	// DeleteByAccountID hard-deletes the binding and reports whether a row existed.
	DeleteByAccountID(ctx context.Context, provider entity.ProviderType, accountID int64) (bool, error)
}
