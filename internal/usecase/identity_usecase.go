package usecase

import (
	"context"

	"lineconnect/internal/domain/entity"
)

// LinkOutcome classifies the result of a link attempt.
type LinkOutcome string

const (
	// LinkOutcomeLinked means a new binding was created.
	LinkOutcomeLinked LinkOutcome = "linked"
	// LinkOutcomeRefreshed means the identical binding already existed and was refreshed.
	LinkOutcomeRefreshed LinkOutcome = "refreshed"
	// LinkOutcomeExternalIDTaken means the external id is bound to another account.
	LinkOutcomeExternalIDTaken LinkOutcome = "conflict_external_id"
	// LinkOutcomeAccountTaken means the account is bound to another external id.
	LinkOutcomeAccountTaken LinkOutcome = "conflict_account"
)

// LinkResult is returned by IdentityLedger.Link. Conflicts are ordinary results.
type LinkResult struct {
	Outcome LinkOutcome
	Binding *entity.IdentityBinding // The binding now in place, or the conflicting one.
}

// OK reports whether the requested pair is now bound.
func (r *LinkResult) OK() bool {
	return r != nil && (r.Outcome == LinkOutcomeLinked || r.Outcome == LinkOutcomeRefreshed)
}

// IdentityLedger is the source of truth for account to chat identity bindings.
// Errors are reserved for storage failures.
type IdentityLedger interface {
	// FindAccountByExternalID returns nil when the external id is unbound.
	FindAccountByExternalID(ctx context.Context, externalID string) (*int64, error)

	// FindExternalIDByAccount returns "" when the account is unbound.
	FindExternalIDByAccount(ctx context.Context, accountID int64) (string, error)

	IsLinked(ctx context.Context, accountID int64) (bool, error)

	// Link binds the pair. Re-linking an identical pair refreshes linked_at and,
	// when isRegistration is set, records the registration time once.
	Link(ctx context.Context, accountID int64, externalID string, isRegistration bool) (*LinkResult, error)

	// Unlink hard-deletes the account's binding and reports whether one existed.
	Unlink(ctx context.Context, accountID int64) (bool, error)

	// GetBinding returns nil when the account is unbound.
	GetBinding(ctx context.Context, accountID int64) (*entity.IdentityBinding, error)

	// GetBindingByExternalID returns nil when the external id is unbound.
	GetBindingByExternalID(ctx context.Context, externalID string) (*entity.IdentityBinding, error)
}
