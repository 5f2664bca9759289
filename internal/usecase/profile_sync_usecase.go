package usecase

import (
	"context"

	"lineconnect/internal/domain/entity"
)

// FieldDecision is the outcome of comparing one local field with its remote value.
type FieldDecision string

const (
	DecisionUpdate   FieldDecision = "update"
	DecisionSkip     FieldDecision = "skip"
	DecisionConflict FieldDecision = "conflict"
)

// FieldChange is an applied or proposed change to one field.
type FieldChange struct {
	Field    entity.ProfileField
	OldValue string
	NewValue string
}

// SyncResult reports what a synchronization did.
type SyncResult struct {
	Updated   []FieldChange
	Conflicts []FieldChange
	// EmailSkipped is set when the remote email belongs to another account.
	EmailSkipped bool
}

// Changed reports whether any field was written.
func (r *SyncResult) Changed() bool {
	return r != nil && len(r.Updated) > 0
}

// ProfileSynchronizer copies remote profile attributes onto a local account.
type ProfileSynchronizer interface {
	Sync(ctx context.Context, accountID int64, profile *entity.RemoteProfile, action entity.SyncAction) (*SyncResult, error)
}
