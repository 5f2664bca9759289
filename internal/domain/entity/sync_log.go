package entity

import "time"

// SyncAction is the reason a profile synchronization runs.
type SyncAction string

const (
	SyncActionRegister SyncAction = "register"
	SyncActionLogin    SyncAction = "login"
	SyncActionLink     SyncAction = "link"
)

// IsValid checks if the SyncAction is a valid value.
func (a SyncAction) IsValid() bool {
	switch a {
	case SyncActionRegister, SyncActionLogin, SyncActionLink:
		return true
	default:
		return false
	}
}

// ConflictPolicy decides what happens when local and remote values differ.
type ConflictPolicy string

const (
	PolicyRemotePriority ConflictPolicy = "remote_priority"
	PolicyLocalPriority  ConflictPolicy = "local_priority"
	PolicyManual         ConflictPolicy = "manual"
)

// IsValid checks if the ConflictPolicy is a valid value.
func (p ConflictPolicy) IsValid() bool {
	switch p {
	case PolicyRemotePriority, PolicyLocalPriority, PolicyManual:
		return true
	default:
		return false
	}
}

// SyncLogKind separates applied changes from recorded conflicts.
type SyncLogKind string

const (
	SyncLogKindSync     SyncLogKind = "sync"
	SyncLogKindConflict SyncLogKind = "conflict"
)

// SyncLogMaxEntries is how many entries of each kind are kept per account.
const SyncLogMaxEntries = 10

// SyncLogEntry records one synchronization or conflict for an account.
type SyncLogEntry struct {
	ID        int64
	AccountID int64
	Kind      SyncLogKind
	Action    SyncAction
	Fields    []string
	OldValues map[string]string
	NewValues map[string]string // For conflicts: the remote values that were not applied.
	CreatedAt time.Time
}
