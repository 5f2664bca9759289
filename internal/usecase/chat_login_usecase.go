package usecase

import (
	"context"
	"time"

	"lineconnect/internal/domain/entity"
)

// ChatLoginOutput is the outcome of a completed callback.
type ChatLoginOutput struct {
	AccountID        int64
	Action           entity.SyncAction
	RedirectURL      string
	SessionToken     string // Empty on conflict.
	SessionExpiresAt time.Time
	// Conflict is set when the chat identity or the account is already bound elsewhere.
	Conflict *LinkResult
	Sync     *SyncResult
}

// LinkStatus describes an account's binding for display.
type LinkStatus struct {
	Linked           bool
	ExternalID       string
	LinkedAt         *time.Time
	RegisteredByChat bool // Account was created through chat login.
}

// ChatLoginUsecase decides between register, link and login after a callback.
type ChatLoginUsecase interface {
	CompleteLogin(ctx context.Context, code, state string) (*ChatLoginOutput, error)

	LinkStatus(ctx context.Context, accountID int64) (*LinkStatus, error)

	Unlink(ctx context.Context, accountID int64) error
}
