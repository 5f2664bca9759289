package entity

import "time"

// ProviderType tags which chat platform a binding belongs to.
type ProviderType string

const (
	// ProviderLine is the LINE platform.
	ProviderLine ProviderType = "line"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IdentityBinding is the one-to-one association between a local account
// and an external chat identity. Per provider, each account and each
// external id appears in at most one binding.
type IdentityBinding struct {
	ID           int64        // Surrogate key.
	Provider     ProviderType // Chat platform tag.
	AccountID    int64        // Local account.
	ExternalID   string       // Chat platform user id (LINE userId).
	LinkedAt     time.Time    // Refreshed on every successful link.
	RegisteredAt *time.Time   // Set once, when the account was created through chat login.
}
