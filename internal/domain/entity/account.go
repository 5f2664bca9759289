package entity

import (
	"slices"
	"time"
)

// Account is the host site's local user record.
// Only the fields the chat integration reads or writes are modelled here.
type Account struct {
	ID           int64     // Local account identifier.
	Login        string    // Unique login name.
	Email        string    // Unique contact email, empty when unknown.
	DisplayName  string    // Public display name.
	AvatarURL    string    // Profile picture URL.
	PasswordHash string    // bcrypt hash; random for accounts created through chat login.
	Roles        Roles     // Site roles.
	Capabilities []string  // Individually granted capabilities.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// HasCapability checks the account's individually granted capabilities.
func (a *Account) HasCapability(capability string) bool {
	return slices.Contains(a.Capabilities, capability)
}

// ProfileField names a synchronizable account attribute.
type ProfileField string

const (
	FieldDisplayName ProfileField = "display_name"
	FieldEmail       ProfileField = "email"
	FieldAvatarURL   ProfileField = "avatar_url"
)

// SyncFields lists the fields touched by profile synchronization, in order.
var SyncFields = []ProfileField{FieldDisplayName, FieldEmail, FieldAvatarURL}

// Field returns the current value of a synchronizable field.
func (a *Account) Field(f ProfileField) string {
	switch f {
	case FieldDisplayName:
		return a.DisplayName
	case FieldEmail:
		return a.Email
	case FieldAvatarURL:
		return a.AvatarURL
	default:
		return ""
	}
}

// SetField assigns a synchronizable field.
func (a *Account) SetField(f ProfileField, value string) {
	switch f {
	case FieldDisplayName:
		a.DisplayName = value
	case FieldEmail:
		a.Email = value
	case FieldAvatarURL:
		a.AvatarURL = value
	}
}
