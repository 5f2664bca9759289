package model

import "time"

// IdentityBindingModel mirrors the 'identity_bindings' table. The two unique
// indexes keep the account/external-id mapping one-to-one per provider.
type IdentityBindingModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Provider     string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_binding_provider_account;uniqueIndex:idx_binding_provider_external"`
	AccountID    int64     `gorm:"not null;uniqueIndex:idx_binding_provider_account"`
	ExternalID   string    `gorm:"type:varchar(191);not null;uniqueIndex:idx_binding_provider_external"`
	LinkedAt     time.Time `gorm:"not null"`
	RegisteredAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityBindingModel) TableName() string {
	return "identity_bindings"
}
