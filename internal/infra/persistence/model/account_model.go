package model

import (
	"time"

	"gorm.io/datatypes"
)

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID           int64                       `gorm:"primaryKey;autoIncrement"`
	Login        string                      `gorm:"type:varchar(191);not null;uniqueIndex:idx_accounts_login"`
	Email        *string                     `gorm:"type:varchar(255);uniqueIndex:idx_accounts_email"` // NULL when unknown
	DisplayName  string                      `gorm:"type:varchar(255);not null;default:''"`
	AvatarURL    string                      `gorm:"type:text;not null;default:''"`
	PasswordHash string                      `gorm:"type:varchar(255);not null"`
	Roles        datatypes.JSONSlice[string] `gorm:"type:json"`
	Capabilities datatypes.JSONSlice[string] `gorm:"type:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
