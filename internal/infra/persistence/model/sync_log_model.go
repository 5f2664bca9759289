package model

import (
	"time"

	"gorm.io/datatypes"
)

// SyncLogModel mirrors the 'account_sync_logs' table.
type SyncLogModel struct {
	ID        int64                                 `gorm:"primaryKey;autoIncrement"`
	AccountID int64                                 `gorm:"not null;index:idx_sync_logs_account_kind"`
	Kind      string                                `gorm:"type:varchar(16);not null;index:idx_sync_logs_account_kind"`
	Action    string                                `gorm:"type:varchar(16);not null"`
	Fields    datatypes.JSONSlice[string]           `gorm:"type:json"`
	OldValues datatypes.JSONType[map[string]string] `gorm:"type:json"`
	NewValues datatypes.JSONType[map[string]string] `gorm:"type:json"`
	CreatedAt time.Time                             `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SyncLogModel) TableName() string {
	return "account_sync_logs"
}
