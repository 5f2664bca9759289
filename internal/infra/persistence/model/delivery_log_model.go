package model

import "time"

// DeliveryLogModel mirrors the append-only 'delivery_logs' table.
type DeliveryLogModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	AccountID   *int64    `gorm:"index:idx_delivery_logs_account"`
	ExternalID  string    `gorm:"type:varchar(191);not null;default:''"`
	Kind        string    `gorm:"type:varchar(16);not null"`
	Status      string    `gorm:"type:varchar(16);not null"`
	StatusCode  int       `gorm:"not null;default:0"`
	Attempts    int       `gorm:"not null;default:0"`
	ErrorDetail string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "delivery_logs"
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&AccountModel{},
		&IdentityBindingModel{},
		&SyncLogModel{},
		&WebhookEventModel{},
		&DeliveryLogModel{},
	}
}
