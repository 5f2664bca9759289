package model

import "time"

// WebhookEventModel mirrors the append-only 'webhook_events' audit table.
type WebhookEventModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	EventType      string    `gorm:"type:varchar(64);not null"`
	MessageType    string    `gorm:"type:varchar(32);not null;default:''"`
	ExternalID     string    `gorm:"type:varchar(191);not null;default:'';index:idx_webhook_events_external"`
	AccountID      *int64    `gorm:"index:idx_webhook_events_account"`
	WebhookEventID string    `gorm:"type:varchar(64);not null;default:''"`
	Redelivery     bool      `gorm:"not null;default:false"`
	ReceivedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (WebhookEventModel) TableName() string {
	return "webhook_events"
}
