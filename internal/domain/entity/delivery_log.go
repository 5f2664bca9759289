package entity

import (
	"encoding/json"
	"time"
)

// DeliveryKind is the Messaging API call used for an outbound send.
type DeliveryKind string

const (
	DeliveryKindPush  DeliveryKind = "push"
	DeliveryKindReply DeliveryKind = "reply"
)

// DeliveryStatus is the final outcome of an outbound send.
type DeliveryStatus string

const (
	DeliveryStatusSuccess DeliveryStatus = "success"
	DeliveryStatusFailed  DeliveryStatus = "failed"
)

// DeliveryLog is the append-only record of one outbound send.
type DeliveryLog struct {
	ID          int64
	AccountID   *int64
	ExternalID  string // Empty for replies.
	Kind        DeliveryKind
	Status      DeliveryStatus
	StatusCode  int // Zero when no HTTP response was received.
	Attempts    int
	ErrorDetail string
	CreatedAt   time.Time
}

// MaxMessagesPerRequest is the Messaging API limit per push or reply.
const MaxMessagesPerRequest = 5

// Message is an outbound Messaging API message object.
type Message map[string]any

// NewTextMessage builds a text message.
func NewTextMessage(text string) Message {
	return Message{"type": "text", "text": text}
}

// MarshalMessages renders messages for logging.
func MarshalMessages(msgs []Message) string {
	b, err := json.Marshal(msgs)
	if err != nil {
		return ""
	}

	return string(b)
}
