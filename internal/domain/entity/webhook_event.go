package entity

import (
	"slices"
	"time"
)

// Webhook event types the dispatcher routes to type-specific observers.
const (
	EventTypeMessage           = "message"
	EventTypeFollow            = "follow"
	EventTypeUnfollow          = "unfollow"
	EventTypePostback          = "postback"
	EventTypeJoin              = "join"
	EventTypeLeave             = "leave"
	EventTypeMemberJoined      = "memberJoined"
	EventTypeMemberLeft        = "memberLeft"
	EventTypeBeacon            = "beacon"
	EventTypeAccountLink       = "accountLink"
	EventTypeThings            = "things"
	EventTypeUnsend            = "unsend"
	EventTypeVideoPlayComplete = "videoPlayComplete"
)

// Message subtypes routed for message events.
const (
	MessageTypeText     = "text"
	MessageTypeImage    = "image"
	MessageTypeVideo    = "video"
	MessageTypeAudio    = "audio"
	MessageTypeFile     = "file"
	MessageTypeLocation = "location"
	MessageTypeSticker  = "sticker"
)

var (
	knownEventTypes = []string{
		EventTypeMessage, EventTypeFollow, EventTypeUnfollow, EventTypePostback,
		EventTypeJoin, EventTypeLeave, EventTypeMemberJoined, EventTypeMemberLeft,
		EventTypeBeacon, EventTypeAccountLink, EventTypeThings, EventTypeUnsend,
		EventTypeVideoPlayComplete,
	}
	knownMessageTypes = []string{
		MessageTypeText, MessageTypeImage, MessageTypeVideo, MessageTypeAudio,
		MessageTypeFile, MessageTypeLocation, MessageTypeSticker,
	}
)

// IsKnownEventType reports whether t has a type-specific dispatch topic.
func IsKnownEventType(t string) bool {
	return slices.Contains(knownEventTypes, t)
}

// IsKnownMessageType reports whether t has a message-subtype dispatch topic.
func IsKnownMessageType(t string) bool {
	return slices.Contains(knownMessageTypes, t)
}

// WebhookPayload is the body of a webhook request.
type WebhookPayload struct {
	Destination string         `json:"destination"`
	Events      []WebhookEvent `json:"events"`
}

// WebhookEvent is a single inbound platform event.
type WebhookEvent struct {
	Type            string           `json:"type"`
	Mode            string           `json:"mode,omitempty"`
	Timestamp       int64            `json:"timestamp"`
	WebhookEventID  string           `json:"webhookEventId"`
	DeliveryContext *DeliveryContext `json:"deliveryContext,omitempty"`
	Source          *EventSource     `json:"source,omitempty"`
	ReplyToken      string           `json:"replyToken,omitempty"`
	Message         *EventMessage    `json:"message,omitempty"`
	Postback        *EventPostback   `json:"postback,omitempty"`
}

// DeliveryContext flags platform redeliveries.
type DeliveryContext struct {
	IsRedelivery bool `json:"isRedelivery"`
}

// EventSource identifies who triggered the event.
type EventSource struct {
	Type    string `json:"type"`
	UserID  string `json:"userId,omitempty"`
	GroupID string `json:"groupId,omitempty"`
	RoomID  string `json:"roomId,omitempty"`
}

// EventMessage is the message object of a message event.
type EventMessage struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Text      string   `json:"text,omitempty"`
	FileName  string   `json:"fileName,omitempty"`
	Title     string   `json:"title,omitempty"`
	Address   string   `json:"address,omitempty"`
	Latitude  float64  `json:"latitude,omitempty"`
	Longitude float64  `json:"longitude,omitempty"`
	PackageID string   `json:"packageId,omitempty"`
	StickerID string   `json:"stickerId,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
}

// EventPostback carries postback action data.
type EventPostback struct {
	Data   string            `json:"data"`
	Params map[string]string `json:"params,omitempty"`
}

// SourceUserID returns the external user id of the event source, if any.
func (e *WebhookEvent) SourceUserID() string {
	if e.Source == nil {
		return ""
	}

	return e.Source.UserID
}

// MessageType returns the message subtype, empty for non-message events.
func (e *WebhookEvent) MessageType() string {
	if e.Message == nil {
		return ""
	}

	return e.Message.Type
}

// IsRedelivery reports whether the platform marked the event as a redelivery.
func (e *WebhookEvent) IsRedelivery() bool {
	return e.DeliveryContext != nil && e.DeliveryContext.IsRedelivery
}

// WebhookEventRecord is the append-only audit row for an accepted event.
type WebhookEventRecord struct {
	ID             int64
	EventType      string
	MessageType    string
	ExternalID     string
	AccountID      *int64 // Nil when the sender has no binding.
	WebhookEventID string
	Redelivery     bool
	ReceivedAt     time.Time
}
