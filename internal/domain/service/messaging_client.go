package service

import "context"

// Messaging API endpoints used by the outbound messenger.
const (
	MessagingPushPath  = "/v2/bot/message/push"
	MessagingReplyPath = "/v2/bot/message/reply"
)

// MessagingResponse is the raw outcome of one Messaging API request.
type MessagingResponse struct {
	StatusCode int
	Body       string
	RequestID  string // x-line-request-id
}

// MessagingClient performs a single authenticated JSON POST. A non-nil error
// means no HTTP response was received.
type MessagingClient interface {
	Post(ctx context.Context, path string, body any) (*MessagingResponse, error)
}
