package usecase

import (
	"context"

	"lineconnect/internal/domain/entity"
)

// DeliveryResult describes the final outcome of one outbound send.
type DeliveryResult struct {
	Status     entity.DeliveryStatus
	StatusCode int
	Attempts   int
	RequestID  string
}

// Recipient identifies who a reply goes to, for the delivery log.
type Recipient struct {
	ExternalID string
	AccountID  *int64
}

// OutboundMessenger sends push and reply messages with bounded retry.
// Failures are returned together with the result so callers can inspect attempts.
type OutboundMessenger interface {
	// Push sends to an external id that must have a binding.
	Push(ctx context.Context, externalID string, messages []entity.Message) (*DeliveryResult, error)

	// PushToAccount resolves the account's external id first.
	PushToAccount(ctx context.Context, accountID int64, messages []entity.Message) (*DeliveryResult, error)

	// Reply answers an inbound event with its single-use reply token.
	Reply(ctx context.Context, replyToken string, to Recipient, messages []entity.Message) (*DeliveryResult, error)
}
