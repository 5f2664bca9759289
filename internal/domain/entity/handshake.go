package entity

import "time"

// HandshakeState is stored under the state token between redirect and callback.
type HandshakeState struct {
	ReturnURL string    `json:"return_url"`
	AccountID *int64    `json:"account_id,omitempty"` // Set when an already signed-in account starts a link.
	CreatedAt time.Time `json:"created_at"`
}

// IsLinkFlow reports whether the handshake was started by a signed-in account.
func (h *HandshakeState) IsLinkFlow() bool {
	return h.AccountID != nil && *h.AccountID > 0
}

// Expired reports whether the handshake is older than ttl at now.
func (h *HandshakeState) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(h.CreatedAt) > ttl
}

// FlowStage is a step of the authorization handshake.
type FlowStage string

const (
	StageInitiated        FlowStage = "initiated"
	StageAwaitingCallback FlowStage = "awaiting_callback"
	StageValidated        FlowStage = "validated"
	StageTokenExchanged   FlowStage = "token_exchanged"
	StageProfileFetched   FlowStage = "profile_fetched"
	StageComplete         FlowStage = "complete"
	StageFailed           FlowStage = "failed"
)

// RemoteProfile is the identity snapshot returned by the chat platform.
type RemoteProfile struct {
	ExternalID    string
	DisplayName   string
	AvatarURL     string
	Email         string // Only present when the email scope was granted.
	StatusMessage string
}

// Field returns the remote value of a synchronizable field.
func (p *RemoteProfile) Field(f ProfileField) string {
	switch f {
	case FieldDisplayName:
		return p.DisplayName
	case FieldEmail:
		return p.Email
	case FieldAvatarURL:
		return p.AvatarURL
	default:
		return ""
	}
}
