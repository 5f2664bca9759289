// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"fmt"
	"time"

	"lineconnect/internal/domain/entity"
)

// HandshakeTTL is how long an authorization state token stays valid.
const HandshakeTTL = 10 * time.Minute

// --- Input DTOs ---

// BeginAuthorizationInput starts a login or link handshake.
type BeginAuthorizationInput struct {
	ReturnURL string
	AccountID *int64 // Set when a signed-in account links its chat identity.
}

// --- Output DTOs ---

// BeginAuthorizationOutput carries the provider URL to send the browser to.
type BeginAuthorizationOutput struct {
	AuthorizeURL string
	State        string
	ReturnURL    string // The sanitized return URL that was stored.
}

// CallbackOutput is the result of a completed handshake.
type CallbackOutput struct {
	Handshake *entity.HandshakeState
	Profile   *entity.RemoteProfile
	Stage     entity.FlowStage
}

// AuthorizationError records the stage at which a handshake failed.
type AuthorizationError struct {
	Stage entity.FlowStage
	Err   error
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization failed after %s: %v", e.Stage, e.Err)
}

func (e *AuthorizationError) Unwrap() error {
	return e.Err
}

// AuthorizationFlow runs the OAuth-style handshake with the chat platform.
type AuthorizationFlow interface {
	BeginAuthorization(ctx context.Context, input BeginAuthorizationInput) (*BeginAuthorizationOutput, error)

	// HandleCallback consumes the state exactly once and returns the remote profile.
	HandleCallback(ctx context.Context, code, state string) (*CallbackOutput, error)

	// AbortCallback consumes the state of a handshake the user cancelled.
	AbortCallback(ctx context.Context, state string) error
}
