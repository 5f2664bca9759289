package service

import (
	"context"

	"lineconnect/internal/domain/entity"
)

// TokenResponse is the provider's answer to a code exchange.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
	IDToken      string `json:"id_token"`
}

// LoginClient talks to the chat platform's OAuth endpoints. Implementations
// perform a single attempt per call.
type LoginClient interface {
	// BuildAuthorizationURL returns the provider URL the browser is sent to.
	BuildAuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for tokens.
	ExchangeCode(ctx context.Context, code string) (*TokenResponse, error)

	// FetchProfile retrieves the user profile with a bearer access token.
	FetchProfile(ctx context.Context, accessToken string) (*entity.RemoteProfile, error)

	// EmailFromIDToken verifies the ID token and returns its email claim, if any.
	EmailFromIDToken(idToken string) (string, error)
}
