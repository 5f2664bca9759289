// Package line implements the LINE Login v2.1 client used by the authorization flow.
package line

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lineconnect/config"
	"lineconnect/internal/domain/entity"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	idTokenIssuer      = "https://access.line.me"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 4 << 10
)

// LoginClient handles LINE Login infrastructure operations
type LoginClient struct {
	channelID     string
	channelSecret string
	redirectURI   string
	scopes        []string
	botPrompt     string
	authorizeURL  string
	tokenURL      string
	profileURL    string

	httpClient *http.Client
}

// NewLoginClient creates a new LINE Login client
func NewLoginClient(cfg *config.Config) service.LoginClient {
	login := cfg.Line.Login

	return &LoginClient{
		channelID:     login.ChannelID,
		channelSecret: login.ChannelSecret,
		redirectURI:   login.CallbackURL,
		scopes:        login.Scopes,
		botPrompt:     login.BotPrompt,
		authorizeURL:  login.AuthorizeURL,
		tokenURL:      login.TokenURL,
		profileURL:    login.ProfileURL,
		httpClient:    &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// BuildAuthorizationURL constructs the LINE authorization URL for the given state token
func (c *LoginClient) BuildAuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", c.channelID)
	params.Set("redirect_uri", c.redirectURI)
	params.Set("state", state)
	params.Set("scope", strings.Join(c.scopes, " "))
	if c.botPrompt != "" {
		params.Set("bot_prompt", c.botPrompt)
	}

	return c.authorizeURL + "?" + params.Encode()
}

// ExchangeCode exchanges an authorization code for tokens.
// redirect_uri must equal the one sent in the authorization request.
func (c *LoginClient) ExchangeCode(ctx context.Context, code string) (*service.TokenResponse, error) {
	if c.channelID == "" || c.channelSecret == "" {
		return nil, domainerrors.ErrMissingCredentials.WithDetails("login channel id or secret is empty")
	}

	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("redirect_uri", c.redirectURI)
	data.Set("client_id", c.channelID)
	data.Set("client_secret", c.channelSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, providerErrorDetail(resp.Body))
	}

	var token service.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}
	if token.AccessToken == "" {
		return nil, errors.New("token response has no access_token")
	}

	return &token, nil
}

// FetchProfile retrieves the user's profile using an access token
func (c *LoginClient) FetchProfile(ctx context.Context, accessToken string) (*entity.RemoteProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.profileURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("profile request failed with status %d: %s", resp.StatusCode, providerErrorDetail(resp.Body))
	}

	var lineProfile struct {
		UserID        string `json:"userId"`
		DisplayName   string `json:"displayName"`
		PictureURL    string `json:"pictureUrl"`
		StatusMessage string `json:"statusMessage"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&lineProfile); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile response")
	}
	if lineProfile.UserID == "" {
		return nil, errors.New("profile response has no userId")
	}

	return &entity.RemoteProfile{
		ExternalID:    lineProfile.UserID,
		DisplayName:   lineProfile.DisplayName,
		AvatarURL:     lineProfile.PictureURL,
		StatusMessage: lineProfile.StatusMessage,
	}, nil
}

type idTokenClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// EmailFromIDToken verifies a LINE ID token (HS256 signed with the channel
// secret) and returns its email claim. An empty token yields an empty email.
func (c *LoginClient) EmailFromIDToken(idToken string) (string, error) {
	if idToken == "" {
		return "", nil
	}

	claims := &idTokenClaims{}
	_, err := jwt.ParseWithClaims(idToken, claims, func(*jwt.Token) (any, error) {
		return []byte(c.channelSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(idTokenIssuer),
		jwt.WithAudience(c.channelID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to verify id token")
	}

	return claims.Email, nil
}

// providerErrorDetail extracts "error: description" from a LINE error body,
// falling back to the raw body.
func providerErrorDetail(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))

	var payload struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
		Message          string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		switch {
		case payload.Error != "" && payload.ErrorDescription != "":
			return payload.Error + ": " + payload.ErrorDescription
		case payload.Error != "":
			return payload.Error
		case payload.Message != "":
			return payload.Message
		}
	}

	return strings.TrimSpace(string(raw))
}
