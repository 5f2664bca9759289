package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"lineconnect/config"
	"lineconnect/internal/domain/constants"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultRequestTimeout = 15 * time.Second
	maxResponseBodyBytes  = 16 << 10
)

// Client performs single Messaging API requests with the channel access token.
// Retry policy lives in the outbound messenger.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a Messaging API client
func NewClient(cfg *config.Config) service.MessagingClient {
	return &Client{
		baseURL:     strings.TrimRight(cfg.Line.Messaging.APIBaseURL, "/"),
		accessToken: cfg.Line.Messaging.ChannelAccessToken,
		httpClient:  &http.Client{Timeout: defaultRequestTimeout},
	}
}

// Post implements service.MessagingClient.
func (c *Client) Post(ctx context.Context, path string, body any) (*service.MessagingResponse, error) {
	if c.accessToken == "" {
		return nil, domainerrors.ErrMissingCredentials.WithDetails("channel access token is empty")
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal messaging request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create messaging request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "messaging request failed")
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))

	return &service.MessagingResponse{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
		RequestID:  resp.Header.Get(constants.HeaderLineRequestID),
	}, nil
}
