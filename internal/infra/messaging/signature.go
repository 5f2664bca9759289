// Package messaging implements the LINE Messaging API side of the integration:
// webhook authentication, payload validation and the outbound HTTP client.
package messaging

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"lineconnect/config"
	"lineconnect/internal/domain/constants"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/service"
)

// SignatureVerifier checks X-Line-Signature: base64(HMAC-SHA256(body, channel secret)).
type SignatureVerifier struct {
	secret  []byte
	devMode bool
}

// NewSignatureVerifier creates a verifier for the Messaging API channel secret.
// Outside the develop environment a missing secret rejects every request.
func NewSignatureVerifier(cfg *config.Config) service.SignatureVerifier {
	return &SignatureVerifier{
		secret:  []byte(cfg.Line.Messaging.ChannelSecret),
		devMode: cfg.Env.Env == constants.EnvDevelop,
	}
}

// Verify implements service.SignatureVerifier.
func (v *SignatureVerifier) Verify(rawBody []byte, signature string) error {
	if len(v.secret) == 0 {
		if v.devMode {
			return nil
		}

		return domainerrors.ErrMissingCredentials.WithDetails("messaging channel secret is empty")
	}

	if signature == "" {
		return domainerrors.ErrInvalidSignature.WithDetails("signature header is missing")
	}

	given, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return domainerrors.ErrInvalidSignature.WithDetails("signature is not valid base64")
	}

	if !hmac.Equal(given, Sign(v.secret, rawBody)) {
		return domainerrors.ErrInvalidSignature
	}

	return nil
}

// Sign computes the raw HMAC-SHA256 of body.
func Sign(secret, body []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	_, _ = mac.Write(body)

	return mac.Sum(nil)
}

// SignBase64 computes the header value LINE would send for body.
func SignBase64(secret, body []byte) string {
	return base64.StdEncoding.EncodeToString(Sign(secret, body))
}
