package service

import "lineconnect/internal/domain/entity"

// SignatureVerifier authenticates webhook bodies.
type SignatureVerifier interface {
	// Verify checks signature against the raw request body. It returns
	// ErrInvalidSignature or ErrMissingCredentials from the domain errors package.
	Verify(rawBody []byte, signature string) error
}

// WebhookPayloadParser validates and decodes a verified webhook body.
type WebhookPayloadParser interface {
	Parse(rawBody []byte) (*entity.WebhookPayload, error)
}
