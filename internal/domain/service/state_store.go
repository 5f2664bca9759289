package service

import (
	"context"
	"errors"
	"time"
)

// ErrStateNotFound is returned when a key is absent or its TTL has elapsed.
var ErrStateNotFound = errors.New("state not found")

// StateStore is a key/value store with native per-key expiry.
// Multi-process deployments must use a shared backend.
type StateStore interface {
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns ErrStateNotFound when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	Delete(ctx context.Context, key string) error

	// Take atomically reads and deletes a key, so at most one caller observes a value.
	Take(ctx context.Context, key string) ([]byte, error)
}

// DedupCache remembers recently seen ids.
type DedupCache interface {
	// MarkIfAbsent atomically records id for ttl and reports whether it was new.
	MarkIfAbsent(ctx context.Context, id string, ttl time.Duration) (bool, error)
}
