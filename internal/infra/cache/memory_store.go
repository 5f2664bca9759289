// Package cache provides the ephemeral state store and the webhook dedup cache,
// backed by an in-process TTL cache or by Redis.
package cache

import (
	"context"
	"time"

	"lineconnect/internal/domain/service"

	"github.com/jellydator/ttlcache/v3"
)

const defaultMemoryTTL = 10 * time.Minute

// MemoryStore implements StateStore and DedupCache using ttlcache.
// State is process-local, so it only suits single-process deployments.
type MemoryStore struct {
	cache *ttlcache.Cache[string, []byte]
}

// NewMemoryStore creates a new in-memory store with automatic cleanup.
func NewMemoryStore() *MemoryStore {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, []byte](defaultMemoryTTL),
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)

	// Start the cleanup process
	go cache.Start()

	return &MemoryStore{cache: cache}
}

// Put implements StateStore.Put.
func (s *MemoryStore) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.cache.Set(key, value, ttl)

	return nil
}

// Get implements StateStore.Get.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	item := s.cache.Get(key)
	if item == nil || item.IsExpired() {
		return nil, service.ErrStateNotFound
	}

	return item.Value(), nil
}

// Delete implements StateStore.Delete.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)

	return nil
}

// Take implements StateStore.Take.
func (s *MemoryStore) Take(_ context.Context, key string) ([]byte, error) {
	item, present := s.cache.GetAndDelete(key)
	if !present || item == nil || item.IsExpired() {
		return nil, service.ErrStateNotFound
	}

	return item.Value(), nil
}

// MarkIfAbsent implements DedupCache.MarkIfAbsent.
func (s *MemoryStore) MarkIfAbsent(_ context.Context, id string, ttl time.Duration) (bool, error) {
	_, existed := s.cache.GetOrSet(id, []byte{1}, ttlcache.WithTTL[string, []byte](ttl))

	return !existed, nil
}

// Close stops the cleanup goroutine.
func (s *MemoryStore) Close() error {
	s.cache.Stop()

	return nil
}

var (
	_ service.StateStore = (*MemoryStore)(nil)
	_ service.DedupCache = (*MemoryStore)(nil)
)
