package cache

import (
	"context"
	"time"

	"lineconnect/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements StateStore and DedupCache using Redis.
// This is required when several processes share handshake or dedup state.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisStore creates a store with an existing Redis client.
func NewRedisStore(client redis.UniversalClient, keyPrefix string) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Put implements StateStore.Put.
func (s *RedisStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.keyPrefix+key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to put state")
	}

	return nil
}

// Get implements StateStore.Get.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrStateNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get state")
	}

	return value, nil
}

// Delete implements StateStore.Delete.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to delete state")
	}

	return nil
}

// Take implements StateStore.Take with GETDEL, so concurrent callbacks
// carrying the same state cannot both consume it.
func (s *RedisStore) Take(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.GetDel(ctx, s.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrStateNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to take state")
	}

	return value, nil
}

// MarkIfAbsent implements DedupCache.MarkIfAbsent.
// Uses SETNX with TTL in a single atomic operation.
func (s *RedisStore) MarkIfAbsent(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	created, err := s.client.SetNX(ctx, s.keyPrefix+id, "1", ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to mark id")
	}

	return created, nil
}

var (
	_ service.StateStore = (*RedisStore)(nil)
	_ service.DedupCache = (*RedisStore)(nil)
)
