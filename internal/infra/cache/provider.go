package cache

import (
	"context"
	"log/slog"

	"lineconnect/config"
	"lineconnect/internal/domain/lifecycle"
	"lineconnect/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	stateKeyPrefix = "state:"
	dedupKeyPrefix = "dedup:"
)

// Params defines the dependencies for the cache providers
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// Result exposes both stores to the container
type Result struct {
	fx.Out

	StateStore service.StateStore
	DedupCache service.DedupCache
}

// NewStores builds the state store and the dedup cache from configuration.
// A single Redis client is shared when either store uses Redis.
func NewStores(params Params) (Result, error) {
	var (
		redisClient *redis.Client
		memories    []*MemoryStore
	)

	build := func(provider, prefix string) (interface {
		service.StateStore
		service.DedupCache
	}, error) {
		switch provider {
		case config.ProviderRedis:
			if redisClient == nil {
				client, err := newRedisClient(params.Config.Redis)
				if err != nil {
					return nil, err
				}
				redisClient = client
			}
			base := ""
			if params.Config.Redis != nil {
				base = params.Config.Redis.KeyPrefix
			}

			return NewRedisStore(redisClient, base+prefix), nil
		case config.ProviderMemory, "":
			memory := NewMemoryStore()
			memories = append(memories, memory)

			return memory, nil
		default:
			return nil, errors.Errorf("unsupported store provider: %s", provider)
		}
	}

	state, err := build(params.Config.StateStore.Provider, stateKeyPrefix)
	if err != nil {
		return Result{}, err
	}
	dedup, err := build(params.Config.Dedup.Provider, dedupKeyPrefix)
	if err != nil {
		return Result{}, err
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if redisClient == nil {
				return nil
			}
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := redisClient.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to connect to Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			for _, memory := range memories {
				_ = memory.Close()
			}
			if redisClient != nil {
				return redisClient.Close()
			}

			return nil
		},
	})

	params.Logger.Info("Ephemeral stores configured",
		slog.String("stateStore", params.Config.StateStore.Provider),
		slog.String("dedup", params.Config.Dedup.Provider),
	)

	return Result{StateStore: state, DedupCache: dedup}, nil
}

func newRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis provider selected but redis.addr is not configured")
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), nil
}
