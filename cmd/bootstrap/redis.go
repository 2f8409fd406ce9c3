package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	"marketplace-core/internal/infra/events"
	"marketplace-core/internal/pkg/config"
	"marketplace-core/internal/pkg/ratelimit"
	"marketplace-core/internal/usecase/shared"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RedisModule wires the Redis-backed pieces: the shared rate limiter and the status event queue.
var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewRateLimiter,
		NewEventPublisher,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewRateLimiter(cfg config.Config, client *redis.Client) ratelimit.Limiter {
	policy := ratelimit.Policy{RPM: cfg.RateLimit.RPM, Burst: cfg.RateLimit.Burst}
	if strings.EqualFold(cfg.RateLimit.Backend, "redis") {
		slog.Info("rate limiter backed by redis", "addr", cfg.Redis.Addr)
		return ratelimit.NewRedisLimiter(client, policy)
	}
	return ratelimit.NewMemoryLimiter(policy)
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	if !cfg.Events.Enabled {
		return events.NoopPublisher{}
	}
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	slog.Info("status events enabled", "queue", cfg.Events.Queue)
	return events.NewAsynqPublisher(client, cfg.Events.Queue)
}
