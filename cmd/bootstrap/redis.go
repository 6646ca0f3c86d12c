package bootstrap

import (
	"context"

	"movie-booking/internal/infra/redisclient"
	"movie-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis may return a nil client; the rate limiter then passes every request.
func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	client := redisclient.Connect(context.Background(), cfg.Redis)
	if client == nil {
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}
