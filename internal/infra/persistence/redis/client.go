// Package redis holds the Redis-backed repository implementations.
package redis

import (
	"context"
	"log/slog"

	"musiclib/config"
	"musiclib/internal/domain/lifecycle"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// NewClient creates a go-redis client from configuration.
func NewClient(cfg *config.RedisConfig) (*goredis.Client, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}

	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), nil
}

// RegisterLifecycle pings the client on start and closes it on stop.
func RegisterLifecycle(lc fx.Lifecycle, client *goredis.Client, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			logger.Info("Connected to redis", slog.String("addr", client.Options().Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Closing redis client")

			return client.Close()
		},
	})
}
