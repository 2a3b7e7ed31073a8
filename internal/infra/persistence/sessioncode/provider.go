// Package sessioncode selects the store backing one-time session codes.
package sessioncode

import (
	"context"
	"log/slog"
	"time"

	"musiclib/config"
	"musiclib/internal/domain/repository"
	"musiclib/internal/infra/persistence/memory"
	"musiclib/internal/infra/persistence/redis"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sweepInterval = time.Minute

// Params holds dependencies for the session code store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRepository creates a SessionCodeRepository based on configuration
func NewRepository(params Params) (repository.SessionCodeRepository, error) {
	cfg := params.Config.SessionCode
	logger := params.Logger

	provider := config.SessionCodeProviderMemory
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case config.SessionCodeProviderMemory:
		logger.Info("Using in-memory session code store")

		store := memory.NewSessionCodeRepository()
		sweepCtx, cancelSweep := context.WithCancel(context.Background())
		params.Lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				go store.RunSweeper(sweepCtx, sweepInterval)

				return nil
			},
			OnStop: func(_ context.Context) error {
				cancelSweep()

				return nil
			},
		})

		return store, nil

	case config.SessionCodeProviderRedis:
		client, err := redis.NewClient(params.Config.Redis)
		if err != nil {
			return nil, err
		}
		logger.Info("Using redis session code store", slog.String("addr", params.Config.Redis.Addr))
		redis.RegisterLifecycle(params.Lc, client, logger)

		return redis.NewSessionCodeRepository(client), nil

	default:
		return nil, errors.Errorf("unknown session code provider: %s", provider)
	}
}

// Module provides the session code store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepository),
)
