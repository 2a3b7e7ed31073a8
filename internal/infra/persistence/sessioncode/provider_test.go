package sessioncode

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"musiclib/config"
	"musiclib/internal/infra/persistence/memory"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.Config) (Params, *fxtest.Lifecycle) {
	t.Helper()

	lc := fxtest.NewLifecycle(t)

	return Params{
		Lc:     lc,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, lc
}

func TestNewRepository_DefaultsToMemory(t *testing.T) {
	params, lc := newParams(t, &config.Config{})

	repo, err := NewRepository(params)
	require.NoError(t, err)
	assert.IsType(t, &memory.SessionCodeRepository{}, repo)

	lc.RequireStart()
	lc.RequireStop()
}

func TestNewRepository_Redis(t *testing.T) {
	server := miniredis.RunT(t)
	params, lc := newParams(t, &config.Config{
		SessionCode: &config.SessionCodeConfig{Provider: config.SessionCodeProviderRedis},
		Redis:       &config.RedisConfig{Addr: server.Addr()},
	})

	repo, err := NewRepository(params)
	require.NoError(t, err)

	lc.RequireStart()
	defer lc.RequireStop()

	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, "c", []byte("p"), time.Minute))
	payload, err := repo.Take(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "p", string(payload))
}

func TestNewRepository_RedisWithoutAddr(t *testing.T) {
	params, _ := newParams(t, &config.Config{
		SessionCode: &config.SessionCodeConfig{Provider: config.SessionCodeProviderRedis},
	})

	_, err := NewRepository(params)
	assert.Error(t, err)
}

func TestNewRepository_UnknownProvider(t *testing.T) {
	params, _ := newParams(t, &config.Config{
		SessionCode: &config.SessionCodeConfig{Provider: "memcached"},
	})

	_, err := NewRepository(params)
	assert.ErrorContains(t, err, "memcached")
}
