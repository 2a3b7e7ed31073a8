package redis

import (
	"context"
	"time"

	"musiclib/internal/domain/repository"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const sessionCodeKeyPrefix = "session_code:"

type sessionCodeRepository struct {
	client goredis.Cmdable
}

// NewSessionCodeRepository stores session codes as keys with an expiry.
// Take relies on GETDEL so only one reader can consume a code.
func NewSessionCodeRepository(client goredis.Cmdable) repository.SessionCodeRepository {
	return &sessionCodeRepository{client: client}
}

func (repo *sessionCodeRepository) Put(ctx context.Context, code string, payload []byte, ttl time.Duration) error {
	if err := repo.client.Set(ctx, sessionCodeKeyPrefix+code, payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store session code")
	}

	return nil
}

func (repo *sessionCodeRepository) Take(ctx context.Context, code string) ([]byte, error) {
	payload, err := repo.client.GetDel(ctx, sessionCodeKeyPrefix+code).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrSessionCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to take session code")
	}

	return payload, nil
}
