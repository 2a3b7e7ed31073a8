package repository

import (
	"context"
	"errors"
	"time"
)

// ErrSessionCodeNotFound is returned when a code is unknown, expired or already consumed.
var ErrSessionCodeNotFound = errors.New("session code not found")

// SessionCodeRepository is a key-value store with expiry for one-time session codes.
type SessionCodeRepository interface {
	// Put stores the payload under code for ttl.
	Put(ctx context.Context, code string, payload []byte, ttl time.Duration) error

	// Take returns the payload and removes it in the same step, so only one caller can obtain it.
	Take(ctx context.Context, code string) ([]byte, error)
}
