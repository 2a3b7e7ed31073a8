package usecase

import (
	"context"
	"encoding/json"

	"musiclib/internal/domain/entity"
)

// SessionUsecase issues local bearer credentials and hands them over through one-time codes.
type SessionUsecase interface {
	// Issue mints a bearer credential for the user.
	Issue(ctx context.Context, user *entity.User) (string, error)

	// StashForPickup parks the credential and user data behind a new one-time code.
	StashForPickup(ctx context.Context, token string, userData json.RawMessage) (string, error)

	// Pickup returns the stashed payload and invalidates the code.
	Pickup(ctx context.Context, code string) (*entity.SessionPickup, error)
}
