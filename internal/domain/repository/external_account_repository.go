package repository

import (
	"context"
	"errors"

	"musiclib/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrExternalAccountNotFound is returned when a user has no linked external account.
var ErrExternalAccountNotFound = errors.New("external account link not found")

// ExternalAccountRepository stores provider tokens per local user.
type ExternalAccountRepository interface {
	// FindByUserID returns the link owned by the user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ExternalAccountLink, error)

	// FindByExternalID returns the link for a provider subject id.
	FindByExternalID(ctx context.Context, provider entity.ProviderType, externalID string) (*entity.ExternalAccountLink, error)

	// Upsert creates the link or updates it in place, keyed by provider and external id,
	// in a single statement. An empty refresh token keeps the stored one.
	Upsert(ctx context.Context, link *entity.ExternalAccountLink) (*entity.ExternalAccountLink, error)

	// Save replaces the token fields of an existing link.
	Save(ctx context.Context, link *entity.ExternalAccountLink) error
}
