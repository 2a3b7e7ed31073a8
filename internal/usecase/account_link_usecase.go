package usecase

import (
	"context"

	"musiclib/internal/domain/entity"
	"musiclib/internal/domain/service"

	"github.com/google/uuid"
)

// AccountLinkUsecase maps an external identity onto a local user and keeps its tokens.
type AccountLinkUsecase interface {
	// LinkOrCreate returns the user bound to the profile's external id, creating it on first sight.
	// Existing users are returned unchanged.
	LinkOrCreate(ctx context.Context, profile *service.ExternalProfile) (*entity.User, error)

	// UpsertTokens stores tokens for the external id. A token set without a refresh
	// token keeps the stored one, and a missing lifetime leaves the expiry unknown.
	UpsertTokens(ctx context.Context, userID uuid.UUID, externalID string, tokens *entity.TokenSet) (*entity.ExternalAccountLink, error)

	// LinkAndUpsert runs LinkOrCreate and UpsertTokens in one transaction.
	LinkAndUpsert(ctx context.Context, profile *service.ExternalProfile, tokens *entity.TokenSet) (*entity.User, error)
}
