package usecase

import (
	"context"

	"musiclib/internal/domain/entity"

	"github.com/google/uuid"
)

// PopularTracksLimit caps the chart returned by PopularTracks.
const PopularTracksLimit = 20

// SearchInput describes one page of a catalog search.
type SearchInput struct {
	Query    string
	Page     int
	PageSize int
}

// CatalogUsecase performs catalog calls on behalf of a linked user,
// refreshing the stored provider token when it has expired.
type CatalogUsecase interface {
	FetchTrack(ctx context.Context, userID uuid.UUID, trackID string) (*entity.NormalizedTrack, error)
	Search(ctx context.Context, userID uuid.UUID, input *SearchInput) ([]*entity.NormalizedTrack, error)
	PopularTracks(ctx context.Context, userID uuid.UUID) ([]*entity.NormalizedTrack, error)
}
