package service

import (
	"context"
	"errors"

	"musiclib/internal/domain/entity"
)

// Catalog failure kinds. Implementations wrap one of these so callers can tell them apart.
var (
	// ErrCatalogNotFound means the requested id does not exist upstream.
	ErrCatalogNotFound = errors.New("catalog item not found")
	// ErrCatalogUnauthorized means the provider refused the access token.
	ErrCatalogUnauthorized = errors.New("catalog rejected access token")
	// ErrCatalogUnavailable covers upstream 5xx, malformed payloads and transport failures.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// CatalogClient performs catalog calls on behalf of a user with that user's provider access token.
type CatalogClient interface {
	// Track fetches one track.
	Track(ctx context.Context, accessToken, trackID string) (*entity.NormalizedTrack, error)

	// Search returns every track the provider reports for query.
	Search(ctx context.Context, accessToken, query string) ([]*entity.NormalizedTrack, error)

	// Chart returns the provider's current chart.
	Chart(ctx context.Context, accessToken string) ([]*entity.NormalizedTrack, error)

	// DownloadURL resolves a direct download link. It returns an empty string when none is offered.
	DownloadURL(ctx context.Context, accessToken, trackID string) (string, error)
}
