package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"musiclib/internal/domain/entity"
	domainerrors "musiclib/internal/domain/errors"
	"musiclib/internal/domain/repository"
	"musiclib/internal/domain/service"
	"musiclib/internal/usecase"
	"musiclib/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	linkRepo  repository.ExternalAccountRepository
	exchanger service.OAuthExchanger
	catalog   service.CatalogClient
	now       func() time.Time
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ExternalAccountRepo repository.ExternalAccountRepository
	Exchanger           service.OAuthExchanger
	Catalog             service.CatalogClient
	Logger              *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		linkRepo:  params.ExternalAccountRepo,
		exchanger: params.Exchanger,
		catalog:   params.Catalog,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// FetchTrack returns one track with its direct download link when the provider offers one.
func (srv *catalogService) FetchTrack(ctx context.Context, userID uuid.UUID, trackID string) (*entity.NormalizedTrack, error) {
	if strings.TrimSpace(trackID) == "" {
		return nil, domainerrors.ErrMissingInput.WrapMessage("track id is required")
	}

	accessToken, err := srv.withValidToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	track, err := srv.catalog.Track(ctx, accessToken, trackID)
	if err != nil {
		return nil, srv.mapCatalogError(ctx, err, "failed to fetch track")
	}

	downloadURL, err := srv.catalog.DownloadURL(ctx, accessToken, trackID)
	switch {
	case err != nil:
		srv.log(ctx).Warn("Download link lookup failed", slog.String("trackID", trackID), slog.Any("error", err))
	case downloadURL != "":
		track.DownloadURL = &downloadURL
	}

	return track, nil
}

// Search runs one provider search and returns the requested page of it.
func (srv *catalogService) Search(ctx context.Context, userID uuid.UUID, input *usecase.SearchInput) ([]*entity.NormalizedTrack, error) {
	if input == nil || strings.TrimSpace(input.Query) == "" {
		return nil, domainerrors.ErrMissingInput.WrapMessage("query is required")
	}
	if input.Page < 0 || input.PageSize <= 0 {
		return nil, domainerrors.ErrMissingInput.WrapMessage("page must be >= 0 and page size > 0")
	}

	accessToken, err := srv.withValidToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	tracks, err := srv.catalog.Search(ctx, accessToken, input.Query)
	if err != nil {
		return nil, srv.mapCatalogError(ctx, err, "failed to search tracks")
	}

	return util.Page(tracks, input.Page, input.PageSize), nil
}

// PopularTracks returns the head of the provider chart.
func (srv *catalogService) PopularTracks(ctx context.Context, userID uuid.UUID) ([]*entity.NormalizedTrack, error) {
	accessToken, err := srv.withValidToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	tracks, err := srv.catalog.Chart(ctx, accessToken)
	if err != nil {
		return nil, srv.mapCatalogError(ctx, err, "failed to fetch chart")
	}
	if tracks == nil {
		return []*entity.NormalizedTrack{}, nil
	}

	return util.Limit(tracks, usecase.PopularTracksLimit), nil
}

// withValidToken returns a usable provider access token for the user.
// An expired token is refreshed at most once per call.
func (srv *catalogService) withValidToken(ctx context.Context, userID uuid.UUID) (string, error) {
	link, err := srv.linkRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrExternalAccountNotFound) {
			return "", domainerrors.ErrAuthRequired.WrapMessage("no linked Yandex account")
		}

		return "", errors.Wrap(err, "failed to load external account link")
	}

	if !link.IsExpired(srv.now()) {
		return link.AccessToken, nil
	}

	if !link.CanRefresh() {
		srv.log(ctx).Info("Yandex token expired without refresh token", slog.Any("userID", userID))

		return "", domainerrors.ErrAuthRequired.WrapMessage("Yandex token expired and cannot be refreshed")
	}

	tokens, err := srv.exchanger.Refresh(ctx, link.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Yandex token refresh failed",
			slog.Any("userID", userID),
			slog.String("refreshToken", util.MaskSecret(link.RefreshToken)),
			slog.Any("error", err),
		)

		return "", errors.Wrapf(domainerrors.ErrRefreshFailed, "refresh rejected: %v", err)
	}

	link.ApplyTokens(tokens, srv.now())
	if err := srv.linkRepo.Save(ctx, link); err != nil {
		return "", errors.Wrap(err, "failed to save refreshed tokens")
	}
	srv.log(ctx).Debug("Yandex token refreshed", slog.Any("userID", userID))

	return link.AccessToken, nil
}

func (srv *catalogService) mapCatalogError(ctx context.Context, err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrCatalogNotFound):
		return errors.Wrap(domainerrors.ErrTrackNotFound, msg)
	case errors.Is(err, service.ErrCatalogUnauthorized):
		return errors.Wrap(domainerrors.ErrAuthRequired, msg)
	default:
		srv.log(ctx).Error("Catalog call failed", slog.String("op", msg), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrCatalogUnavailable, msg)
	}
}
