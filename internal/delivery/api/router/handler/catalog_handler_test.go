package handler

import (
	"net/http"
	"testing"

	"musiclib/internal/domain/entity"
	domainerrors "musiclib/internal/domain/errors"
	mockusecase "musiclib/internal/mocks/usecase"
	"musiclib/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCatalogHandlerEcho(t *testing.T, userID uuid.UUID) (*mockusecase.MockCatalogUsecase, *echo.Echo) {
	catalogUC := mockusecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	tracks := e.Group("/api/v1/yandex/tracks", withUser(userID))
	tracks.GET("/search", h.Search)
	tracks.GET("/popular", h.Popular)
	tracks.GET("/:id", h.GetTrack)

	return catalogUC, e
}

func TestCatalogHandler_Search(t *testing.T) {
	userID := uuid.New()
	catalogUC, e := newCatalogHandlerEcho(t, userID)

	catalogUC.EXPECT().
		Search(mock.Anything, userID, &usecase.SearchInput{Query: "queen", Page: 2, PageSize: 20}).
		Return([]*entity.NormalizedTrack{{ID: "1", Title: "Bohemian Rhapsody"}}, nil).
		Once()

	rec := perform(e, http.MethodGet, "/api/v1/yandex/tracks/search?query=queen&page=2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	tracks := decodeData[[]entity.NormalizedTrack](t, rec)
	if assert.Len(t, tracks, 1) {
		assert.Equal(t, "Bohemian Rhapsody", tracks[0].Title)
	}
}

func TestCatalogHandler_Search_InvalidParams(t *testing.T) {
	_, e := newCatalogHandlerEcho(t, uuid.New())

	tests := []struct {
		name   string
		target string
		code   string
	}{
		{name: "missing query", target: "/api/v1/yandex/tracks/search", code: "VALIDATION_FAILED"},
		{name: "page size too large", target: "/api/v1/yandex/tracks/search?query=a&page_size=500", code: "VALIDATION_FAILED"},
		{name: "page not a number", target: "/api/v1/yandex/tracks/search?query=a&page=x", code: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := perform(e, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, decode(t, rec).Error.Code)
		})
	}
}

func TestCatalogHandler_Popular(t *testing.T) {
	userID := uuid.New()
	catalogUC, e := newCatalogHandlerEcho(t, userID)

	catalogUC.EXPECT().PopularTracks(mock.Anything, userID).
		Return([]*entity.NormalizedTrack{}, nil).
		Once()

	rec := perform(e, http.MethodGet, "/api/v1/yandex/tracks/popular", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestCatalogHandler_GetTrack(t *testing.T) {
	userID := uuid.New()
	catalogUC, e := newCatalogHandlerEcho(t, userID)
	download := "https://host/get-mp3/sign/ts/path"

	catalogUC.EXPECT().FetchTrack(mock.Anything, userID, "42").
		Return(&entity.NormalizedTrack{ID: "42", Title: "Song", DownloadURL: &download}, nil).
		Once()

	rec := perform(e, http.MethodGet, "/api/v1/yandex/tracks/42", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	track := decodeData[entity.NormalizedTrack](t, rec)
	assert.Equal(t, "42", track.ID)
	if assert.NotNil(t, track.DownloadURL) {
		assert.Equal(t, download, *track.DownloadURL)
	}
}

func TestCatalogHandler_GetTrack_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "not linked", err: domainerrors.ErrAuthRequired, status: http.StatusUnauthorized, code: "YANDEX_AUTH_REQUIRED"},
		{name: "refresh rejected", err: errors.Wrapf(domainerrors.ErrRefreshFailed, "refresh rejected: %v", "invalid_grant"), status: http.StatusUnauthorized, code: "YANDEX_REFRESH_FAILED"},
		{name: "missing track", err: domainerrors.ErrTrackNotFound, status: http.StatusNotFound, code: "TRACK_NOT_FOUND"},
		{name: "catalog down", err: domainerrors.ErrCatalogUnavailable, status: http.StatusInternalServerError, code: "CATALOG_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			catalogUC, e := newCatalogHandlerEcho(t, userID)

			catalogUC.EXPECT().FetchTrack(mock.Anything, userID, "42").Return(nil, tt.err).Once()

			rec := perform(e, http.MethodGet, "/api/v1/yandex/tracks/42", "")

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decode(t, rec).Error.Code)
		})
	}
}
