package handler

import (
	"log/slog"
	"net/http"

	"musiclib/internal/delivery/api/middleware"
	"musiclib/internal/delivery/api/response"
	"musiclib/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSearchPageSize = 20

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler exposes the Yandex music catalog on behalf of the signed-in user.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// SearchRequest is bound from the query string.
type SearchRequest struct {
	Query    string `query:"query" validate:"required"`
	Page     int    `query:"page" validate:"gte=0"`
	PageSize int    `query:"page_size" validate:"gte=0,lte=100"`
}

// Search returns one page of tracks matching the query.
func (h *CatalogHandler) Search(c echo.Context) error {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		return err
	}

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if req.PageSize == 0 {
		req.PageSize = defaultSearchPageSize
	}

	tracks, err := h.catalogUC.Search(c.Request().Context(), userID, &usecase.SearchInput{
		Query:    req.Query,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tracks)
}

// Popular returns the current chart.
func (h *CatalogHandler) Popular(c echo.Context) error {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		return err
	}

	tracks, err := h.catalogUC.PopularTracks(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tracks)
}

// GetTrack returns a single track with its download link when one is available.
func (h *CatalogHandler) GetTrack(c echo.Context) error {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		return err
	}

	trackID := c.Param("id")
	if trackID == "" {
		return response.BadRequest(c, "INVALID_ID", "Track id is required")
	}

	track, err := h.catalogUC.FetchTrack(c.Request().Context(), userID, trackID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, track)
}
