// Package yandex implements the delegated Yandex Music catalog client.
package yandex

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"musiclib/config"
	"musiclib/internal/domain/entity"
	"musiclib/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const maxErrorBodyBytes = 4 << 10

// Params holds dependencies for the catalog client, injected by Fx
type Params struct {
	fx.In

	Config     *config.Config
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type catalogClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewCatalogClient creates the Yandex Music implementation of service.CatalogClient.
// Every outbound request waits on a shared rate limiter.
func NewCatalogClient(params Params) (service.CatalogClient, error) {
	cfg := params.Config.Yandex
	if cfg == nil || cfg.APIBaseURL == "" {
		return nil, errors.New("yandex api base url is required")
	}

	return &catalogClient{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		client:  params.HTTPClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1)),
		logger:  params.Logger,
	}, nil
}

// Track fetches /tracks/{id}.
func (c *catalogClient) Track(ctx context.Context, accessToken, trackID string) (*entity.NormalizedTrack, error) {
	var body envelope[[]*trackDTO]
	if err := c.getJSON(ctx, accessToken, "/tracks/"+url.PathEscape(trackID), nil, &body); err != nil {
		return nil, err
	}

	if len(body.Result) == 0 || body.Result[0] == nil {
		return nil, errors.Wrapf(service.ErrCatalogNotFound, "track %s", trackID)
	}

	return normalizeTrack(body.Result[0]), nil
}

// Search runs a track search. Yandex answers with its first result page, which
// is treated as the full result set.
func (c *catalogClient) Search(ctx context.Context, accessToken, query string) ([]*entity.NormalizedTrack, error) {
	params := url.Values{
		"text":      {query},
		"type":      {"track"},
		"page":      {"0"},
		"nocorrect": {"false"},
	}

	var body envelope[searchResultDTO]
	if err := c.getJSON(ctx, accessToken, "/search", params, &body); err != nil {
		return nil, err
	}

	if body.Result.Tracks == nil {
		return []*entity.NormalizedTrack{}, nil
	}

	return normalizeTracks(body.Result.Tracks.Results), nil
}

// Chart fetches the landing chart.
func (c *catalogClient) Chart(ctx context.Context, accessToken string) ([]*entity.NormalizedTrack, error) {
	var body envelope[chartResultDTO]
	if err := c.getJSON(ctx, accessToken, "/landing3/chart", nil, &body); err != nil {
		return nil, err
	}

	if body.Result.Chart == nil {
		return []*entity.NormalizedTrack{}, nil
	}

	dtos := make([]*trackDTO, 0, len(body.Result.Chart.Tracks))
	for _, item := range body.Result.Chart.Tracks {
		dtos = append(dtos, item.Track)
	}

	return normalizeTracks(dtos), nil
}

// DownloadURL resolves the signed direct link for the best mp3 variant.
func (c *catalogClient) DownloadURL(ctx context.Context, accessToken, trackID string) (string, error) {
	var body envelope[[]downloadInfoDTO]
	if err := c.getJSON(ctx, accessToken, "/tracks/"+url.PathEscape(trackID)+"/download-info", nil, &body); err != nil {
		return "", err
	}

	info, ok := pickDownloadInfo(body.Result)
	if !ok {
		return "", nil
	}

	resp, err := c.do(ctx, accessToken, info.DownloadInfoURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var doc downloadInfoXML
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", errors.Wrapf(service.ErrCatalogUnavailable, "decode download info: %v", err)
	}
	if doc.Host == "" || doc.Path == "" {
		return "", nil
	}

	return directLink(doc), nil
}

func (c *catalogClient) getJSON(ctx context.Context, accessToken, path string, params url.Values, out any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	resp, err := c.do(ctx, accessToken, target)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(service.ErrCatalogUnavailable, "decode %s: %v", path, err)
	}

	return nil
}

// do performs an authorized GET and classifies non-2xx answers. The caller closes the body.
func (c *catalogClient) do(ctx context.Context, accessToken, target string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrapf(service.ErrCatalogUnavailable, "rate limiter: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build catalog request")
	}
	req.Header.Set("Authorization", "OAuth "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Yandex catalog request failed",
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)

		return nil, errors.Wrapf(service.ErrCatalogUnavailable, "request %s: %v", req.URL.Path, err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return resp, nil
	}

	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	c.logger.WarnContext(ctx, "Yandex catalog returned an error",
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(body)),
	)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return nil, errors.Wrapf(service.ErrCatalogNotFound, "%s", req.URL.Path)
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, errors.Wrapf(service.ErrCatalogUnauthorized, "status %d", resp.StatusCode)
	default:
		return nil, errors.Wrapf(service.ErrCatalogUnavailable, "status %d: %s", resp.StatusCode, body)
	}
}
