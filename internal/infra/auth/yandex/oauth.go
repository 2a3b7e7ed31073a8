// Package yandex implements the OAuth exchanger for Yandex ID.
package yandex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"musiclib/config"
	"musiclib/internal/domain/entity"
	domainerrors "musiclib/internal/domain/errors"
	"musiclib/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
)

const (
	avatarURLTemplate = "https://avatars.yandex.net/get-yapic/%s/islands-200"
	maxErrorBodyBytes = 4 << 10
)

// Params holds dependencies for the Yandex OAuth exchanger, injected by Fx
type Params struct {
	fx.In

	Config     *config.Config
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type oauthExchanger struct {
	oauth2  *oauth2.Config
	infoURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewOAuthExchanger creates the Yandex implementation of service.OAuthExchanger.
func NewOAuthExchanger(params Params) (service.OAuthExchanger, error) {
	cfg := params.Config.Yandex
	if cfg == nil {
		return nil, errors.New("yandex configuration is required")
	}

	return &oauthExchanger{
		oauth2: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		infoURL: cfg.InfoURL,
		client:  params.HTTPClient,
		logger:  params.Logger,
	}, nil
}

// Provider returns the provider this exchanger talks to.
func (e *oauthExchanger) Provider() entity.ProviderType {
	return entity.ProviderYandex
}

// AuthorizationURL builds the Yandex consent page URL.
func (e *oauthExchanger) AuthorizationURL(state, redirectURI string) string {
	var opts []oauth2.AuthCodeOption
	if redirectURI != "" {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	}

	return e.oauth2.AuthCodeURL(state, opts...)
}

// ExchangeCode trades an authorization code for tokens at the Yandex token endpoint.
func (e *oauthExchanger) ExchangeCode(ctx context.Context, code, redirectURI string) (*entity.TokenSet, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingInput, "authorization code is required")
	}

	var opts []oauth2.AuthCodeOption
	if redirectURI != "" {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	}

	token, err := e.oauth2.Exchange(e.withClient(ctx), code, opts...)
	if err != nil {
		return nil, e.mapTokenError(err, "exchange authorization code")
	}

	return toTokenSet(token), nil
}

// Refresh obtains a new token set with the refresh-token grant.
func (e *oauthExchanger) Refresh(ctx context.Context, refreshToken string) (*entity.TokenSet, error) {
	if refreshToken == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingInput, "refresh token is required")
	}

	// An empty access token forces the token source to hit the token endpoint.
	source := e.oauth2.TokenSource(e.withClient(ctx), &oauth2.Token{RefreshToken: refreshToken})

	token, err := source.Token()
	if err != nil {
		return nil, e.mapTokenError(err, "refresh token")
	}

	return toTokenSet(token), nil
}

type profileResponse struct {
	ID              string `json:"id"`
	Login           string `json:"login"`
	DefaultEmail    string `json:"default_email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	DefaultAvatarID string `json:"default_avatar_id"`
	IsAvatarEmpty   bool   `json:"is_avatar_empty"`
}

// FetchProfile reads the Yandex ID profile behind accessToken.
func (e *oauthExchanger) FetchProfile(ctx context.Context, accessToken string) (*service.ExternalProfile, error) {
	if accessToken == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingInput, "access token is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.infoURL+"?format=json", nil)
	if err != nil {
		return nil, errors.Wrap(err, "build profile request")
	}
	req.Header.Set("Authorization", "OAuth "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.WarnContext(ctx, "Yandex profile request failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.NewUpstreamRejectedError(http.StatusInternalServerError, ""), err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		e.logger.WarnContext(ctx, "Yandex profile request rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return nil, errors.WithStack(domainerrors.NewUpstreamRejectedError(resp.StatusCode, string(body)))
	}

	var payload profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(domainerrors.NewUpstreamRejectedError(http.StatusInternalServerError, ""), "decode profile: "+err.Error())
	}
	if payload.ID == "" {
		return nil, errors.WithStack(domainerrors.NewUpstreamRejectedError(http.StatusInternalServerError, "profile without id"))
	}

	profile := &service.ExternalProfile{
		Provider:   entity.ProviderYandex,
		ExternalID: payload.ID,
		Login:      payload.Login,
		Email:      payload.DefaultEmail,
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
	}
	if payload.DefaultAvatarID != "" && !payload.IsAvatarEmpty {
		profile.AvatarURL = fmt.Sprintf(avatarURLTemplate, payload.DefaultAvatarID)
	}

	return profile, nil
}

func (e *oauthExchanger) withClient(ctx context.Context) context.Context {
	if e.client == nil {
		return ctx
	}

	return context.WithValue(ctx, oauth2.HTTPClient, e.client)
}

// mapTokenError passes the token endpoint's status and body through.
func (e *oauthExchanger) mapTokenError(err error, op string) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		e.logger.Warn("Yandex token endpoint rejected request",
			slog.String("operation", op),
			slog.Int("status", retrieveErr.Response.StatusCode),
			slog.String("error_code", retrieveErr.ErrorCode),
		)

		return errors.Wrap(domainerrors.NewUpstreamRejectedError(retrieveErr.Response.StatusCode, string(retrieveErr.Body)), op)
	}

	e.logger.Warn("Yandex token request failed", slog.String("operation", op), slog.Any("error", err))

	return errors.Wrap(domainerrors.NewUpstreamRejectedError(http.StatusInternalServerError, ""), op+": "+err.Error())
}

func toTokenSet(token *oauth2.Token) *entity.TokenSet {
	set := &entity.TokenSet{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}

	if seconds, ok := expiresInSeconds(token.Extra("expires_in")); ok {
		set.ExpiresIn = time.Duration(seconds) * time.Second
	} else if !token.Expiry.IsZero() {
		set.ExpiresIn = time.Until(token.Expiry).Round(time.Second)
	}

	return set
}

// expiresInSeconds accepts the numeric and string encodings providers use for expires_in.
func expiresInSeconds(raw any) (int64, bool) {
	switch v := raw.(type) {
	case float64:
		return int64(v), v > 0
	case json.Number:
		n, err := v.Int64()
		return n, err == nil && n > 0
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil && n > 0
	default:
		return 0, false
	}
}
