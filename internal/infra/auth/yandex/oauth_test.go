package yandex

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"musiclib/config"
	domainerrors "musiclib/internal/domain/errors"
	"musiclib/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeYandexID struct {
	t            *testing.T
	tokenHandler http.HandlerFunc
	infoHandler  http.HandlerFunc
}

func (f *fakeYandexID) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/token":
		f.tokenHandler(w, r)
	case "/info":
		f.infoHandler(w, r)
	default:
		f.t.Errorf("unexpected path %s", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func newTestExchanger(t *testing.T, fake *fakeYandexID) service.OAuthExchanger {
	t.Helper()

	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	cfg := &config.Config{Yandex: &config.YandexConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "https://app/default-cb",
		AuthURL:      server.URL + "/authorize",
		TokenURL:     server.URL + "/token",
		InfoURL:      server.URL + "/info",
	}}

	exchanger, err := NewOAuthExchanger(Params{
		Config:     cfg,
		HTTPClient: server.Client(),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return exchanger
}

func TestExchangeCode_Success(t *testing.T) {
	var form url.Values
	fake := &fakeYandexID{t: t, tokenHandler: func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "T1",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	}}

	exchanger := newTestExchanger(t, fake)

	tokens, err := exchanger.ExchangeCode(context.Background(), "abc123", "https://app/cb")
	require.NoError(t, err)

	assert.Equal(t, "T1", tokens.AccessToken)
	assert.Empty(t, tokens.RefreshToken)
	assert.Equal(t, time.Hour, tokens.ExpiresIn)

	assert.Equal(t, "authorization_code", form.Get("grant_type"))
	assert.Equal(t, "abc123", form.Get("code"))
	assert.Equal(t, "client-id", form.Get("client_id"))
	assert.Equal(t, "client-secret", form.Get("client_secret"))
	assert.Equal(t, "https://app/cb", form.Get("redirect_uri"))
}

func TestExchangeCode_WithoutExpiresIn(t *testing.T) {
	fake := &fakeYandexID{t: t, tokenHandler: func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":  "T1",
			"refresh_token": "R1",
			"token_type":    "bearer",
		})
	}}

	tokens, err := newTestExchanger(t, fake).ExchangeCode(context.Background(), "abc123", "")
	require.NoError(t, err)

	assert.Equal(t, "R1", tokens.RefreshToken)
	assert.Zero(t, tokens.ExpiresIn)
}

func TestExchangeCode_MissingCode(t *testing.T) {
	fake := &fakeYandexID{t: t, tokenHandler: func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("token endpoint must not be called without a code")
	}}

	_, err := newTestExchanger(t, fake).ExchangeCode(context.Background(), "  ", "https://app/cb")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingInput))
}

func TestExchangeCode_UpstreamRejectionPassesStatusAndBody(t *testing.T) {
	fake := &fakeYandexID{t: t, tokenHandler: func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":             "invalid_grant",
			"error_description": "Code has expired",
		})
	}}

	_, err := newTestExchanger(t, fake).ExchangeCode(context.Background(), "stale", "https://app/cb")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamRejected))

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "Code has expired")
}

func TestRefresh(t *testing.T) {
	var form url.Values
	fake := &fakeYandexID{t: t, tokenHandler: func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":  "T2",
			"refresh_token": "R2",
			"token_type":    "bearer",
			"expires_in":    7200,
		})
	}}

	tokens, err := newTestExchanger(t, fake).Refresh(context.Background(), "R1")
	require.NoError(t, err)

	assert.Equal(t, "refresh_token", form.Get("grant_type"))
	assert.Equal(t, "R1", form.Get("refresh_token"))
	assert.Equal(t, "T2", tokens.AccessToken)
	assert.Equal(t, "R2", tokens.RefreshToken)
	assert.Equal(t, 2*time.Hour, tokens.ExpiresIn)
}

func TestRefresh_Rejected(t *testing.T) {
	fake := &fakeYandexID{t: t, tokenHandler: func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "invalid_grant"})
	}}

	_, err := newTestExchanger(t, fake).Refresh(context.Background(), "revoked")
	require.Error(t, err)

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestFetchProfile(t *testing.T) {
	fake := &fakeYandexID{t: t, infoHandler: func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "OAuth T1", r.Header.Get("Authorization"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		writeJSON(w, http.StatusOK, map[string]any{
			"id":                "99",
			"login":             "listener",
			"default_email":     "a@b.com",
			"first_name":        "Ann",
			"default_avatar_id": "131652443/abc",
			"is_avatar_empty":   false,
		})
	}}

	profile, err := newTestExchanger(t, fake).FetchProfile(context.Background(), "T1")
	require.NoError(t, err)

	assert.Equal(t, "99", profile.ExternalID)
	assert.Equal(t, "a@b.com", profile.Email)
	assert.Equal(t, "Ann", profile.FirstName)
	assert.Empty(t, profile.LastName)
	assert.Equal(t, "https://avatars.yandex.net/get-yapic/131652443/abc/islands-200", profile.AvatarURL)
}

func TestFetchProfile_Rejected(t *testing.T) {
	fake := &fakeYandexID{t: t, infoHandler: func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("expired_token"))
	}}

	_, err := newTestExchanger(t, fake).FetchProfile(context.Background(), "T1")
	require.Error(t, err)

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "expired_token", appErr.Details())
}

func TestAuthorizationURL(t *testing.T) {
	exchanger := newTestExchanger(t, &fakeYandexID{t: t})

	raw := exchanger.AuthorizationURL("xyz", "")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "/authorize", parsed.Path)
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "https://app/default-cb", query.Get("redirect_uri"))
	assert.Equal(t, "xyz", query.Get("state"))

	overridden, err := url.Parse(exchanger.AuthorizationURL("", "https://app/other"))
	require.NoError(t, err)
	assert.Equal(t, "https://app/other", overridden.Query().Get("redirect_uri"))
}
