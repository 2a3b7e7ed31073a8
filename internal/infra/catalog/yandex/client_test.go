package yandex

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"musiclib/config"
	"musiclib/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trackJSON = `{
  "id": 12345,
  "title": "Song",
  "durationMs": 215500,
  "artists": [{"id": 7, "name": "Artist"}, {"id": "8", "name": "Guest"}],
  "albums": [{"id": 456, "title": "Album", "coverUri": "avatars.yandex.net/get-music-content/1/abc/%%"}]
}`

func newTestClient(t *testing.T, mux *http.ServeMux) (service.CatalogClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	cfg := &config.Config{Yandex: &config.YandexConfig{
		APIBaseURL: server.URL + "/",
		RateLimit:  1000,
		RateBurst:  10,
	}}

	client, err := NewCatalogClient(Params{
		Config:     cfg,
		HTTPClient: server.Client(),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return client, server
}

func TestCatalogClient_Track(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tracks/12345", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "OAuth T1", r.Header.Get("Authorization"))
		fmt.Fprintf(w, `{"result":[%s]}`, trackJSON)
	})

	client, _ := newTestClient(t, mux)

	track, err := client.Track(context.Background(), "T1", "12345")
	require.NoError(t, err)

	assert.Equal(t, "12345", track.ID)
	assert.Equal(t, "Song", track.Title)
	assert.InDelta(t, 215.5, track.Duration, 0.0001)
	require.Len(t, track.Artists, 2)
	assert.Equal(t, "7", track.Artists[0].ID)
	assert.Equal(t, "8", track.Artists[1].ID)
	require.NotNil(t, track.Album.ID)
	assert.Equal(t, "456", *track.Album.ID)
	require.NotNil(t, track.Album.CoverURL)
	assert.Equal(t, "https://avatars.yandex.net/get-music-content/1/abc/200x200", *track.Album.CoverURL)
	assert.Nil(t, track.DownloadURL)
}

func TestCatalogClient_TrackWithoutAlbum(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tracks/1", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"result":[{"id":"1","title":"Lone","durationMs":1000,"artists":[],"albums":[]}]}`)
	})

	client, _ := newTestClient(t, mux)

	track, err := client.Track(context.Background(), "T1", "1")
	require.NoError(t, err)
	assert.Nil(t, track.Album.ID)
	assert.Nil(t, track.Album.Title)
	assert.Nil(t, track.Album.CoverURL)
	assert.NotNil(t, track.Artists)
}

func TestCatalogClient_TrackErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "empty result", status: http.StatusOK, body: `{"result":[]}`, wantErr: service.ErrCatalogNotFound},
		{name: "not found", status: http.StatusNotFound, body: `{"error":"not-found"}`, wantErr: service.ErrCatalogNotFound},
		{name: "token refused", status: http.StatusUnauthorized, body: ``, wantErr: service.ErrCatalogUnauthorized},
		{name: "server error", status: http.StatusBadGateway, body: `oops`, wantErr: service.ErrCatalogUnavailable},
		{name: "malformed payload", status: http.StatusOK, body: `{"result":`, wantErr: service.ErrCatalogUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/tracks/9", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			client, _ := newTestClient(t, mux)

			_, err := client.Track(context.Background(), "T1", "9")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCatalogClient_Search(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "daft punk", r.URL.Query().Get("text"))
		assert.Equal(t, "track", r.URL.Query().Get("type"))
		fmt.Fprintf(w, `{"result":{"tracks":{"total":2,"perPage":20,"results":[%s,%s]}}}`, trackJSON, trackJSON)
	})

	client, _ := newTestClient(t, mux)

	tracks, err := client.Search(context.Background(), "T1", "daft punk")
	require.NoError(t, err)
	assert.Len(t, tracks, 2)
}

func TestCatalogClient_SearchWithoutTracks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"result":{"text":"nothing"}}`)
	})

	client, _ := newTestClient(t, mux)

	tracks, err := client.Search(context.Background(), "T1", "nothing")
	require.NoError(t, err)
	assert.NotNil(t, tracks)
	assert.Empty(t, tracks)
}

func TestCatalogClient_Chart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/landing3/chart", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"result":{"chart":{"tracks":[{"track":%s},{"track":null},{"track":%s}]}}}`, trackJSON, trackJSON)
	})

	client, _ := newTestClient(t, mux)

	tracks, err := client.Chart(context.Background(), "T1")
	require.NoError(t, err)
	assert.Len(t, tracks, 2)
}

func TestCatalogClient_DownloadURL(t *testing.T) {
	mux := http.NewServeMux()
	client, server := newTestClient(t, mux)

	mux.HandleFunc("/tracks/12345/download-info", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"result":[
			{"codec":"aac","bitrateInKbps":192,"downloadInfoUrl":"%[1]s/info/aac"},
			{"codec":"mp3","bitrateInKbps":128,"downloadInfoUrl":"%[1]s/info/low"},
			{"codec":"mp3","bitrateInKbps":320,"downloadInfoUrl":"%[1]s/info/high"}
		]}`, server.URL)
	})
	mux.HandleFunc("/info/high", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0" encoding="utf-8"?>
<download-info><host>s1.storage.example</host><path>/rmusic/U2FsdGVk</path><ts>0005f</ts><region>-1</region><s>abc</s></download-info>`)
	})

	link, err := client.DownloadURL(context.Background(), "T1", "12345")
	require.NoError(t, err)

	want := directLink(downloadInfoXML{Host: "s1.storage.example", Path: "/rmusic/U2FsdGVk", TS: "0005f", S: "abc"})
	assert.Equal(t, want, link)
	assert.Regexp(t, `^https://s1\.storage\.example/get-mp3/[0-9a-f]{32}/0005f/rmusic/U2FsdGVk$`, link)
}

func TestCatalogClient_DownloadURLWithoutMP3(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tracks/1/download-info", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"result":[{"codec":"aac","bitrateInKbps":64,"downloadInfoUrl":"x"}]}`)
	})

	client, _ := newTestClient(t, mux)

	link, err := client.DownloadURL(context.Background(), "T1", "1")
	require.NoError(t, err)
	assert.Empty(t, link)
}

func TestCatalogClient_CancelledContext(t *testing.T) {
	client, _ := newTestClient(t, http.NewServeMux())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Chart(ctx, "T1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrCatalogUnavailable))
}
