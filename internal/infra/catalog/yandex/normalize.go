package yandex

import (
	"crypto/md5" //nolint:gosec // the storage host signs links with md5
	"encoding/hex"
	"strings"

	"musiclib/internal/domain/entity"
)

const (
	coverSize        = "200x200"
	coverPlaceholder = "%%"
	downloadSignSalt = "XGRlBW9FXlekgbPrRHuSiA"
)

func normalizeTrack(dto *trackDTO) *entity.NormalizedTrack {
	track := &entity.NormalizedTrack{
		ID:       string(dto.ID),
		Title:    dto.Title,
		Artists:  make([]entity.Artist, 0, len(dto.Artists)),
		Duration: float64(dto.DurationMs) / 1000,
	}

	for _, artist := range dto.Artists {
		track.Artists = append(track.Artists, entity.Artist{
			ID:   string(artist.ID),
			Name: artist.Name,
		})
	}

	if len(dto.Albums) > 0 {
		album := dto.Albums[0]
		id := string(album.ID)
		title := album.Title
		track.Album.ID = &id
		track.Album.Title = &title
		track.Album.CoverURL = coverURL(album.CoverURI)
	}

	return track
}

func normalizeTracks(dtos []*trackDTO) []*entity.NormalizedTrack {
	tracks := make([]*entity.NormalizedTrack, 0, len(dtos))
	for _, dto := range dtos {
		if dto == nil {
			continue
		}
		tracks = append(tracks, normalizeTrack(dto))
	}

	return tracks
}

// coverURL turns a templated cover URI such as "avatars.yandex.net/get-music-content/x/%%"
// into an absolute URL of a fixed size.
func coverURL(uri string) *string {
	if uri == "" {
		return nil
	}

	url := "https://" + strings.ReplaceAll(uri, coverPlaceholder, coverSize)

	return &url
}

// pickDownloadInfo prefers full-length mp3 with the highest bitrate.
func pickDownloadInfo(infos []downloadInfoDTO) (downloadInfoDTO, bool) {
	var best downloadInfoDTO
	found := false

	for _, info := range infos {
		if info.Codec != "mp3" || info.Preview || info.DownloadInfoURL == "" {
			continue
		}
		if !found || info.BitrateInKbps > best.BitrateInKbps {
			best = info
			found = true
		}
	}

	return best, found
}

// directLink builds the signed storage URL from a download-info document.
func directLink(info downloadInfoXML) string {
	path := strings.TrimPrefix(info.Path, "/")
	sum := md5.Sum([]byte(downloadSignSalt + path + info.S)) //nolint:gosec

	return "https://" + info.Host + "/get-mp3/" + hex.EncodeToString(sum[:]) + "/" + info.TS + "/" + path
}
