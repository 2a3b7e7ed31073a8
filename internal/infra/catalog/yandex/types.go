package yandex

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// flexID accepts ids encoded either as JSON numbers or strings.
type flexID string

func (id *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*id = flexID(n.String())

	return nil
}

type envelope[T any] struct {
	Result T `json:"result"`
}

type trackDTO struct {
	ID         flexID      `json:"id"`
	Title      string      `json:"title"`
	DurationMs int64       `json:"durationMs"`
	Artists    []artistDTO `json:"artists"`
	Albums     []albumDTO  `json:"albums"`
	CoverURI   string      `json:"coverUri"`
}

type artistDTO struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

type albumDTO struct {
	ID       flexID `json:"id"`
	Title    string `json:"title"`
	CoverURI string `json:"coverUri"`
}

type searchResultDTO struct {
	Tracks *struct {
		Total   int         `json:"total"`
		PerPage int         `json:"perPage"`
		Results []*trackDTO `json:"results"`
	} `json:"tracks"`
}

type chartResultDTO struct {
	Chart *struct {
		Tracks []struct {
			Track *trackDTO `json:"track"`
		} `json:"tracks"`
	} `json:"chart"`
}

type downloadInfoDTO struct {
	Codec           string `json:"codec"`
	BitrateInKbps   int    `json:"bitrateInKbps"`
	DownloadInfoURL string `json:"downloadInfoUrl"`
	Preview         bool   `json:"preview"`
}

// downloadInfoXML is the document behind downloadInfoUrl.
type downloadInfoXML struct {
	Host string `xml:"host"`
	Path string `xml:"path"`
	TS   string `xml:"ts"`
	S    string `xml:"s"`
}
