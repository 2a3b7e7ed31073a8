// Package httpclient provides the outbound HTTP client shared by the provider integrations.
package httpclient

import (
	"net"
	"net/http"
	"time"

	"musiclib/config"
)

const (
	dialTimeout         = 5 * time.Second
	tlsHandshakeTimeout = 5 * time.Second
	maxIdleConnsPerHost = 16
)

// New builds an http.Client whose total request time is bounded by yandex.timeout.
func New(cfg *config.Config) *http.Client {
	timeout := 10 * time.Second
	if cfg.Yandex != nil && cfg.Yandex.Timeout > 0 {
		timeout = cfg.Yandex.Timeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: dialTimeout}).DialContext
	transport.TLSHandshakeTimeout = tlsHandshakeTimeout
	transport.MaxIdleConnsPerHost = maxIdleConnsPerHost

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
