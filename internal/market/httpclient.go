package market

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates an *http.Client for outbound market data calls.
//
// http.DefaultClient has no timeout, so callers always go through this constructor.
// The overall request timeout is supplied by the caller; the transport settings
// bound dialing and TLS handshakes separately.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
