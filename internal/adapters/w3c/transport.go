package w3c

import (
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.trai.ch/markcheck/internal/core/domain"
)

// NewHTTPClient constructs the http.Client used for validator requests.
// Requests go through cfg.Proxy when set and connect directly otherwise;
// proxy environment variables are ignored.
func NewHTTPClient(cfg domain.Config) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}

	transport := &http.Transport{
		Proxy:                 proxyFunc(cfg.Proxy),
		DialContext:           (&net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}).DialContext,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
		MaxIdleConns:          4,
		IdleConnTimeout:       90 * time.Second,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

func proxyFunc(proxy *domain.ProxyConfig) func(*http.Request) (*url.URL, error) {
	if proxy == nil {
		return nil
	}
	return http.ProxyURL(&url.URL{Scheme: "http", Host: proxy.Address()})
}
