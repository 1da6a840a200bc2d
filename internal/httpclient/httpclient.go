// Package httpclient builds the HTTP client used by the fetch executor.
package httpclient

import (
	"net"
	"net/http"
	"time"
)

// New creates an HTTP client for a single GET invocation. The timeout is a
// hard upper bound on the total request duration, response body included.
func New(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy:                  http.ProxyFromEnvironment,
		DialContext:            dialer.DialContext,
		TLSHandshakeTimeout:    10 * time.Second,
		ExpectContinueTimeout:  1 * time.Second,
		IdleConnTimeout:        60 * time.Second,
		MaxIdleConns:           10,
		MaxIdleConnsPerHost:    2,
		MaxResponseHeaderBytes: 1 << 20, // 1 MiB
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
