package courier

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// HTTP config.
const (
	maxIdleConns          = 100
	idleConnTimeout       = 90 * time.Second
	expectContinueTimeout = 1 * time.Second
)

// ClientOptions configure the HTTP client used to execute requests.
type ClientOptions struct {
	// Timeout is the amount of time allowed for the entire request/response
	// cycle for a single request.
	Timeout time.Duration

	// ConnectionTimeout is the amount of time allowed for the HTTP connection/TLS handshake
	// for a single request.
	ConnectionTimeout time.Duration

	// NoRedirect, if true, disables following http redirects.
	NoRedirect bool

	// Insecure, if true, skips verification of server TLS certificates.
	Insecure bool
}

// NewHTTPClient returns a new HTTP client configured by options.
func NewHTTPClient(options ClientOptions) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   options.ConnectionTimeout,
			KeepAlive: options.Timeout,
		}).DialContext,
		MaxIdleConns:          maxIdleConns,
		IdleConnTimeout:       idleConnTimeout,
		TLSHandshakeTimeout:   options.ConnectionTimeout,
		ExpectContinueTimeout: expectContinueTimeout,
		ForceAttemptHTTP2:     true,
		MaxIdleConnsPerHost:   http.DefaultMaxIdleConnsPerHost,
	}

	if options.Insecure {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // Explicitly requested with --insecure
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   options.Timeout,
	}

	if options.NoRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return client
}
