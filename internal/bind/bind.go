// Package bind turns a loosely typed [endpoint.Endpoint] into a [Request], a concrete
// and executable HTTP request with a parsed absolute URL, a canonical method and
// a finalised header map.
//
// Binding is a pure function of its input. It never mutates the endpoint, keeps no
// state between calls and is safe to call from any goroutine.
package bind

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.followtheprocess.codes/courier/internal/endpoint"
	"golang.org/x/net/http/httpguts"
)

// Binding errors, every error returned from [Bind] wraps exactly one of these.
var (
	// ErrInvalidURL means the URL is empty or does not parse as an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrUnsupportedMethod means the method is not one of the supported HTTP verbs.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrInvalidHeader means a header name or value cannot be safely sent or emitted.
	ErrInvalidHeader = errors.New("invalid header")
)

// Request is the validated, executable projection of an [endpoint.Endpoint].
//
// A Request obtained from [Bind] always has a supported method and an absolute
// URL with a http or https scheme and a host. It should be treated as immutable.
type Request struct {
	// Absolute URL, including any query parameters from the endpoint
	URL *url.URL

	// Header has exactly one value per canonical header name
	Header http.Header

	// The canonical HTTP method
	Method endpoint.Method

	// The request body, copied from the endpoint
	Body endpoint.Body
}

// Bind validates and normalises ep into a [Request].
//
// On failure the zero Request is returned along with an error wrapping one of
// [ErrInvalidURL], [ErrUnsupportedMethod] or [ErrInvalidHeader].
//
// Duplicate header names (compared case insensitively) collapse to a single entry,
// the last enabled occurrence in the endpoint wins.
func Bind(ep endpoint.Endpoint) (Request, error) {
	method, err := bindMethod(ep.Method)
	if err != nil {
		return Request{}, err
	}

	u, err := bindURL(ep.URL, ep.Query)
	if err != nil {
		return Request{}, err
	}

	header, err := bindHeaders(ep.Headers)
	if err != nil {
		return Request{}, err
	}

	request := Request{
		Method: method,
		URL:    u,
		Header: header,
		Body:   ep.Body.Clone(),
	}

	return request, nil
}

// bindMethod canonicalises the method, failing if it's not supported.
func bindMethod(method endpoint.Method) (endpoint.Method, error) {
	if !method.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}

	return method.Canonical(), nil
}

// bindURL parses raw into an absolute URL, defaulting the scheme where the URL
// obviously starts with a host, and appends any enabled query params.
func bindURL(raw string, query []endpoint.Param) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: URL is empty", ErrInvalidURL)
	}

	if !strings.Contains(raw, "://") && looksLikeHost(raw) {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	switch {
	case !u.IsAbs():
		return nil, fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidURL, raw)
	case u.Scheme != "http" && u.Scheme != "https":
		return nil, fmt.Errorf("%w: unsupported scheme %q, expected http or https", ErrInvalidURL, u.Scheme)
	case u.Host == "":
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}

	u.RawQuery = appendQuery(u.RawQuery, query)

	return u, nil
}

// appendQuery appends the enabled params to an existing raw query string in order,
// leaving whatever was already in the URL untouched.
func appendQuery(raw string, params []endpoint.Param) string {
	parts := make([]string, 0, len(params)+1)
	if raw != "" {
		parts = append(parts, raw)
	}

	for _, param := range params {
		if param.Disabled {
			continue
		}

		parts = append(parts, url.QueryEscape(param.Name)+"="+url.QueryEscape(param.Value))
	}

	return strings.Join(parts, "&")
}

// looksLikeHost reports whether the start of raw (up to the first '/', '?' or '#')
// is plausibly a host, i.e. "localhost", something with a port, or a dotted name.
//
// Relative paths like "/users", "./users" or "users/1" are not hosts, nor is
// anything with userinfo as "mailto:me@example.com" would otherwise qualify.
func looksLikeHost(raw string) bool {
	end := strings.IndexAny(raw, "/?#")
	if end == -1 {
		end = len(raw)
	}

	host := raw[:end]

	switch {
	case host == "", strings.HasPrefix(host, "."), strings.Contains(host, "@"):
		return false
	case strings.ContainsAny(host, " \t"):
		// Definitely not a host, but let the parser decide rather than call it relative
		return true
	case host == "localhost", strings.HasPrefix(host, "localhost:"):
		return true
	case strings.Contains(host, ":"), strings.Contains(host, "."):
		return true
	default:
		return false
	}
}

// bindHeaders validates the enabled headers and collapses duplicates, last one wins.
func bindHeaders(headers []endpoint.Header) (http.Header, error) {
	bound := make(http.Header, len(headers))

	for i, header := range headers {
		if header.Disabled {
			continue
		}

		name := strings.TrimSpace(header.Name)

		if name == "" {
			return nil, fmt.Errorf("%w: header %d has an empty name", ErrInvalidHeader, i+1)
		}

		if !httpguts.ValidHeaderFieldName(name) {
			return nil, fmt.Errorf("%w: name %q is not a valid header field name", ErrInvalidHeader, name)
		}

		if !httpguts.ValidHeaderFieldValue(header.Value) {
			return nil, fmt.Errorf("%w: value for %q contains control characters", ErrInvalidHeader, name)
		}

		bound.Set(name, header.Value)
	}

	return bound, nil
}
