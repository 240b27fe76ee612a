// Package endpoint provides the Endpoint and File types, the user-authored and
// loosely typed description of one or more HTTP calls.
//
// Nothing in this package validates: an [Endpoint] may have an empty or unparseable
// URL, an unknown method or odd header names. Turning an endpoint into something
// executable is the job of the bind package.
//
// Endpoints are values, they are passed by value (or via [Endpoint.Clone]) across
// every boundary so the editing side and the exporting side never share slices.
package endpoint

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// Method is a HTTP verb as written by the user, e.g. "get" or "POST".
type Method string

// The closed set of supported methods, in canonical form.
const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodConnect Method = "CONNECT"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
)

// Canonical returns the canonical textual form of the method, trimmed and upper case.
//
// It does not check the method is supported, use [Method.Valid] for that.
func (m Method) Canonical() Method {
	return Method(strings.ToUpper(strings.TrimSpace(string(m))))
}

// Valid reports whether the canonical form of m is one of the supported methods.
func (m Method) Valid() bool {
	switch m.Canonical() {
	case MethodGet,
		MethodHead,
		MethodPost,
		MethodPut,
		MethodPatch,
		MethodDelete,
		MethodConnect,
		MethodOptions,
		MethodTrace:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer] for [Method].
func (m Method) String() string {
	return string(m)
}

// Header is a single request header entry.
//
// Names are not required to be unique within an endpoint, binding decides
// which of a set of duplicates survives.
type Header struct {
	// Header name e.g. "Content-Type"
	Name string `json:"name" toml:"name" yaml:"name"`

	// Header value, may be empty
	Value string `json:"value,omitempty" toml:"value,omitempty" yaml:"value,omitempty"`

	// Disabled headers are kept in the document but ignored when binding
	Disabled bool `json:"disabled,omitempty" toml:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Param is a name/value pair used for query parameters and structured body fields.
type Param struct {
	// Parameter name
	Name string `json:"name" toml:"name" yaml:"name"`

	// Parameter value, may be empty
	Value string `json:"value,omitempty" toml:"value,omitempty" yaml:"value,omitempty"`

	// Disabled params are kept in the document but ignored when binding
	Disabled bool `json:"disabled,omitempty" toml:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Endpoint is the authoritative, user editable description of one HTTP call.
type Endpoint struct {
	// Optional name, if empty the endpoint is named after it's index in the file e.g. "#1"
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`

	// Optional free text comment
	Comment string `json:"comment,omitempty" toml:"comment,omitempty" yaml:"comment,omitempty"`

	// The HTTP method, in whatever case the user typed it
	Method Method `json:"method,omitempty" toml:"method,omitempty" yaml:"method,omitempty"`

	// The URL, may not be valid or even absolute
	URL string `json:"url,omitempty" toml:"url,omitempty" yaml:"url,omitempty"`

	// Request headers in the order they were written
	Headers []Header `json:"headers,omitempty" toml:"headers,omitempty" yaml:"headers,omitempty"`

	// Query parameters to be appended to the URL
	Query []Param `json:"query,omitempty" toml:"query,omitempty" yaml:"query,omitempty"`

	// The request body, the zero Body means no body
	Body Body `json:"body,omitzero" toml:"body,omitempty" yaml:"body,omitempty"`
}

// Clone returns a deep copy of the endpoint, sharing no memory with e.
func (e Endpoint) Clone() Endpoint {
	clone := e
	clone.Headers = slices.Clone(e.Headers)
	clone.Query = slices.Clone(e.Query)
	clone.Body = e.Body.Clone()

	return clone
}

// Equal reports whether e and other are structurally equal.
//
// A nil slice and an empty slice are considered equal.
func (e Endpoint) Equal(other Endpoint) bool {
	return e.Name == other.Name &&
		e.Comment == other.Comment &&
		e.Method == other.Method &&
		e.URL == other.URL &&
		slices.Equal(e.Headers, other.Headers) &&
		slices.Equal(e.Query, other.Query) &&
		e.Body.Equal(other.Body)
}

// String implements [fmt.Stringer] for an [Endpoint] and formats it as a
// request block in a .http file.
//
// Disabled headers and params are rendered commented out so nothing the user
// wrote is lost.
func (e Endpoint) String() string {
	builder := &strings.Builder{}

	if e.Comment != "" {
		fmt.Fprintf(builder, "### %s\n", e.Comment)
	} else {
		builder.WriteString("###\n")
	}

	if e.Name != "" {
		fmt.Fprintf(builder, "# @name = %s\n", e.Name)
	}

	fmt.Fprintf(builder, "%s %s\n", e.Method, e.URL)

	for _, param := range e.Query {
		prefix := "?"
		if param.Disabled {
			prefix = "# ?"
		}

		fmt.Fprintf(builder, "%s%s=%s\n", prefix, param.Name, param.Value)
	}

	for _, header := range e.Headers {
		if header.Disabled {
			builder.WriteString("# ")
		}

		fmt.Fprintf(builder, "%s: %s\n", header.Name, header.Value)
	}

	switch e.Body.Kind {
	case KindRaw:
		if len(e.Body.Content) != 0 {
			builder.WriteString("\n")
			builder.Write(bytes.TrimRight(e.Body.Content, "\n"))
			builder.WriteString("\n")
		}
	case KindURLEncoded, KindMultipart:
		builder.WriteString("\n")

		for _, field := range e.Body.Fields {
			if field.Disabled {
				continue
			}

			fmt.Fprintf(builder, "%s=%s\n", field.Name, field.Value)
		}
	}

	return builder.String()
}
