package endpoint

import (
	"fmt"
	"slices"
	"strings"
)

// File is a single endpoint document, a named collection of endpoints.
type File struct {
	// Name of the collection, optional
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`

	// The endpoints described in the file, in document order
	Endpoints []Endpoint `json:"endpoints,omitempty" toml:"endpoints,omitempty" yaml:"endpoints,omitempty"`
}

// NameEndpoints gives every unnamed endpoint a name based on its position in the
// file e.g. "#1", "#2".
func (f File) NameEndpoints() File {
	named := File{
		Name:      f.Name,
		Endpoints: make([]Endpoint, 0, len(f.Endpoints)),
	}

	for i, endpoint := range f.Endpoints {
		endpoint = endpoint.Clone()
		if endpoint.Name == "" {
			endpoint.Name = fmt.Sprintf("#%d", i+1)
		}

		named.Endpoints = append(named.Endpoints, endpoint)
	}

	return named
}

// Get returns a clone of the endpoint with the given name and whether it was found.
func (f File) Get(name string) (Endpoint, bool) {
	for _, endpoint := range f.Endpoints {
		if endpoint.Name == name {
			return endpoint.Clone(), true
		}
	}

	return Endpoint{}, false
}

// Filter returns clones of the endpoints whose names are in names, preserving
// document order.
//
// Empty or nil names means every endpoint in the file.
func (f File) Filter(names ...string) []Endpoint {
	var filtered []Endpoint

	for _, endpoint := range f.Endpoints {
		if len(names) == 0 || slices.Contains(names, endpoint.Name) {
			filtered = append(filtered, endpoint.Clone())
		}
	}

	return filtered
}

// Names returns the names of every endpoint in the file.
func (f File) Names() []string {
	names := make([]string, 0, len(f.Endpoints))
	for _, endpoint := range f.Endpoints {
		names = append(names, endpoint.Name)
	}

	return names
}

// String implements [fmt.Stringer] for a [File], rendering every endpoint
// as a .http request block.
func (f File) String() string {
	builder := &strings.Builder{}

	if f.Name != "" {
		fmt.Fprintf(builder, "@name = %s\n\n", f.Name)
	}

	for i, endpoint := range f.Endpoints {
		if i > 0 {
			builder.WriteByte('\n')
		}

		builder.WriteString(endpoint.String())
	}

	return builder.String()
}
