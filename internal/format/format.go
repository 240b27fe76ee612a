// Package format provides mechanisms for converting endpoints into and out of
// external representations.
//
// Notably, the package provides the [Exporter] interface for rendering an endpoint
// as text (e.g. a curl command) and the [Importer] interface for decoding endpoint
// documents (JSON, YAML, TOML) into an [endpoint.File].
//
// Exporters always bind the endpoint first, so adding a new export format never
// requires touching the bind package.
package format

import (
	"fmt"
	"io"

	"go.followtheprocess.codes/courier/internal/endpoint"
)

// Exporter is the interface defining a mechanism for exporting an endpoint
// into an external textual format.
type Exporter interface {
	// Generate renders the endpoint, returning any binding error unchanged.
	Generate(ep endpoint.Endpoint) (string, error)
}

// Importer is the interface defining a mechanism for importing external formats
// into endpoint documents.
type Importer interface {
	// Import imports the data from the external format into an [endpoint.File].
	Import(r io.Reader) (endpoint.File, error)
}

// Kind is the kind of export selected for an endpoint.
type Kind int

const (
	// KindNone means no export has been selected.
	KindNone Kind = iota

	// KindCurl is a curl shell command.
	KindCurl
)

// Kinds returns every export kind, in the order a picker should show them.
func Kinds() []Kind {
	return []Kind{KindNone, KindCurl}
}

// String implements [fmt.Stringer] for [Kind].
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCurl:
		return "curl"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Exporter returns the [Exporter] for the kind, and false if the kind has none.
func (k Kind) Exporter() (Exporter, bool) {
	switch k {
	case KindCurl:
		return CurlExporter{}, true
	default:
		return nil, false
	}
}

// ParseKind parses the name of an export kind, as returned by [Kind.String].
func ParseKind(name string) (Kind, error) {
	for _, kind := range Kinds() {
		if kind.String() == name {
			return kind, nil
		}
	}

	return KindNone, fmt.Errorf("unknown export format %q, allowed values are 'none', 'curl'", name)
}

// ExportType moves an endpoint from the editing side across to the exporting side
// without the latter depending on how endpoints are edited.
//
// It carries a clone of the endpoint taken at the point it was created, so later
// edits to the original are never observed by the export.
type ExportType struct {
	endpoint endpoint.Endpoint
	kind     Kind
}

// ToExportType wraps a clone of ep for export as the given kind.
func ToExportType(kind Kind, ep endpoint.Endpoint) ExportType {
	if kind == KindNone {
		return ExportType{kind: KindNone}
	}

	return ExportType{kind: kind, endpoint: ep.Clone()}
}

// Kind returns the kind of export selected.
func (e ExportType) Kind() Kind {
	return e.kind
}

// Endpoint returns a clone of the wrapped endpoint.
func (e ExportType) Endpoint() endpoint.Endpoint {
	return e.endpoint.Clone()
}

// FromExportType runs the selected exporter, returning the text and true on success.
//
// It returns "", false if no export is selected or if generation failed, the
// caller decides how to surface that, but must not show partial output.
func FromExportType(export ExportType) (string, bool) {
	exporter, ok := export.kind.Exporter()
	if !ok {
		return "", false
	}

	text, err := exporter.Generate(export.endpoint)
	if err != nil {
		return "", false
	}

	return text, true
}
