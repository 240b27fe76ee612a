package format

import (
	"errors"
	"fmt"
	"io"

	"go.followtheprocess.codes/courier/internal/endpoint"
	"go.yaml.in/yaml/v4"
)

// YAMLImporter is an [Importer] that decodes YAML endpoint documents.
type YAMLImporter struct{}

// Import implements [Importer] for [YAMLImporter] and decodes the given
// YAML document into an [endpoint.File].
func (y YAMLImporter) Import(r io.Reader) (endpoint.File, error) {
	var file endpoint.File

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil {
		// An empty document is an empty file, not an error
		if errors.Is(err, io.EOF) {
			return endpoint.File{}, nil
		}

		return endpoint.File{}, fmt.Errorf("could not decode YAML: %w", err)
	}

	return file, nil
}
