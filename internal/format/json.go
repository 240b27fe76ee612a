package format

import (
	"encoding/json"
	"fmt"
	"io"

	"go.followtheprocess.codes/courier/internal/endpoint"
)

// JSONImporter is an [Importer] that decodes JSON endpoint documents.
type JSONImporter struct{}

// Import implements [Importer] for [JSONImporter] and decodes the given
// JSON document into an [endpoint.File].
//
// Unknown fields are an error so typos don't silently disappear.
func (j JSONImporter) Import(r io.Reader) (endpoint.File, error) {
	var file endpoint.File

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&file); err != nil {
		return endpoint.File{}, fmt.Errorf("could not decode JSON: %w", err)
	}

	return file, nil
}
