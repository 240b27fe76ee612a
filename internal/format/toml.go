package format

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/courier/internal/endpoint"
)

// TOMLImporter is an [Importer] that decodes TOML endpoint documents.
type TOMLImporter struct{}

// Import implements [Importer] for [TOMLImporter] and decodes the given
// TOML document into an [endpoint.File].
func (t TOMLImporter) Import(r io.Reader) (endpoint.File, error) {
	var file endpoint.File

	meta, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return endpoint.File{}, fmt.Errorf("could not decode TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		return endpoint.File{}, fmt.Errorf("could not decode TOML: unknown keys %v", undecoded)
	}

	return file, nil
}
