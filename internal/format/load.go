package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.followtheprocess.codes/courier/internal/endpoint"
)

// Extensions are the file extensions of endpoint documents that can be imported.
//
//nolint:gochecknoglobals // Read only lookup table
var Extensions = []string{".yaml", ".yml", ".json", ".toml"}

// ImporterFor returns the [Importer] for an endpoint document based on the
// extension of its path.
func ImporterFor(path string) (Importer, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return YAMLImporter{}, nil
	case ".json":
		return JSONImporter{}, nil
	case ".toml":
		return TOMLImporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported endpoint document %s, extension must be one of %v", path, Extensions)
	}
}

// Load opens and imports the endpoint document at path.
//
// Unnamed endpoints are given a name based on their position in the file.
func Load(path string) (endpoint.File, error) {
	importer, err := ImporterFor(path)
	if err != nil {
		return endpoint.File{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return endpoint.File{}, fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	file, err := importer.Import(f)
	if err != nil {
		return endpoint.File{}, fmt.Errorf("%s: %w", path, err)
	}

	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return file.NameEndpoints(), nil
}
