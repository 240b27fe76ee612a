// Package courier implements the functionality of the program, the CLI in package cmd is simply the
// entrypoint to exported functions and methods in this package.
package courier

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.followtheprocess.codes/courier/internal/endpoint"
	"go.followtheprocess.codes/courier/internal/format"
	"go.followtheprocess.codes/log"
)

// Courier represents the courier program.
type Courier struct {
	stdin   io.Reader   // Interactive input is read from here
	stdout  io.Writer   // Normal program output is written here
	stderr  io.Writer   // Logs and errors are written here
	logger  *log.Logger // The logger for the application
	version string      // The version of courier, sent in the User-Agent
}

// New returns a new [Courier].
func New(debug bool, version string, stdin io.Reader, stdout, stderr io.Writer) Courier {
	level := log.LevelInfo
	if debug {
		level = log.LevelDebug
	}

	logger := log.New(stderr, log.WithLevel(level), log.Prefix("courier"))

	return Courier{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
		version: version,
	}
}

// selectEndpoints loads the endpoint document at path and returns the endpoints
// to operate on.
//
// If pick is true the user chooses interactively, otherwise names filters the
// endpoints, empty meaning all of them.
func (c Courier) selectEndpoints(ctx context.Context, logger *log.Logger, path string, names []string, pick bool) (endpoint.File, error) {
	file, err := format.Load(path)
	if err != nil {
		return endpoint.File{}, err
	}

	logger.Debug("Loaded endpoint document", slog.String("file", path), slog.Int("endpoints", len(file.Endpoints)))

	if len(file.Endpoints) == 0 {
		return endpoint.File{}, fmt.Errorf("%s contains no endpoints", path)
	}

	if pick {
		names, err = c.pick(ctx, file)
		if err != nil {
			return endpoint.File{}, err
		}
	}

	selected := file.Filter(names...)
	if len(selected) == 0 {
		return endpoint.File{}, fmt.Errorf("no matching endpoints for names %v in %s", names, path)
	}

	logger.Debug("Filtered endpoints", slog.Int("count", len(selected)))

	return endpoint.File{Name: file.Name, Endpoints: selected}, nil
}
