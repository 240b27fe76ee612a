package courier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ShowOptions are the flags passed to the show subcommand.
type ShowOptions struct {
	// Requests is the list of endpoint names to show, empty or nil means
	// show every endpoint in the file.
	Requests []string

	// Pick, if true, selects the endpoints to show interactively.
	Pick bool

	// Debug controls debug logging.
	Debug bool
}

// Validate reports whether the ShowOptions is valid, returning a non-nil
// error if it's not.
func (s ShowOptions) Validate() error {
	if s.Pick && len(s.Requests) != 0 {
		return errors.New("--pick and --request are mutually exclusive")
	}

	return nil
}

// Show implements the show subcommand, printing endpoints as a .http document.
func (c Courier) Show(ctx context.Context, file string, options ShowOptions) error {
	logger := c.logger.Prefixed("show").With(slog.String("file", file))

	if err := options.Validate(); err != nil {
		return err
	}

	doc, err := c.selectEndpoints(ctx, logger, file, options.Requests, options.Pick)
	if err != nil {
		return err
	}

	fmt.Fprint(c.stdout, doc.String())

	return nil
}
