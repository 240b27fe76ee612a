package courier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.followtheprocess.codes/courier/internal/bind"
	"go.followtheprocess.codes/courier/internal/config"
	"go.followtheprocess.codes/courier/internal/format"
)

// ExportOptions are the flags passed to the export subcommand.
type ExportOptions struct {
	// Format is the format of the export e.g. curl.
	//
	// Empty means use the configured default.
	Format string

	// Requests is the list of endpoint names to export, empty or nil means
	// export all endpoints from the file.
	Requests []string

	// Pick, if true, selects the endpoints to export interactively.
	Pick bool

	// Debug controls debug logging.
	Debug bool
}

// WithConfig returns a copy of e with anything not set on the command line
// taken from cfg.
func (e ExportOptions) WithConfig(cfg config.Config) ExportOptions {
	if e.Format == "" {
		e.Format = cfg.Format
	}

	return e
}

// Validate reports whether the ExportOptions is valid, returning a non-nil
// error if it's not.
func (e ExportOptions) Validate() error {
	kind, err := format.ParseKind(e.Format)
	if err != nil {
		return fmt.Errorf("invalid option for --format: %w", err)
	}

	if kind == format.KindNone {
		return errors.New("--format none has nothing to export, allowed values are 'curl'")
	}

	if e.Pick && len(e.Requests) != 0 {
		return errors.New("--pick and --request are mutually exclusive")
	}

	return nil
}

// Export handles the export subcommand.
//
// Every selected endpoint is exported in turn. One that fails prints nothing and is
// reported as a warning, after which the remaining endpoints are still exported and
// the command fails once they are done.
func (c Courier) Export(ctx context.Context, file string, options ExportOptions) error {
	logger := c.logger.Prefixed("export").With(slog.String("file", file))

	logger.Debug("Export configuration", slog.String("options", fmt.Sprintf("%+v", options)))

	if err := options.Validate(); err != nil {
		return err
	}

	kind, err := format.ParseKind(options.Format)
	if err != nil {
		return err
	}

	doc, err := c.selectEndpoints(ctx, logger, file, options.Requests, options.Pick)
	if err != nil {
		return err
	}

	failed := 0
	printed := 0

	for _, ep := range doc.Endpoints {
		logger.Debug(
			"Exporting endpoint",
			slog.String("endpoint", ep.Name),
			slog.String("format", kind.String()),
		)

		exported, ok := format.FromExportType(format.ToExportType(kind, ep))
		if !ok {
			failed++

			attrs := []slog.Attr{slog.String("endpoint", ep.Name)}
			if _, err := bind.Bind(ep); err != nil {
				attrs = append(attrs, slog.String("reason", err.Error()))
			}

			logger.Warn("Could not export endpoint", attrs...)

			continue
		}

		if printed > 0 {
			fmt.Fprintln(c.stdout)
		}

		fmt.Fprintln(c.stdout, exported)

		printed++
	}

	if failed != 0 {
		return fmt.Errorf("%d of %d endpoint(s) in %s could not be exported", failed, len(doc.Endpoints), file)
	}

	return nil
}
