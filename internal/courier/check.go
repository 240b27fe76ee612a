package courier

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.followtheprocess.codes/courier/internal/bind"
	"go.followtheprocess.codes/courier/internal/format"
	"go.followtheprocess.codes/msg"
	"golang.org/x/sync/errgroup"
)

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string

	// Debug enables debug logging.
	Debug bool
}

// Check implements the check subcommand.
//
// Every endpoint in every document under the path is bound, a document is valid
// only if all of its endpoints bind successfully.
func (c Courier) Check(ctx context.Context, options CheckOptions) error {
	logger := c.logger.Prefixed("check").With(slog.String("path", options.Path))
	logger.Debug("Checking path")

	info, err := os.Stat(options.Path)
	if err != nil {
		return fmt.Errorf("could not get path info: %w", err)
	}

	var paths []string

	if info.IsDir() {
		logger.Debug("Path is a directory")

		err = filepath.WalkDir(options.Path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && slices.Contains(format.Extensions, strings.ToLower(filepath.Ext(path))) {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return fmt.Errorf("could not walk %s: %w", options.Path, err)
		}
	} else {
		logger.Debug("Path is a file")

		paths = []string{options.Path}
	}

	if len(paths) == 0 {
		return fmt.Errorf("no endpoint documents found in %s", options.Path)
	}

	logger.Debug("Checking endpoint documents given by path", slog.Int("number", len(paths)))

	// Each goroutine owns one slot so results come out in walk order
	results := make([]error, len(paths))

	group, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = checkFile(path)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	invalid := 0

	for i, path := range paths {
		if results[i] != nil {
			invalid++

			msg.Ferror(c.stderr, "%v", results[i])

			continue
		}

		msg.Fsuccess(c.stdout, "%s is valid", path)
	}

	if invalid != 0 {
		return fmt.Errorf("%d of %d file(s) are invalid", invalid, len(paths))
	}

	return nil
}

// checkFile loads a single endpoint document and binds every endpoint in it.
func checkFile(path string) error {
	file, err := format.Load(path)
	if err != nil {
		return err
	}

	var errs []error

	for _, ep := range file.Endpoints {
		if _, err := bind.Bind(ep); err != nil {
			errs = append(errs, fmt.Errorf("%s: endpoint %s: %w", path, ep.Name, err))
		}
	}

	return errors.Join(errs...)
}
