package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/courier/internal/courier"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of an endpoint document, then this file alone is
checked for validity.

If it is a directory, this directory is scanned recursively for all
files with a '.yaml', '.yml', '.json' or '.toml' extension and any
matching files will be validated.

A document is valid if it decodes cleanly and every endpoint in it
binds to a request: a supported method, an absolute http(s) URL and
well formed headers.
`

// check returns the courier check subcommand.
func check() (*cli.Command, error) {
	var options courier.CheckOptions

	return cli.New(
		"check",
		cli.Short("Check endpoint documents for errors"),
		cli.Long(checkLong),
		cli.Arg(&options.Path, "path", "Path to check, may be directory or file", cli.ArgDefault(".")),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := courier.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Check(ctx, options)
		}),
	)
}
