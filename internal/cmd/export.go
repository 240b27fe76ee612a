package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/courier/internal/config"
	"go.followtheprocess.codes/courier/internal/courier"
)

const exportLong = `
Each selected endpoint is bound and rendered as a shell command on stdout.

Headers are always emitted sorted by name so exports are stable. A JSON
body is compacted onto a single line, other bodies are left out.

An endpoint that cannot be bound is reported and skipped, the remaining
endpoints are still exported but the command exits non-zero.

If '--format' is not given, the format from the config file is used.
`

// export returns the courier export subcommand.
func export() (*cli.Command, error) {
	var (
		options    courier.ExportOptions
		file       string
		configPath string
	)

	return cli.New(
		"export",
		cli.Short("Export endpoints to an alternative format"),
		cli.Long(exportLong),
		cli.Arg(&file, "file", "Path to the endpoint document"),
		cli.Flag(&options.Format, "format", 'f', "Export format, one of (curl)"),
		cli.Flag(&options.Requests, "request", 'r', "Name(s) of endpoints to export"),
		cli.Flag(&options.Pick, "pick", 'p', "Pick the endpoints to export interactively"),
		cli.Flag(&configPath, "config", flag.NoShortHand, "Path to a config file"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			app := courier.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Export(ctx, file, options.WithConfig(cfg))
		}),
	)
}
