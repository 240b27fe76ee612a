package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/courier/internal/config"
	"go.followtheprocess.codes/courier/internal/courier"
)

const runLong = `
Each selected endpoint is bound and sent, the response status, headers
and body are printed in turn.

The '--connection-timeout' and '--timeout' flags apply to individual requests,
if you're executing multiple requests and want an overall timeout for
the entire collection, pass '--overall-timeout'.

Timeouts, redirect handling and TLS verification default to the values in
the config file, command line flags take precedence.

The response body can be saved to a file with the '--output' flag.
`

// run returns the courier run subcommand.
func run() (*cli.Command, error) {
	var (
		options    courier.RunOptions
		file       string
		configPath string
	)

	return cli.New(
		"run",
		cli.Short("Execute one or more endpoints from a file"),
		cli.Long(runLong),
		cli.Arg(&file, "file", "Path to the endpoint document"),
		cli.Flag(&options.Requests, "request", 'r', "Name(s) of endpoints to run"),
		cli.Flag(&options.Pick, "pick", 'p', "Pick the endpoints to run interactively"),
		cli.Flag(&options.Timeout, "timeout", flag.NoShortHand, "Timeout for the request"),
		cli.Flag(
			&options.ConnectionTimeout,
			"connection-timeout",
			flag.NoShortHand,
			"Connection timeout for the request",
		),
		cli.Flag(
			&options.OverallTimeout,
			"overall-timeout",
			flag.NoShortHand,
			"Overall timeout for the execution",
			cli.FlagDefault(courier.DefaultOverallTimeout),
		),
		cli.Flag(&options.NoRedirect, "no-redirect", flag.NoShortHand, "Disable following redirects"),
		cli.Flag(&options.Insecure, "insecure", 'k', "Skip TLS certificate verification"),
		cli.Flag(&options.Output, "output", 'o', "Name of a file to save the response body"),
		cli.Flag(&configPath, "config", flag.NoShortHand, "Path to a config file"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			app := courier.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Run(ctx, file, options.WithConfig(cfg))
		}),
	)
}
