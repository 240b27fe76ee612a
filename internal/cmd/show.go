package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/courier/internal/courier"
)

// show returns the courier show subcommand.
func show() (*cli.Command, error) {
	var (
		options courier.ShowOptions
		file    string
	)

	return cli.New(
		"show",
		cli.Short("Print endpoints as .http requests"),
		cli.Arg(&file, "file", "Path to the endpoint document"),
		cli.Flag(&options.Requests, "request", 'r', "Name(s) of endpoints to show"),
		cli.Flag(&options.Pick, "pick", 'p', "Pick the endpoints to show interactively"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := courier.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Show(ctx, file, options)
		}),
	)
}
