// Package cmd implements courier's CLI.
package cmd

import (
	"go.followtheprocess.codes/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the courier CLI.
func Build() (*cli.Command, error) {
	return cli.New(
		"courier",
		cli.Short("Compose HTTP requests from endpoint documents, run them and export them as curl"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Export every endpoint in a file as a curl command", "courier export ./api.yaml"),
		cli.Example("Export a single endpoint", "courier export ./api.yaml --request CreateUser"),
		cli.Example("Pick endpoints to run interactively", "courier run ./api.toml --pick"),
		cli.Example(
			"Run a single endpoint, setting a bunch of options",
			"courier run ./api.json --request GetUser --timeout 10s --no-redirect",
		),
		cli.Example("Check every endpoint document in a directory (recursively)", "courier check ./endpoints"),
		cli.SubCommands(export, check, show, run),
	)
}
