package main

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/pagesconf/cmd/pagesconf/commands"
	"git.home.luguber.info/inful/pagesconf/internal/foundation/errors"
)

func main() {
	var cli commands.CLI
	parser, err := commands.NewParser(&cli)
	if err != nil {
		slog.Error("Failed to build command line parser", "error", err)
		os.Exit(1)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(&commands.Global{Stdout: os.Stdout}, &cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
