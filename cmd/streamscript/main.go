// Package main provides the entry point for the streamscript CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/streamscript/cmd/streamscript/app"
	"github.com/agentstation/streamscript/pkg/constants"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, constants.CommandTimeout)
	defer cancelTimeout()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		application.Logger().Debug().Err(err).Msg("Command failed")
		cancelTimeout()
		cancel()
		app.ExitOnError(err)
	}
}
