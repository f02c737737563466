// Package generate implements the generate command and its table subcommands.
package generate

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/streamscript"
	"github.com/agentstation/streamscript/cmd/application"
	"github.com/agentstation/streamscript/internal/cmd/output"
)

// NewCommand creates the generate command using app context.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		GroupID: "core",
		Short:   "Generate timed-event tables for the stream backend",
		Long: `Generate writes the JavaScript modules the stream backend loads to
script a recorded live-shopping video.

  reactions  curated emoji bursts plus random filler reactions
  trivia     trivia questions and their answer reveals
  all        both tables at once
  cuesheet   a markdown rundown of the curated cues for the host

Curated data comes from the built-in tables unless an input file is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(NewReactionsCommand(app))
	cmd.AddCommand(NewTriviaCommand(app))
	cmd.AddCommand(NewAllCommand(app))
	cmd.AddCommand(NewCueSheetCommand(app))

	return cmd
}

// printResults writes a summary of the written files.
func printResults(cmd *cobra.Command, app application.Application, results ...*streamscript.Result) error {
	formatter := output.NewFormatter(output.DetectFormat(app.OutputFormat()))
	return formatter.Format(cmd.OutOrStdout(), output.ResultsData(results))
}
