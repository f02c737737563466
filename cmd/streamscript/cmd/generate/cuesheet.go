package generate

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/streamscript"
	"github.com/agentstation/streamscript/cmd/application"
)

// NewCueSheetCommand creates the generate cuesheet subcommand.
func NewCueSheetCommand(app application.Application) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "cuesheet",
		Short: "Generate a markdown cue sheet for the stream host",
		Long: `Generate a markdown rundown of every curated cue: when reaction bursts
fire, when each trivia question opens and when its answer is revealed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []streamscript.Option
			if cmd.Flags().Changed("output") {
				opts = append(opts, streamscript.WithCueSheetOutput(out))
			}

			client, err := app.Client(opts...)
			if err != nil {
				return err
			}
			result, err := client.GenerateCueSheet(cmd.Context())
			if err != nil {
				return err
			}
			return printResults(cmd, app, result)
		},
	}

	cmd.Flags().StringVar(&out, "output", "", "output file (default: cuesheet.md in the output directory)")

	return cmd
}
