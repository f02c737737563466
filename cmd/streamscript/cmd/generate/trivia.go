package generate

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/streamscript"
	"github.com/agentstation/streamscript/cmd/application"
)

// NewTriviaCommand creates the generate trivia subcommand.
func NewTriviaCommand(app application.Application) *cobra.Command {
	var input, out string

	cmd := &cobra.Command{
		Use:   "trivia",
		Short: "Generate the trivia table",
		Long: `Generate the trivia table: for each curated question, a new-poll event
when it appears and a poll-results event naming the correct option when
the answer is revealed.

Questions are not checked; run "streamscript validate" first.`,
		Example: `  streamscript generate trivia
  streamscript generate trivia --input questions.yaml --output backend/polls.js`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []streamscript.Option
			if cmd.Flags().Changed("input") {
				opts = append(opts, streamscript.WithTriviaInput(input))
			}
			if cmd.Flags().Changed("output") {
				opts = append(opts, streamscript.WithTriviaOutput(out))
			}

			client, err := app.Client(opts...)
			if err != nil {
				return err
			}
			result, err := client.GenerateTrivia(cmd.Context())
			if err != nil {
				return err
			}
			return printResults(cmd, app, result)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "curated trivia YAML (default: built-in table)")
	cmd.Flags().StringVar(&out, "output", "", "output file (default: generated_trivia.js in the output directory)")

	return cmd
}
