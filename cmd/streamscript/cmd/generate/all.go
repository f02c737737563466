package generate

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/streamscript/cmd/application"
)

// NewAllCommand creates the generate all subcommand.
func NewAllCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Generate the reactions and trivia tables",
		Long: `Generate both tables with the configured paths. The two pipelines run
concurrently; if either fails the command fails and reports every error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			results, err := client.GenerateAll(cmd.Context())
			if err != nil {
				return err
			}
			return printResults(cmd, app, results...)
		},
	}
}
