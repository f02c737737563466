// Package validate implements the validate command, which lints curated
// reaction and trivia data before it is generated into tables.
package validate

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/agentstation/streamscript/cmd/application"
	"github.com/agentstation/streamscript/internal/cmd/emoji"
	"github.com/agentstation/streamscript/internal/cmd/output"
	"github.com/agentstation/streamscript/pkg/curated"
	"github.com/agentstation/streamscript/pkg/errors"
)

// NewCommand creates the validate command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var reactionsPath, triviaPath string

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Lint curated reaction and trivia data",
		Long: `Validate checks curated data for mistakes the generators pass through
silently:
  - reaction bursts with a repeat count below 1 or an empty glyph
  - trivia answers that are not one of the options
  - trivia reveals scheduled at or before the question
  - offsets outside the video
  - trivia IDs used twice

Without flags the built-in tables are checked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, reactionsPath, triviaPath)
		},
	}

	cmd.Flags().StringVar(&reactionsPath, "reactions", "", "curated reactions YAML (default: built-in table)")
	cmd.Flags().StringVar(&triviaPath, "trivia", "", "curated trivia YAML (default: built-in table)")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, reactionsPath, triviaPath string) error {
	duration := app.ReactionConfig().VideoDurationMs
	fs := app.Fs()

	defs, err := curated.LoadReactions(curated.Source{Fs: fs, Path: reactionsPath})
	if err != nil {
		return err
	}
	items, err := curated.LoadTrivia(curated.Source{Fs: fs, Path: triviaPath})
	if err != nil {
		return err
	}

	reactionFindings := curated.LintReactions(defs, duration)
	triviaFindings := curated.LintTrivia(items, duration)
	findings := slices.Concat(reactionFindings, triviaFindings)

	format := output.DetectFormat(app.OutputFormat())
	w := cmd.OutOrStdout()
	if format == output.FormatTable {
		status(w, "reactions", len(defs), curated.Source{Path: reactionsPath}, len(reactionFindings))
		status(w, "trivia", len(items), curated.Source{Path: triviaPath}, len(triviaFindings))
		if len(findings) == 0 {
			return nil
		}
		fmt.Fprintln(w)
	}

	if err := output.NewFormatter(format).Format(w, output.FindingsData(findings)); err != nil {
		return err
	}
	if len(findings) > 0 {
		return fmt.Errorf("%d problems in curated data: %w", len(findings), errors.ErrInvalidInput)
	}
	return nil
}

func status(w io.Writer, name string, count int, src curated.Source, problems int) {
	symbol := emoji.Success
	if problems > 0 {
		symbol = emoji.Error
	}
	fmt.Fprintf(w, "%s %s (%s): %d entries, %d problems\n", symbol, name, src, count, problems)
}
