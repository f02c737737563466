// Package inspect implements the inspect command, which reads a generated
// table back and reports what the backend will publish.
package inspect

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentstation/streamscript/cmd/application"
	"github.com/agentstation/streamscript/internal/cmd/output"
	"github.com/agentstation/streamscript/pkg/errors"
	"github.com/agentstation/streamscript/pkg/events"
	"github.com/agentstation/streamscript/pkg/tables"
)

// NewCommand creates the inspect command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var showEvents bool

	cmd := &cobra.Command{
		Use:     "inspect FILE",
		GroupID: "core",
		Short:   "Summarize a generated table",
		Long: `Inspect evaluates a generated reactions or trivia module the way the
backend loads it and prints, per channel, the number of events, the number
of publishes after repeats and the offset range.

Use --events to list every event instead.`,
		Example: `  streamscript inspect generated_reactions.js
  streamscript inspect generated_trivia.js --events -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args[0], showEvents)
		},
	}

	cmd.Flags().BoolVar(&showEvents, "events", false, "list every event")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, path string, showEvents bool) error {
	src, err := afero.ReadFile(app.Fs(), path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}

	table, evs, err := tables.Detect(path, src)
	if err != nil {
		return err
	}

	app.Logger().Debug().
		Str("path", path).
		Str("table", table.Name).
		Str("shape", table.Shape.String()).
		Int("events", len(evs)).
		Msg("Loaded table")

	format := output.DetectFormat(app.OutputFormat())
	w := cmd.OutOrStdout()
	if format == output.FormatTable {
		sorted := "sorted"
		if !events.IsSorted(evs) {
			sorted = "NOT sorted"
		}
		fmt.Fprintf(w, "%s: %s table (%s shape), %d events, %s by offset\n\n",
			path, table.Name, table.Shape, len(evs), sorted)
	}

	formatter := output.NewFormatter(format)
	if showEvents {
		return formatter.Format(w, output.EventsData(evs))
	}
	return formatter.Format(w, output.SummaryData(events.Summarize(evs)))
}
