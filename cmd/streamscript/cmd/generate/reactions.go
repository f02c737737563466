package generate

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/streamscript"
	"github.com/agentstation/streamscript/cmd/application"
)

// reactionsFlags holds the reactions subcommand flags.
type reactionsFlags struct {
	input       string
	output      string
	seed        uint64
	fillerCount int
	maxRepeat   int
	durationMs  int64
	emoji       []string
}

// NewReactionsCommand creates the generate reactions subcommand.
func NewReactionsCommand(app application.Application) *cobra.Command {
	flags := &reactionsFlags{}

	cmd := &cobra.Command{
		Use:   "reactions",
		Short: "Generate the reactions table",
		Long: `Generate the reactions table: one event per curated emoji burst plus
randomly timed filler reactions, sorted by offset.

Filler is sampled from an unseeded source unless --seed (or the seed
config key) pins it.`,
		Example: `  streamscript generate reactions
  streamscript generate reactions --seed 2024 --filler-count 300
  streamscript generate reactions --input stream.yaml --output backend/reactions.js`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReactions(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.input, "input", "", "curated reactions YAML (default: built-in table)")
	cmd.Flags().StringVar(&flags.output, "output", "", "output file (default: generated_reactions.js in the output directory)")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "seed for filler sampling")
	cmd.Flags().IntVar(&flags.fillerCount, "filler-count", 0, "number of filler reactions")
	cmd.Flags().IntVar(&flags.maxRepeat, "max-repeat", 0, "maximum repeat count of a filler reaction")
	cmd.Flags().Int64Var(&flags.durationMs, "duration-ms", 0, "video duration bounding filler offsets")
	cmd.Flags().StringSliceVar(&flags.emoji, "emoji", nil, "glyphs filler reactions are drawn from")

	return cmd
}

func runReactions(cmd *cobra.Command, app application.Application, flags *reactionsFlags) error {
	opts, err := reactionOptions(cmd, app, flags)
	if err != nil {
		return err
	}

	client, err := app.Client(opts...)
	if err != nil {
		return err
	}

	result, err := client.GenerateReactions(cmd.Context())
	if err != nil {
		return err
	}
	return printResults(cmd, app, result)
}

// reactionOptions turns the flags the user set into client options.
func reactionOptions(cmd *cobra.Command, app application.Application, flags *reactionsFlags) ([]streamscript.Option, error) {
	var opts []streamscript.Option
	changed := cmd.Flags().Changed

	if changed("input") {
		opts = append(opts, streamscript.WithReactionsInput(flags.input))
	}
	if changed("output") {
		opts = append(opts, streamscript.WithReactionsOutput(flags.output))
	}
	if changed("seed") {
		opts = append(opts, streamscript.WithSeed(flags.seed))
	}

	cfg := app.ReactionConfig()
	override := false
	if changed("filler-count") {
		cfg.FillerCount, override = flags.fillerCount, true
	}
	if changed("max-repeat") {
		cfg.MaxRepeat, override = flags.maxRepeat, true
	}
	if changed("duration-ms") {
		cfg.VideoDurationMs, override = flags.durationMs, true
	}
	if changed("emoji") {
		cfg.EmojiSet, override = flags.emoji, true
	}
	if override {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		opts = append(opts, streamscript.WithReactionConfig(cfg))
	}

	return opts, nil
}
