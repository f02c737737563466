package streamscript

import (
	"github.com/spf13/afero"

	"github.com/agentstation/streamscript/pkg/constants"
	"github.com/agentstation/streamscript/pkg/reactions"
)

// Option is a function that configures a Client.
type Option func(*options) error

// options holds the configuration a Client runs with.
type options struct {
	fs      afero.Fs
	inputFs afero.Fs

	outputDir       string
	reactionsOutput string
	triviaOutput    string
	cueSheetOutput  string
	reactionsInput  string
	triviaInput     string
	reactionConfig  reactions.Config
	rng             reactions.Rand
}

func defaultOptions() *options {
	return &options{
		outputDir:       constants.DefaultOutputDir,
		reactionsOutput: constants.DefaultReactionsFile,
		triviaOutput:    constants.DefaultTriviaFile,
		cueSheetOutput:  constants.DefaultCueSheetFile,
		reactionConfig:  reactions.DefaultConfig(),
	}
}

func (o *options) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if o.inputFs == nil {
		o.inputFs = o.fs
	}
	if o.rng == nil {
		o.rng = reactions.NewRand()
	}
	return nil
}

// WithFS sets the filesystem tables are written to and curated files are
// read from. Defaults to the OS filesystem.
func WithFS(fs afero.Fs) Option {
	return func(o *options) error {
		o.fs = fs
		return nil
	}
}

// WithInputFS reads curated files from a different filesystem than the
// one tables are written to.
func WithInputFS(fs afero.Fs) Option {
	return func(o *options) error {
		o.inputFs = fs
		return nil
	}
}

// WithOutputDir sets the directory relative output paths are resolved against.
func WithOutputDir(dir string) Option {
	return func(o *options) error {
		o.outputDir = dir
		return nil
	}
}

// WithReactionsOutput sets the reactions table file name.
func WithReactionsOutput(path string) Option {
	return func(o *options) error {
		o.reactionsOutput = path
		return nil
	}
}

// WithTriviaOutput sets the trivia table file name.
func WithTriviaOutput(path string) Option {
	return func(o *options) error {
		o.triviaOutput = path
		return nil
	}
}

// WithCueSheetOutput sets the cue sheet file name.
func WithCueSheetOutput(path string) Option {
	return func(o *options) error {
		o.cueSheetOutput = path
		return nil
	}
}

// WithReactionsInput reads reaction definitions from a YAML file instead
// of the built-in table.
func WithReactionsInput(path string) Option {
	return func(o *options) error {
		o.reactionsInput = path
		return nil
	}
}

// WithTriviaInput reads trivia items from a YAML file instead of the
// built-in table.
func WithTriviaInput(path string) Option {
	return func(o *options) error {
		o.triviaInput = path
		return nil
	}
}

// WithReactionConfig configures filler sampling. The config is validated
// when the option is applied.
func WithReactionConfig(cfg reactions.Config) Option {
	return func(o *options) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		o.reactionConfig = cfg
		return nil
	}
}

// WithRand sets the random source filler reactions are drawn from.
func WithRand(rng reactions.Rand) Option {
	return func(o *options) error {
		o.rng = rng
		return nil
	}
}

// WithSeed makes filler sampling deterministic.
func WithSeed(seed uint64) Option {
	return func(o *options) error {
		o.rng = reactions.NewSeededRand(seed)
		return nil
	}
}
