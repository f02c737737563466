// Package app provides the application context and dependency management
// for the streamscript CLI. It centralizes configuration, logging and the
// construction of generator clients.
package app

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/streamscript"
	"github.com/agentstation/streamscript/cmd/application"
	"github.com/agentstation/streamscript/pkg/reactions"
)

// Compile-time interface check to ensure proper implementation.
var _ application.Application = (*App)(nil)

// App represents the streamscript application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Filesystem tables are read from and written to
	fs afero.Fs
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment and the
// default config file; options can replace any of it.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		fs:      afero.NewOsFs(),
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Fs returns the filesystem commands read and write through.
func (a *App) Fs() afero.Fs {
	return a.fs
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// ReactionConfig returns the configured filler sampling parameters.
func (a *App) ReactionConfig() reactions.Config {
	return a.config.ReactionConfig()
}

// Client returns a generator configured from the application config.
// Options passed in are applied after the configured ones.
func (a *App) Client(opts ...streamscript.Option) (*streamscript.Client, error) {
	client, err := streamscript.New(append(a.clientOptions(), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("creating generator: %w", err)
	}
	return client, nil
}

// clientOptions constructs generator options from the app configuration.
func (a *App) clientOptions() []streamscript.Option {
	c := a.config
	opts := []streamscript.Option{
		streamscript.WithFS(a.fs),
		streamscript.WithOutputDir(c.OutputDir),
		streamscript.WithReactionsOutput(c.ReactionsOutput),
		streamscript.WithTriviaOutput(c.TriviaOutput),
		streamscript.WithCueSheetOutput(c.CueSheetOutput),
		streamscript.WithReactionConfig(c.ReactionConfig()),
	}

	if c.ReactionsInput != "" {
		opts = append(opts, streamscript.WithReactionsInput(c.ReactionsInput))
	}
	if c.TriviaInput != "" {
		opts = append(opts, streamscript.WithTriviaInput(c.TriviaInput))
	}
	if c.HasSeed {
		opts = append(opts, streamscript.WithSeed(c.Seed))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithFS sets the filesystem tables are read from and written to.
func WithFS(fs afero.Fs) Option {
	return func(a *App) error {
		a.fs = fs
		return nil
	}
}
