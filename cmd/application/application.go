// Package application provides the application interface for streamscript commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            client, err := app.Client()
//	            if err != nil {
//	                return err
//	            }
//	            _, err = client.GenerateTrivia(cmd.Context())
//	            return err
//	        },
//	    }
//	}
package application

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/streamscript"
	"github.com/agentstation/streamscript/pkg/reactions"
)

// Application provides the application interface that commands need.
// The App struct from cmd/streamscript/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Client returns a generator configured from flags, environment and
	// config file. Extra options are applied last and win.
	Client(opts ...streamscript.Option) (*streamscript.Client, error)

	// ReactionConfig returns the configured filler sampling parameters.
	ReactionConfig() reactions.Config

	// Fs returns the filesystem commands read and write through.
	Fs() afero.Fs

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
