// Package constants provides shared constants used throughout the streamscript codebase.
// This includes file permissions, wire identifiers shared with the stream backend,
// and the default generation parameters for the curated tables.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Channel identifiers the stream backend publishes event payloads on.
const (
	// ChannelReactions carries emoji reactions.
	ChannelReactions = "game.stream-reactions"

	// ChannelNewPoll announces a trivia question.
	ChannelNewPoll = "game.new-poll"

	// ChannelPollResults reveals the answer to a trivia question.
	ChannelPollResults = "game.poll-results"
)

// Payload discriminators.
const (
	// ReactionType is the data.type of every reaction payload
	ReactionType = "reaction"

	// PollTypeSide marks trivia polls rendered in the side widget
	PollTypeSide = "side"
)

// Export names of the generated modules.
const (
	// ReactionsExport is the exported name of the reactions table
	ReactionsExport = "reactions"

	// TriviaExport is the exported name of the trivia table
	TriviaExport = "polls"
)

// Default generation parameters
const (
	// DefaultVideoDurationMs is the length of the recorded stream (approx 33 minutes)
	DefaultVideoDurationMs = 1980000

	// DefaultFillerCount is the number of random reactions added to the curated ones
	DefaultFillerCount = 150

	// DefaultMaxRepeat is the upper bound for a filler reaction's repeat count
	DefaultMaxRepeat = 2

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 2 * time.Minute
)

// DefaultEmojiSet is the glyph set filler reactions are drawn from.
var DefaultEmojiSet = []string{"👏", "💸", "😮", "🔥", "🎉"}

// Default output locations
const (
	// DefaultOutputDir is where generated tables are written when no path is given
	DefaultOutputDir = "."

	// DefaultReactionsFile is the file name of the reactions table
	DefaultReactionsFile = "generated_reactions.js"

	// DefaultTriviaFile is the file name of the trivia table
	DefaultTriviaFile = "generated_trivia.js"

	// DefaultCueSheetFile is the file name of the host cue sheet
	DefaultCueSheetFile = "cuesheet.md"

	// DefaultConfigName is the config file name searched in $HOME and the working directory
	DefaultConfigName = ".streamscript"

	// EnvPrefix prefixes every environment variable read through viper
	EnvPrefix = "STREAMSCRIPT"
)
