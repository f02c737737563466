package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/streamscript/pkg/constants"
	"github.com/agentstation/streamscript/pkg/errors"
	"github.com/agentstation/streamscript/pkg/reactions"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Output locations
	OutputDir       string
	ReactionsOutput string
	TriviaOutput    string
	CueSheetOutput  string

	// Curated inputs; empty selects the built-in tables
	ReactionsInput string
	TriviaInput    string

	// Filler sampling
	VideoDurationMs int64
	FillerCount     int
	EmojiSet        []string
	MaxRepeat       int
	Seed            uint64
	HasSeed         bool

	// Logging configuration
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by the commands)
// 2. Environment variables (STREAMSCRIPT_ prefix)
// 3. .env files
// 4. Config file (configFile, or .streamscript.yaml in $HOME or the working directory)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "reading "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigName)

		// A missing config file is fine; a broken one is not.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "reading config file", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		OutputDir:       v.GetString("output_dir"),
		ReactionsOutput: v.GetString("reactions_output"),
		TriviaOutput:    v.GetString("trivia_output"),
		CueSheetOutput:  v.GetString("cuesheet_output"),
		ReactionsInput:  v.GetString("reactions_input"),
		TriviaInput:     v.GetString("trivia_input"),

		VideoDurationMs: v.GetInt64("video_duration_ms"),
		FillerCount:     v.GetInt("filler_count"),
		EmojiSet:        v.GetStringSlice("emoji_set"),
		MaxRepeat:       v.GetInt("max_repeat"),
		Seed:            v.GetUint64("seed"),
		HasSeed:         v.IsSet("seed"),

		EnvLogLevel: getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if err := config.ReactionConfig().Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ReactionConfig returns the filler sampling parameters.
func (c *Config) ReactionConfig() reactions.Config {
	return reactions.Config{
		VideoDurationMs: c.VideoDurationMs,
		FillerCount:     c.FillerCount,
		EmojiSet:        append([]string(nil), c.EmojiSet...),
		MaxRepeat:       c.MaxRepeat,
	}
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output_dir", constants.DefaultOutputDir)
	v.SetDefault("reactions_output", constants.DefaultReactionsFile)
	v.SetDefault("trivia_output", constants.DefaultTriviaFile)
	v.SetDefault("cuesheet_output", constants.DefaultCueSheetFile)
	v.SetDefault("video_duration_ms", constants.DefaultVideoDurationMs)
	v.SetDefault("filler_count", constants.DefaultFillerCount)
	v.SetDefault("emoji_set", constants.DefaultEmojiSet)
	v.SetDefault("max_repeat", constants.DefaultMaxRepeat)
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// godotenv.Load never overrides variables that are already set, so the
	// first file to define a key wins: .env.local before .env.
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
