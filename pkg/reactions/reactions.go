// Package reactions builds the reactions table: curated emoji bursts plus
// randomly timed filler reactions, merged in chronological order.
package reactions

import (
	"math"
	"math/rand/v2"

	"github.com/agentstation/streamscript/pkg/constants"
	"github.com/agentstation/streamscript/pkg/errors"
	"github.com/agentstation/streamscript/pkg/events"
)

// Burst is one glyph fired Repeat times at a curated moment.
type Burst struct {
	Emoji  string `yaml:"emoji" json:"emoji"`
	Repeat int    `yaml:"repeat" json:"repeat"`
}

// Definition is a curated moment of the stream and the bursts it triggers.
type Definition struct {
	OffsetMs int64   `yaml:"offset_ms" json:"offset_ms"`
	Note     string  `yaml:"note,omitempty" json:"note,omitempty"`
	Bursts   []Burst `yaml:"reactions" json:"reactions"`
}

// Config controls filler reaction sampling.
type Config struct {
	// VideoDurationMs bounds filler offsets to [0, VideoDurationMs].
	VideoDurationMs int64
	// FillerCount is the number of filler reactions to add.
	FillerCount int
	// EmojiSet is the glyph set filler text is drawn from.
	EmojiSet []string
	// MaxRepeat bounds filler repeat counts to [1, MaxRepeat].
	MaxRepeat int
}

// DefaultConfig returns the parameters of the recorded Nintendo handheld stream.
func DefaultConfig() Config {
	return Config{
		VideoDurationMs: constants.DefaultVideoDurationMs,
		FillerCount:     constants.DefaultFillerCount,
		EmojiSet:        append([]string(nil), constants.DefaultEmojiSet...),
		MaxRepeat:       constants.DefaultMaxRepeat,
	}
}

// Validate reports configuration values the sampler cannot work with.
// A zero FillerCount is valid and disables filler entirely.
func (c Config) Validate() error {
	switch {
	case c.VideoDurationMs < 0:
		return errors.NewConfigError("reactions", "video_duration_ms must not be negative", nil)
	case c.VideoDurationMs == math.MaxInt64:
		return errors.NewConfigError("reactions", "video_duration_ms is out of range", nil)
	case c.FillerCount < 0:
		return errors.NewConfigError("reactions", "filler_count must not be negative", nil)
	case c.FillerCount == 0:
		return nil
	case len(c.EmojiSet) == 0:
		return errors.NewConfigError("reactions", "emoji_set must not be empty when filler_count > 0", nil)
	case c.MaxRepeat < 1:
		return errors.NewConfigError("reactions", "max_repeat must be at least 1", nil)
	}
	return nil
}

// Rand is the random source filler sampling draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Int64N(n int64) int64
}

// NewRand returns an unseeded source.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededRand returns a deterministic source for the given seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Build converts curated definitions to events, one per burst, in input order.
// Definitions are not checked; bad repeat counts pass through unchanged.
func Build(defs []Definition) []events.TimedEvent {
	var out []events.TimedEvent
	for _, def := range defs {
		for _, b := range def.Bursts {
			out = append(out, events.NewReaction(def.OffsetMs, b.Emoji, b.Repeat))
		}
	}
	return out
}

// Filler samples cfg.FillerCount reactions. Each draw is independent:
// offset uniform in [0, VideoDurationMs], glyph uniform from EmojiSet,
// repeat uniform in [1, MaxRepeat]. Call Config.Validate first.
func Filler(cfg Config, rng Rand) []events.TimedEvent {
	out := make([]events.TimedEvent, 0, cfg.FillerCount)
	for range cfg.FillerCount {
		offset := rng.Int64N(cfg.VideoDurationMs + 1)
		glyph := cfg.EmojiSet[rng.IntN(len(cfg.EmojiSet))]
		repeat := rng.IntN(cfg.MaxRepeat) + 1
		out = append(out, events.NewReaction(offset, glyph, repeat))
	}
	return out
}

// Generate builds the curated events, adds filler and sorts the result.
func Generate(defs []Definition, cfg Config, rng Rand) []events.TimedEvent {
	return events.Merge(Build(defs), Filler(cfg, rng))
}
