package streamscript

import (
	"bytes"
	"cmp"
	"context"
	"slices"

	"github.com/sourcegraph/conc/pool"

	"github.com/agentstation/streamscript/pkg/cuesheet"
	"github.com/agentstation/streamscript/pkg/curated"
	"github.com/agentstation/streamscript/pkg/events"
	"github.com/agentstation/streamscript/pkg/logging"
	"github.com/agentstation/streamscript/pkg/reactions"
	"github.com/agentstation/streamscript/pkg/tables"
	"github.com/agentstation/streamscript/pkg/trivia"
)

// CueSheetName names cue sheet results.
const CueSheetName = "cuesheet"

// Result describes one written file.
type Result struct {
	Table   string              `json:"table" yaml:"table"`
	Path    string              `json:"path" yaml:"path"`
	Source  string              `json:"source" yaml:"source"`
	Curated int                 `json:"curated" yaml:"curated"`
	Filler  int                 `json:"filler" yaml:"filler"`
	Total   int                 `json:"total" yaml:"total"`
	Bytes   int                 `json:"bytes" yaml:"bytes"`
	Events  []events.TimedEvent `json:"-" yaml:"-"`
}

// ReactionDefinitions loads the configured reaction definitions.
func (c *Client) ReactionDefinitions() ([]reactions.Definition, error) {
	return curated.LoadReactions(c.reactionsSource())
}

// TriviaItems loads the configured trivia items.
func (c *Client) TriviaItems() ([]trivia.Item, error) {
	return curated.LoadTrivia(c.triviaSource())
}

// GenerateReactions writes the reactions table: every curated burst plus
// the configured number of filler reactions, sorted by offset.
func (c *Client) GenerateReactions(ctx context.Context) (*Result, error) {
	ctx = logging.WithTable(ctx, tables.Reactions.Name)
	logger := logging.FromContext(ctx)

	src := c.reactionsSource()
	defs, err := curated.LoadReactions(src)
	if err != nil {
		return nil, err
	}

	cfg := c.options.reactionConfig
	logger.Debug().
		Int64("video_duration_ms", cfg.VideoDurationMs).
		Int("filler_count", cfg.FillerCount).
		Strs("emoji_set", cfg.EmojiSet).
		Int("max_repeat", cfg.MaxRepeat).
		Msg("Sampling filler reactions")

	built := reactions.Build(defs)
	filler := reactions.Filler(cfg, c.options.rng)
	evs := events.Merge(built, filler)

	result := &Result{
		Source:  src.String(),
		Curated: len(built),
		Filler:  len(filler),
	}
	return c.writeTable(ctx, tables.Reactions, c.options.reactionsOutput, evs, result)
}

// GenerateTrivia writes the trivia table: a question and a reveal event
// per curated item, sorted by offset.
func (c *Client) GenerateTrivia(ctx context.Context) (*Result, error) {
	ctx = logging.WithTable(ctx, tables.Trivia.Name)

	src := c.triviaSource()
	items, err := curated.LoadTrivia(src)
	if err != nil {
		return nil, err
	}

	evs := trivia.Build(items)
	result := &Result{
		Source:  src.String(),
		Curated: len(evs),
	}
	return c.writeTable(ctx, tables.Trivia, c.options.triviaOutput, evs, result)
}

// GenerateCueSheet writes the markdown rundown of the curated cues.
func (c *Client) GenerateCueSheet(ctx context.Context) (*Result, error) {
	ctx = logging.WithTable(ctx, CueSheetName)
	logger := logging.FromContext(ctx)

	defs, err := c.ReactionDefinitions()
	if err != nil {
		return nil, err
	}
	items, err := c.TriviaItems()
	if err != nil {
		return nil, err
	}

	sheet := cuesheet.Sheet{Reactions: defs, Trivia: items}
	var buf bytes.Buffer
	if err := sheet.Render(&buf); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := c.OutputPath(c.options.cueSheetOutput)
	if err := tables.WriteFile(c.options.fs, path, buf.Bytes()); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to write cue sheet")
		return nil, err
	}

	cues := len(sheet.Timeline())
	result := Result{
		Table:   CueSheetName,
		Path:    path,
		Source:  c.reactionsSource().String() + "+" + c.triviaSource().String(),
		Curated: cues,
		Total:   cues,
		Bytes:   buf.Len(),
	}
	logger.Info().Str("path", path).Int("cues", cues).Msg("Wrote cue sheet")
	c.hooks.triggerTableWritten(result)
	return &result, nil
}

// GenerateAll writes the reactions and trivia tables concurrently. The
// pipelines share no state; failures from both are joined. Results are
// ordered by table name.
func (c *Client) GenerateAll(ctx context.Context) ([]*Result, error) {
	ctx = logging.WithOperation(ctx, "generate-all")
	p := pool.NewWithResults[*Result]().WithContext(ctx)
	p.Go(c.GenerateReactions)
	p.Go(c.GenerateTrivia)

	results, err := p.Wait()
	slices.SortFunc(results, func(a, b *Result) int {
		return cmp.Compare(a.Table, b.Table)
	})
	return results, err
}

func (c *Client) writeTable(ctx context.Context, t tables.Table, name string, evs []events.TimedEvent, result *Result) (*Result, error) {
	logger := logging.FromContext(ctx)

	data, err := t.Render(evs)
	if err != nil {
		return nil, err
	}

	// an interrupted run leaves the previous table in place
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := c.OutputPath(name)
	logger = logging.FromContext(logging.WithField(ctx, "path", path))
	if err := tables.WriteFile(c.options.fs, path, data); err != nil {
		logger.Error().Err(err).Msg("Failed to write table")
		return nil, err
	}

	result.Table = t.Name
	result.Path = path
	result.Total = len(evs)
	result.Bytes = len(data)
	result.Events = evs

	logger.Info().
		Int("curated", result.Curated).
		Int("filler", result.Filler).
		Int("total", result.Total).
		Msg("Wrote table")
	c.hooks.triggerTableWritten(*result)
	return result, nil
}

func (c *Client) reactionsSource() curated.Source {
	return curated.Source{Fs: c.options.inputFs, Path: c.options.reactionsInput}
}

func (c *Client) triviaSource() curated.Source {
	return curated.Source{Fs: c.options.inputFs, Path: c.options.triviaInput}
}
