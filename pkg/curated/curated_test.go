package curated

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/streamscript/pkg/constants"
	"github.com/agentstation/streamscript/pkg/errors"
	"github.com/agentstation/streamscript/pkg/reactions"
	"github.com/agentstation/streamscript/pkg/trivia"
)

func TestLoadEmbeddedReactions(t *testing.T) {
	defs, err := LoadReactions(Source{})
	require.NoError(t, err)
	require.Len(t, defs, 17)

	first := defs[0]
	assert.Equal(t, int64(50395), first.OffsetMs)
	require.NotEmpty(t, first.Bursts)
	assert.Equal(t, reactions.Burst{Emoji: "🎉", Repeat: 12}, first.Bursts[0])

	bursts := 0
	for _, d := range defs {
		bursts += len(d.Bursts)
	}
	assert.Equal(t, 42, bursts)
	assert.Empty(t, LintReactions(defs, constants.DefaultVideoDurationMs))
}

func TestLoadEmbeddedTrivia(t *testing.T) {
	items, err := LoadTrivia(Source{})
	require.NoError(t, err)
	require.Len(t, items, 7)

	first := items[0]
	assert.Equal(t, 101, first.ID)
	assert.Equal(t, []string{"True", "False"}, first.Options)
	assert.Equal(t, 0, first.CorrectOptionIndex)
	assert.Equal(t, int64(75000), first.AppearOffsetMs)
	assert.Equal(t, int64(95000), first.RevealOffsetMs)
	assert.Empty(t, LintTrivia(items, constants.DefaultVideoDurationMs))
}

func TestLoadFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in/reactions.yaml", []byte(`
- offset_ms: 1000
  reactions:
    - { emoji: "👏", repeat: 2 }
`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "in/trivia.yaml", []byte(`
- id: 7
  question: "Quote \" and backtick ` + "`" + `?"
  options: [a, b, c]
  correct_option_index: 2
  points: 3
  appear_time_ms: 10
  reveal_time_ms: 20
`), 0o644))

	defs, err := LoadReactions(Source{Fs: fs, Path: "in/reactions.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []reactions.Definition{{
		OffsetMs: 1000,
		Bursts:   []reactions.Burst{{Emoji: "👏", Repeat: 2}},
	}}, defs)

	items, err := LoadTrivia(Source{Fs: fs, Path: "in/trivia.yaml"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Quote \" and backtick `?", items[0].Question)
	assert.Equal(t, 3, items[0].CorrectOptionID())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadReactions(Source{Fs: afero.NewMemMapFs(), Path: "nope.yaml"})
	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))

	var ioErr *errors.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "nope.yaml", ioErr.Path)
	assert.Equal(t, "read", ioErr.Operation)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := DecodeTrivia([]byte("- id: [unterminated"), "bad.yaml")
	require.Error(t, err)

	var parseErr *errors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "yaml", parseErr.Format)
	assert.Equal(t, "bad.yaml", parseErr.File)
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "embedded", Source{}.String())
	assert.Equal(t, "x.yaml", Source{Path: "x.yaml"}.String())
}

func TestLintReactions(t *testing.T) {
	defs := []reactions.Definition{
		{OffsetMs: 10, Bursts: []reactions.Burst{{Emoji: "👏", Repeat: 1}}},
		{OffsetMs: -1, Bursts: []reactions.Burst{{Emoji: "", Repeat: 0}}},
		{OffsetMs: 5000},
	}
	findings := LintReactions(defs, 1000)

	fields := make([]string, 0, len(findings))
	for _, f := range findings {
		fields = append(fields, f.Field)
		assert.True(t, errors.IsValidationError(f))
	}
	assert.Equal(t, []string{
		"reactions[1].offset_ms",
		"reactions[1].reactions[0].emoji",
		"reactions[1].reactions[0].repeat",
		"reactions[2].offset_ms",
		"reactions[2].reactions",
	}, fields)

	assert.Len(t, LintReactions(defs[2:], 0), 1, "zero duration skips the range check")
}

func TestLintTrivia(t *testing.T) {
	items := []trivia.Item{
		{ID: 1, Options: []string{"a", "b"}, CorrectOptionIndex: 1, AppearOffsetMs: 10, RevealOffsetMs: 20},
		{ID: 1, Options: []string{"a", "b"}, CorrectOptionIndex: 2, AppearOffsetMs: 30, RevealOffsetMs: 30},
		{ID: 3, CorrectOptionIndex: 0, AppearOffsetMs: 900, RevealOffsetMs: 1200},
	}
	findings := LintTrivia(items, 1000)

	fields := make([]string, 0, len(findings))
	for _, f := range findings {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{
		"trivia[1].id",
		"trivia[1].correct_option_index",
		"trivia[1].reveal_time_ms",
		"trivia[2].options",
		"trivia[2].correct_option_index",
		"trivia[2].reveal_time_ms",
	}, fields)
	assert.Contains(t, findings[0].Message, "trivia[0]")
}
