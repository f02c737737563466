package tables

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/streamscript/pkg/errors"
	"github.com/agentstation/streamscript/pkg/events"
	"github.com/agentstation/streamscript/pkg/reactions"
	"github.com/agentstation/streamscript/pkg/trivia"
)

func TestRenderReactionsLayout(t *testing.T) {
	evs := []events.TimedEvent{
		events.NewReaction(50395, "🎉", 12),
		events.NewReaction(70000, "👏", 9),
	}

	got, err := Reactions.Render(evs)
	require.NoError(t, err)

	want := "// Generated by streamscript generate reactions\n" +
		"// Contains timed and random reactions for the live shopping experience.\n" +
		"\n" +
		"exports.reactions = [\n" +
		"  {\n" +
		"    timeSinceVideoStartedInMs: 50395,\n" +
		"    persistInHistory: false,\n" +
		"    action: {\n" +
		"      channel: \"game.stream-reactions\",\n" +
		"      data: { text: `🎉`, type: \"reaction\" },\n" +
		"    },\n" +
		"    repeat: 12,\n" +
		"  },\n" +
		"  {\n" +
		"    timeSinceVideoStartedInMs: 70000,\n" +
		"    persistInHistory: false,\n" +
		"    action: {\n" +
		"      channel: \"game.stream-reactions\",\n" +
		"      data: { text: `👏`, type: \"reaction\" },\n" +
		"    },\n" +
		"    repeat: 9,\n" +
		"  }\n" +
		"];\n"
	assert.Equal(t, want, string(got))
}

func TestRenderZeroRepeatReaction(t *testing.T) {
	evs := reactions.Build([]reactions.Definition{
		{OffsetMs: 5, Bursts: []reactions.Burst{{Emoji: "🔥", Repeat: 0}}},
	})

	got, err := Reactions.Render(evs)
	require.NoError(t, err)

	want := "exports.reactions = [\n" +
		"  {\n" +
		"    timeSinceVideoStartedInMs: 5,\n" +
		"    persistInHistory: false,\n" +
		"    action: {\n" +
		"      channel: \"game.stream-reactions\",\n" +
		"      data: { text: `🔥`, type: \"reaction\" },\n" +
		"    },\n" +
		"    repeat: 0,\n" +
		"  }\n" +
		"];\n"
	assert.True(t, strings.HasSuffix(string(got), want), string(got))
}

func TestRenderTriviaLayout(t *testing.T) {
	evs := trivia.Build([]trivia.Item{{
		ID:                 101,
		Question:           "The Game Boy Color can display over 32,000 colors. True or False?",
		Options:            []string{"True", "False"},
		CorrectOptionIndex: 0,
		Points:             5,
		AppearOffsetMs:     75000,
		RevealOffsetMs:     95000,
	}})

	got, err := Trivia.Render(evs)
	require.NoError(t, err)

	want := `exports.polls = [
  {
    "timeSinceVideoStartedInMs": 75000,
    "persistInHistory": false,
    "action": {
      "channel": "game.new-poll",
      "data": {
        "id": 101,
        "title": "The Game Boy Color can display over 32,000 colors. True or False?",
        "victoryPoints": 5,
        "pollType": "side",
        "options": [
          {
            "id": 1,
            "text": "True"
          },
          {
            "id": 2,
            "text": "False"
          }
        ]
      }
    }
  },
  {
    "timeSinceVideoStartedInMs": 95000,
    "persistInHistory": false,
    "action": {
      "channel": "game.poll-results",
      "data": {
        "id": 101,
        "correctOption": 1,
        "pollType": "side"
      }
    }
  }
];
`
	assert.Equal(t, want, string(got))
}

func TestRenderEmptyTables(t *testing.T) {
	got, err := Trivia.Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "exports.polls = [];\n", string(got))

	got, err = Reactions.Render(nil)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(got), "exports.reactions = [];\n"))
}

func TestReactionsRoundTrip(t *testing.T) {
	defs := []reactions.Definition{
		{OffsetMs: 50395, Bursts: []reactions.Burst{{Emoji: "🎉", Repeat: 12}, {Emoji: "🔥", Repeat: 9}}},
		{OffsetMs: 1950000, Bursts: []reactions.Burst{{Emoji: "👏", Repeat: 15}}},
	}
	evs := reactions.Generate(defs, reactions.DefaultConfig(), reactions.NewSeededRand(2024))

	first, err := Reactions.Render(evs)
	require.NoError(t, err)

	parsed, err := Reactions.Parse("generated_reactions.js", first)
	require.NoError(t, err)
	assert.Equal(t, evs, parsed)
	assert.Contains(t, parsed, events.NewReaction(50395, "🎉", 12))

	second, err := Reactions.Render(parsed)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestTriviaRoundTrip(t *testing.T) {
	evs := trivia.Build([]trivia.Item{
		{ID: 1, Question: `He said "go" and typed ` + "`run`", Options: []string{"A & B", "<C>"}, Points: 5, AppearOffsetMs: 10, RevealOffsetMs: 20},
		{ID: 2, Question: "No options", AppearOffsetMs: 30, RevealOffsetMs: 40},
	})

	first, err := Trivia.Render(evs)
	require.NoError(t, err)

	parsed, err := Trivia.Parse("generated_trivia.js", first)
	require.NoError(t, err)
	assert.Equal(t, evs, parsed)

	second, err := Trivia.Render(parsed)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestSpecialCharactersSurviveLiteralShape(t *testing.T) {
	evs := []events.TimedEvent{events.NewReaction(1, "`${boom}`\\", 1)}
	src, err := Reactions.Render(evs)
	require.NoError(t, err)

	parsed, err := Reactions.Parse("r.js", src)
	require.NoError(t, err)
	assert.Equal(t, evs, parsed)
}

func TestLiteralShapeWithOtherPayloads(t *testing.T) {
	evs := []events.TimedEvent{events.NewPoll(5, 3, "Q?", 1, []string{"y", "n"})}
	src, err := Reactions.Render(evs)
	require.NoError(t, err)

	parsed, err := Reactions.Parse("r.js", src)
	require.NoError(t, err)
	assert.Equal(t, evs, parsed)
}

func TestDetect(t *testing.T) {
	reactionSrc, err := Reactions.Render([]events.TimedEvent{events.NewReaction(1, "🔥", 2)})
	require.NoError(t, err)
	triviaSrc, err := Trivia.Render(trivia.Build([]trivia.Item{{ID: 1, Options: []string{"a"}, AppearOffsetMs: 1, RevealOffsetMs: 2}}))
	require.NoError(t, err)

	table, evs, err := Detect("r.js", reactionSrc)
	require.NoError(t, err)
	assert.Equal(t, "reactions", table.Name)
	assert.Len(t, evs, 1)

	table, evs, err = Detect("t.js", triviaSrc)
	require.NoError(t, err)
	assert.Equal(t, "trivia", table.Name)
	assert.Len(t, evs, 2)

	_, _, err = Detect("other.js", []byte("exports.chat = [];"))
	assert.True(t, errors.IsNotFound(err))
}

func TestParseRejectsNonEventExport(t *testing.T) {
	_, err := Trivia.Parse("bad.js", []byte(`exports.polls = "nope";`))
	var parseErr *errors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "bad.js", parseErr.File)
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "literal", ShapeLiteral.String())
	assert.Equal(t, "json", ShapeJSON.String())
}
