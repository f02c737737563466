package jsmodule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/streamscript/pkg/errors"
)

func render(t *testing.T, m Module) string {
	t.Helper()
	b, err := m.Bytes()
	require.NoError(t, err)
	return string(b)
}

func TestRenderObjectLayout(t *testing.T) {
	m := Module{
		Header: []string{"first", "second"},
		Name:   "items",
		Value: Array{
			Object{Fields: []Field{
				{"at", Number(5)},
				{"keep", Bool(false)},
				{"action", Object{Fields: []Field{
					{"channel", Str("game.x")},
					{"data", Object{Inline: true, Fields: []Field{
						{"text", Template("🎉")},
						{"type", Str("reaction")},
					}}},
				}}},
			}},
			Object{Fields: []Field{{"at", Number(-1)}}},
		},
	}

	want := "// first\n// second\n\n" +
		"exports.items = [\n" +
		"  {\n" +
		"    at: 5,\n" +
		"    keep: false,\n" +
		"    action: {\n" +
		"      channel: \"game.x\",\n" +
		"      data: { text: `🎉`, type: \"reaction\" },\n" +
		"    },\n" +
		"  },\n" +
		"  {\n" +
		"    at: -1,\n" +
		"  }\n" +
		"];\n"
	assert.Equal(t, want, render(t, m))
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "exports.a = [];\n", render(t, Module{Name: "a", Value: Array{}}))
	assert.Equal(t, "exports.a = {};\n", render(t, Module{Name: "a", Value: Object{}}))
}

func TestRenderQuotedKeys(t *testing.T) {
	got := render(t, Module{Name: "a", Value: Object{Inline: true, Fields: []Field{
		{"plain_$1", Number(1)},
		{"with-dash", Number(2)},
		{"9lives", Number(3)},
	}}})
	assert.Equal(t, "exports.a = { plain_$1: 1, \"with-dash\": 2, \"9lives\": 3 };\n", got)
}

func TestStringEscaping(t *testing.T) {
	tests := []struct {
		name string
		in   String
		want string
	}{
		{"double quotes", Str(`say "hi"`), `"say \"hi\""`},
		{"backslash", Str(`a\b`), `"a\\b"`},
		{"newline", Str("a\nb"), `"a\nb"`},
		{"control", Str("a\x01b"), `"a\u0001b"`},
		{"line separator", Str("a\u2028b"), `"a\u2028b"`},
		{"backtick in double", Str("a`b"), "\"a`b\""},
		{"backtick in template", Template("a`b"), "`a\\`b`"},
		{"substitution in template", Template("cost ${x}"), "`cost \\${x}`"},
		{"dollar alone in template", Template("$5"), "`$5`"},
		{"quote in template", Template(`"q"`), "`\"q\"`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, Module{Name: "s", Value: tt.in})
			assert.Equal(t, "exports.s = "+tt.want+";\n", got)
		})
	}
}

func TestRenderJSON(t *testing.T) {
	value := []map[string]any{{"title": "a < b & \"c\"", "n": 1}}
	got := render(t, Module{Name: "polls", Value: JSON{Value: value}})

	want := "exports.polls = [\n" +
		"  {\n" +
		"    \"n\": 1,\n" +
		"    \"title\": \"a < b & \\\"c\\\"\"\n" +
		"  }\n" +
		"];\n"
	assert.Equal(t, want, got)
}

func TestEvalRoundTrip(t *testing.T) {
	m := Module{
		Header: []string{"generated"},
		Name:   "reactions",
		Value: Array{
			Object{Fields: []Field{
				{"offset", Number(50395)},
				{"persist", Bool(false)},
				{"text", Template("it's `odd` ${not} \"quoted\"\n")},
			}},
		},
	}
	src, err := m.Bytes()
	require.NoError(t, err)

	v, err := Eval("reactions.js", src, "reactions")
	require.NoError(t, err)

	list, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	obj := list[0].(map[string]any)
	assert.Equal(t, int64(50395), obj["offset"])
	assert.Equal(t, false, obj["persist"])
	assert.Equal(t, "it's `odd` ${not} \"quoted\"\n", obj["text"])
}

func TestEvalModuleExports(t *testing.T) {
	v, err := Eval("m.js", []byte(`module.exports = { polls: [1, 2] };`), "polls")
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2)}, v)
}

func TestEvalErrors(t *testing.T) {
	_, err := Eval("bad.js", []byte("exports.reactions = [ {"), "reactions")
	var parseErr *errors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "bad.js", parseErr.File)

	_, err = Eval("other.js", []byte("exports.polls = [];"), "reactions")
	assert.True(t, errors.IsNotFound(err))
}
