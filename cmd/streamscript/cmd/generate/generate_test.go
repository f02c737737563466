package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/streamscript/cmd/application"
	"github.com/agentstation/streamscript/pkg/constants"
	"github.com/agentstation/streamscript/pkg/errors"
	"github.com/agentstation/streamscript/pkg/tables"
)

func newMock(fs afero.Fs) *application.Mock {
	return &application.Mock{
		FsFunc:           func() afero.Fs { return fs },
		OutputFormatFunc: func() string { return "json" },
	}
}

func run(t *testing.T, app application.Application, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeResults(t *testing.T, out string) []map[string]any {
	t.Helper()
	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	return results
}

func TestGenerateReactionsCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	out, err := run(t, newMock(fs), "reactions", "--seed", "7", "--filler-count", "5", "--output", "r.js")
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results, 1)
	assert.Equal(t, "reactions", results[0]["table"])
	assert.Equal(t, float64(5), results[0]["filler"])
	assert.Equal(t, float64(47), results[0]["total"])

	data, err := afero.ReadFile(fs, "r.js")
	require.NoError(t, err)
	evs, err := tables.Reactions.Parse("r.js", data)
	require.NoError(t, err)
	assert.Len(t, evs, 47)
}

func TestGenerateReactionsSeedIsReproducible(t *testing.T) {
	fsA, fsB := afero.NewMemMapFs(), afero.NewMemMapFs()
	_, err := run(t, newMock(fsA), "reactions", "--seed", "99")
	require.NoError(t, err)
	_, err = run(t, newMock(fsB), "reactions", "--seed", "99")
	require.NoError(t, err)

	a, err := afero.ReadFile(fsA, filepath.Join(".", constants.DefaultReactionsFile))
	require.NoError(t, err)
	b, err := afero.ReadFile(fsB, filepath.Join(".", constants.DefaultReactionsFile))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateReactionsRejectsBadFlags(t *testing.T) {
	tests := [][]string{
		{"reactions", "--max-repeat", "0"},
		{"reactions", "--filler-count", "-1"},
		{"reactions", "--duration-ms", "-5"},
	}
	for _, args := range tests {
		t.Run(args[1], func(t *testing.T) {
			fs := afero.NewMemMapFs()
			_, err := run(t, newMock(fs), args...)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			exists, _ := afero.Exists(fs, constants.DefaultReactionsFile)
			assert.False(t, exists)
		})
	}
}

func TestGenerateTriviaCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	out, err := run(t, newMock(fs), "trivia")
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results, 1)
	assert.Equal(t, float64(14), results[0]["total"])

	exists, err := afero.Exists(fs, constants.DefaultTriviaFile)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGenerateTriviaMissingInput(t *testing.T) {
	_, err := run(t, newMock(afero.NewMemMapFs()), "trivia", "--input", "nope.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))
}

func TestGenerateAllCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	out, err := run(t, newMock(fs), "all")
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results, 2)
	assert.Equal(t, "reactions", results[0]["table"])
	assert.Equal(t, "trivia", results[1]["table"])
}

func TestGenerateAllWriteFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := run(t, newMock(fs), "all")
	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))
}

func TestGenerateCueSheetCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := run(t, newMock(fs), "cuesheet", "--output", "host/cues.md")
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, filepath.Join("host", "cues.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Stream Cue Sheet")
}
