package app

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/streamscript/pkg/constants"
)

// newTestApp builds an app on an in-memory filesystem with isolated config.
func newTestApp(t *testing.T) (*App, afero.Fs) {
	t.Helper()
	isolate(t)
	fs := afero.NewMemMapFs()
	app, err := New("1.0.0", "abc123", "2024-01-01", "test", WithFS(fs))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app, fs
}

// execute runs the root command and returns what it printed.
func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := app.createRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, fs := newTestApp(t)

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
	if app.Fs() != fs {
		t.Error("Fs() did not return the configured filesystem")
	}
	if app.ReactionConfig().FillerCount != constants.DefaultFillerCount {
		t.Errorf("ReactionConfig().FillerCount = %d", app.ReactionConfig().FillerCount)
	}
}

// TestApp_Options verifies config and logger overrides.
func TestApp_Options(t *testing.T) {
	isolate(t)
	logger := zerolog.Nop()
	config := &Config{Format: "yaml", OutputDir: "out", FillerCount: 1, EmojiSet: []string{"🔥"}, MaxRepeat: 1}

	app, err := New("dev", "", "", "", WithConfig(config), WithLogger(&logger), WithFS(afero.NewMemMapFs()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if app.Config() != config {
		t.Error("WithConfig() not applied")
	}
	if app.Logger() != &logger {
		t.Error("WithLogger() not applied")
	}
	if app.OutputFormat() != "yaml" {
		t.Errorf("OutputFormat() = %q, want yaml", app.OutputFormat())
	}
}

// TestApp_Client verifies configured outputs and seed reach the generator.
func TestApp_Client(t *testing.T) {
	app, fs := newTestApp(t)
	app.config.OutputDir = "backend"
	app.config.Seed = 7
	app.config.HasSeed = true

	client, err := app.Client()
	if err != nil {
		t.Fatalf("Client() failed: %v", err)
	}
	if got := client.OutputPath(constants.DefaultReactionsFile); got != "backend/"+constants.DefaultReactionsFile {
		t.Errorf("OutputPath() = %q", got)
	}

	first, err := client.GenerateReactions(context.Background())
	if err != nil {
		t.Fatalf("GenerateReactions() failed: %v", err)
	}
	firstData, err := afero.ReadFile(fs, first.Path)
	if err != nil {
		t.Fatal(err)
	}

	again, err := app.Client()
	if err != nil {
		t.Fatal(err)
	}
	second, err := again.GenerateReactions(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	secondData, err := afero.ReadFile(fs, second.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(firstData, secondData) {
		t.Error("seeded clients produced different tables")
	}
}

// TestApp_Client_InvalidConfig verifies bad sampling values surface from Client.
func TestApp_Client_InvalidConfig(t *testing.T) {
	app, _ := newTestApp(t)
	app.config.MaxRepeat = 0

	if _, err := app.Client(); err == nil {
		t.Error("Client() succeeded with max_repeat 0")
	}
}

// TestExecute_Version verifies the version command output.
func TestExecute_Version(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := execute(t, app, "version", "-v")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "streamscript 1.0.0\n") {
		t.Errorf("version output = %q", out)
	}
	if !strings.Contains(out, "abc123") {
		t.Errorf("version output missing commit: %q", out)
	}
}

// TestExecute_GenerateAll verifies both tables are written and reported as JSON.
func TestExecute_GenerateAll(t *testing.T) {
	app, fs := newTestApp(t)

	out, err := execute(t, app, "generate", "all", "--format", "json")
	if err != nil {
		t.Fatalf("generate all failed: %v\n%s", err, out)
	}

	var results []struct {
		Table   string `json:"table"`
		Path    string `json:"path"`
		Curated int    `json:"curated"`
		Total   int    `json:"total"`
	}
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	for _, r := range results {
		exists, err := afero.Exists(fs, r.Path)
		if err != nil || !exists {
			t.Errorf("%s table not written to %q", r.Table, r.Path)
		}
		if r.Total < r.Curated {
			t.Errorf("%s total %d below curated %d", r.Table, r.Total, r.Curated)
		}
	}
}

// TestExecute_ConfigFlag verifies --config replaces the loaded configuration.
func TestExecute_ConfigFlag(t *testing.T) {
	app, fs := newTestApp(t)
	dir := t.TempDir()
	path := dir + "/stream.yaml"
	if err := afero.WriteFile(afero.NewOsFs(), path, []byte("output_dir: tables\nfiller_count: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, app, "--config", path, "-o", "json", "generate", "reactions")
	if err != nil {
		t.Fatalf("generate reactions failed: %v\n%s", err, out)
	}
	if app.Config().OutputDir != "tables" {
		t.Errorf("OutputDir = %q, want tables", app.Config().OutputDir)
	}

	exists, err := afero.Exists(fs, "tables/"+constants.DefaultReactionsFile)
	if err != nil || !exists {
		t.Error("reactions table not written under the configured output dir")
	}
	if !strings.Contains(out, `"filler": 0`) {
		t.Errorf("expected no filler reactions, got %s", out)
	}
}

// TestExecute_InvalidFormat verifies an unknown --format is rejected.
func TestExecute_InvalidFormat(t *testing.T) {
	app, _ := newTestApp(t)

	if _, err := execute(t, app, "--format", "xml", "version"); err == nil {
		t.Error("expected an error for --format xml")
	}
}

// TestExecute_MissingConfig verifies a missing --config file fails the command.
func TestExecute_MissingConfig(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := execute(t, app, "--config", "/nonexistent/stream.yaml", "version")
	if err == nil || !strings.Contains(err.Error(), "loading config") {
		t.Errorf("error = %v, want loading config failure", err)
	}
}
