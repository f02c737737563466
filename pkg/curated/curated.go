// Package curated loads the hand-written reaction and trivia tables that
// feed the generators, and lints them on request.
//
// Loading never checks the data: the generators pass malformed entries
// through unchanged. Use LintReactions and LintTrivia to find them.
package curated

import (
	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	"github.com/agentstation/streamscript/internal/embedded"
	"github.com/agentstation/streamscript/pkg/errors"
	"github.com/agentstation/streamscript/pkg/reactions"
	"github.com/agentstation/streamscript/pkg/trivia"
)

// Embedded returns a read-only filesystem holding the built-in tables at
// embedded.ReactionsPath and embedded.TriviaPath.
func Embedded() afero.Fs {
	return afero.FromIOFS{FS: embedded.FS}
}

// Source locates a curated file. An empty Path selects the built-in table.
type Source struct {
	Fs   afero.Fs
	Path string
}

// String names the source in logs and errors.
func (s Source) String() string {
	if s.Path == "" {
		return "embedded"
	}
	return s.Path
}

// LoadReactions reads reaction definitions from src.
func LoadReactions(src Source) ([]reactions.Definition, error) {
	data, err := read(src, embedded.ReactionsPath)
	if err != nil {
		return nil, err
	}
	return DecodeReactions(data, src.String())
}

// LoadTrivia reads trivia items from src.
func LoadTrivia(src Source) ([]trivia.Item, error) {
	data, err := read(src, embedded.TriviaPath)
	if err != nil {
		return nil, err
	}
	return DecodeTrivia(data, src.String())
}

// DecodeReactions parses a YAML list of reaction definitions.
func DecodeReactions(data []byte, name string) ([]reactions.Definition, error) {
	var defs []reactions.Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, errors.NewParseError("yaml", name, "decoding reaction definitions", err)
	}
	return defs, nil
}

// DecodeTrivia parses a YAML list of trivia items.
func DecodeTrivia(data []byte, name string) ([]trivia.Item, error) {
	var items []trivia.Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, errors.NewParseError("yaml", name, "decoding trivia items", err)
	}
	return items, nil
}

func read(src Source, builtin string) ([]byte, error) {
	fs, path := src.Fs, src.Path
	if path == "" {
		fs, path = Embedded(), builtin
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return data, nil
}
