// Package embedded carries the curated tables of the recorded Nintendo
// handheld stream so the generators work without any input files.
package embedded

import (
	"embed"
)

// FS embeds the curated reaction and trivia definitions.
//
//go:embed data/*.yaml
var FS embed.FS

// Paths of the curated files inside FS.
const (
	ReactionsPath = "data/reactions.yaml"
	TriviaPath    = "data/trivia.yaml"
)
