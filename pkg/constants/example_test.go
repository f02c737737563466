package constants_test

import (
	"fmt"
	"path/filepath"

	"github.com/agentstation/streamscript/pkg/constants"
)

// Example demonstrates resolving the default output files.
func Example() {
	fmt.Println(filepath.Join(constants.DefaultOutputDir, constants.DefaultReactionsFile))
	fmt.Println(filepath.Join(constants.DefaultOutputDir, constants.DefaultTriviaFile))
	fmt.Printf("files are written with %o permissions\n", constants.FilePermissions)
	// Output:
	// generated_reactions.js
	// generated_trivia.js
	// files are written with 644 permissions
}

// Example_defaults shows the filler reaction defaults.
func Example_defaults() {
	fmt.Println(constants.DefaultVideoDurationMs, constants.DefaultFillerCount, constants.DefaultMaxRepeat)
	fmt.Println(len(constants.DefaultEmojiSet))
	// Output:
	// 1980000 150 2
	// 5
}
