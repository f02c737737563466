// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for CLI status lines.
const (
	// Success represents successful completion of an operation.
	// Used for: written tables, clean lint runs.
	Success = "✓"

	// Error represents failures.
	// Used for: lint findings, failed writes.
	Error = "✗"

	// Warning represents non-critical issues.
	Warning = "!"
)
