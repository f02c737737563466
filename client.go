package streamscript

import (
	"fmt"
	"path/filepath"
)

// Compile-time interface check to ensure proper implementation.
var _ Hooks = (*Client)(nil)

// Client runs the table pipelines: load curated data, build events,
// merge and sort, serialize, write.
//
// Example usage:
//
//	client, err := streamscript.New(
//	    streamscript.WithOutputDir("backend/data"),
//	    streamscript.WithSeed(2024),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.GenerateReactions(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %d events to %s\n", result.Total, result.Path)
type Client struct {
	options *options
	hooks   *hooks
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	o := defaultOptions()
	if err := o.apply(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}
	return &Client{options: o, hooks: newHooks()}, nil
}

// OnTableWritten registers a callback for every written file.
func (c *Client) OnTableWritten(fn TableWrittenHook) {
	c.hooks.OnTableWritten(fn)
}

// OutputPath resolves a file name against the output directory.
// Absolute names are returned unchanged.
func (c *Client) OutputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.options.outputDir, name)
}
