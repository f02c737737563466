package application

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/streamscript"
	"github.com/agentstation/streamscript/pkg/reactions"
)

// Compile-time interface check to ensure proper implementation.
var _ Application = (*Mock)(nil)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
//
// Example Usage:
//
//	fs := afero.NewMemMapFs()
//	mock := &application.Mock{
//	    FsFunc: func() afero.Fs { return fs },
//	}
//	cmd := generate.NewCommand(mock)
type Mock struct {
	ClientFunc         func(opts ...streamscript.Option) (*streamscript.Client, error)
	ReactionConfigFunc func() reactions.Config
	FsFunc             func() afero.Fs
	LoggerFunc         func() *zerolog.Logger
	OutputFormatFunc   func() string
	VersionFunc        func() string
	CommitFunc         func() string
	DateFunc           func() string
	BuiltByFunc        func() string
}

// Client returns a client from the mock function, or a client writing to
// the mock filesystem.
func (m *Mock) Client(opts ...streamscript.Option) (*streamscript.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc(opts...)
	}
	base := []streamscript.Option{
		streamscript.WithFS(m.Fs()),
		streamscript.WithReactionConfig(m.ReactionConfig()),
	}
	return streamscript.New(append(base, opts...)...)
}

// ReactionConfig returns the mock config or the defaults.
func (m *Mock) ReactionConfig() reactions.Config {
	if m.ReactionConfigFunc != nil {
		return m.ReactionConfigFunc()
	}
	return reactions.DefaultConfig()
}

// Fs returns the mock filesystem or an in-memory one.
func (m *Mock) Fs() afero.Fs {
	if m.FsFunc != nil {
		return m.FsFunc()
	}
	return afero.NewMemMapFs()
}

// Logger returns the mock logger or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the mock format or table.
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns the mock version or "test".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}

// Commit returns the mock commit or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns the mock date or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns the mock builder or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}
