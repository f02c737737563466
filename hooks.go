package streamscript

import (
	"sync"
)

// TableWrittenHook is called after a table or cue sheet has been written.
// GenerateAll may call it from several goroutines at once.
type TableWrittenHook func(result Result)

// Hooks provides event callback registration.
type Hooks interface {
	// OnTableWritten registers a callback for every written file
	OnTableWritten(fn TableWrittenHook)
}

// hooks manages event callbacks for generated files
type hooks struct {
	mu             sync.RWMutex
	onTableWritten []TableWrittenHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnTableWritten registers a callback for every written file
func (h *hooks) OnTableWritten(fn TableWrittenHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onTableWritten = append(h.onTableWritten, fn)
}

// triggerTableWritten calls every registered hook with result
func (h *hooks) triggerTableWritten(result Result) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onTableWritten {
		fn(result)
	}
}
