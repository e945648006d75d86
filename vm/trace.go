package vm

import (
	"fmt"
	"io"
)

// TraceEntry is one recorded step: the program counter it executed at
// and the raw source line, captured before dispatch.
type TraceEntry struct {
	PC  int
	Raw string
}

// ExecutionTrace accumulates a bounded history of executed steps,
// independent of the inline "pc=<4-digit> | <raw>" lines Step already
// writes to its trace writer. It exists for callers (the CLI, tests)
// that want to inspect the trace programmatically after a run rather
// than scrape stdout.
type ExecutionTrace struct {
	MaxEntries int
	entries    []TraceEntry
}

// NewExecutionTrace creates a trace bounded to maxEntries; 0 means
// unbounded.
func NewExecutionTrace(maxEntries int) *ExecutionTrace {
	return &ExecutionTrace{MaxEntries: maxEntries}
}

func (t *ExecutionTrace) record(pc int, raw string) {
	if t.MaxEntries > 0 && len(t.entries) >= t.MaxEntries {
		return
	}
	t.entries = append(t.entries, TraceEntry{PC: pc, Raw: raw})
}

// Entries returns the recorded trace entries.
func (t *ExecutionTrace) Entries() []TraceEntry {
	return t.entries
}

// WriteTo renders the trace as "pc=<4-digit> | <raw>" lines.
func (t *ExecutionTrace) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range t.entries {
		n, err := fmt.Fprintf(w, "pc=%04d | %s\n", e.PC, e.Raw)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
