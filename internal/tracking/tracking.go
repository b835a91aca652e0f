// Package tracking keeps line numbers honest across a batch of edits.
//
// Every applied edit changes the line count of its buffer, so line numbers
// recorded against the original file drift as the session proceeds. A
// Tracker accumulates one (line, delta) record per applied edit, keyed by
// buffer identifier, and shifts later line numbers by the deltas of every
// earlier edit above them.
package tracking

import "sync"

// Edit is one applied replacement: the original 1-indexed line it was
// recorded at and the signed line-count change it caused.
type Edit struct {
	Line  int
	Delta int
}

// Tracker maps buffer identifiers (usually file paths) to their edit
// history. The zero value is not usable; call NewTracker.
//
// Operations are guarded so sessions that process distinct buffers
// concurrently can share one Tracker. Edits to a single buffer must still
// be applied sequentially.
type Tracker struct {
	mu    sync.RWMutex
	edits map[string][]Edit
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{edits: make(map[string][]Edit)}
}

// Adjust translates a line number recorded against the original buffer
// into the corresponding line in the current buffer state. Records
// strictly below the requested line contribute their deltas; an unknown
// identifier means no prior edits and the line comes back unchanged.
func (t *Tracker) Adjust(id string, lineno int) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	adjusted := lineno
	for _, e := range t.edits[id] {
		if e.Line < lineno {
			adjusted += e.Delta
		}
	}
	return adjusted
}

// Record appends an edit to the history of id.
func (t *Tracker) Record(id string, lineno, delta int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.edits[id] = append(t.edits[id], Edit{Line: lineno, Delta: delta})
}

// Edits returns a copy of the recorded history for id, in application
// order.
func (t *Tracker) Edits(id string) []Edit {
	t.mu.RLock()
	defer t.mu.RUnlock()

	es := t.edits[id]
	if len(es) == 0 {
		return nil
	}
	out := make([]Edit, len(es))
	copy(out, es)
	return out
}

// Touched reports whether id has any recorded edits.
func (t *Tracker) Touched(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.edits[id]) > 0
}
