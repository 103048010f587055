// Package history provides the linear undo/redo command history and the
// observational audit trail for the layout builder.
package history

import (
	"sync"

	"github.com/goliatone/go-storefront/internal/layout"
)

// DefaultDepth is the calibrated undo/redo stack bound. The number is a
// tuning parameter, not a correctness requirement.
const DefaultDepth = 10

// History keeps bounded snapshot stacks of the whole section collection.
// Snapshots are deep copies taken before a mutation the UI wants to be
// reversible; a fresh recording after an undo clears the redo stack, so the
// history is strictly linear.
type History struct {
	mu    sync.Mutex
	depth int
	undo  [][]layout.Section
	redo  [][]layout.Section
}

// New constructs a history with the given stack depth. Non-positive depths
// fall back to DefaultDepth.
func New(depth int) *History {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &History{depth: depth}
}

// RecordBeforeMutation pushes the current collection onto the undo stack,
// dropping the oldest snapshot at capacity, and clears the redo stack. The
// UI layer calls this before invoking a store mutation it wants reversible;
// the engine does not auto-wrap every mutation.
func (h *History) RecordBeforeMutation(current []layout.Section) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undo) >= h.depth {
		h.undo = h.undo[1:]
	}
	h.undo = append(h.undo, layout.CloneSections(current))
	h.redo = nil
}

// Undo pops the most recent snapshot, pushing the current collection onto
// the redo stack. The returned snapshot is the collection to install; ok is
// false when there is nothing to undo.
func (h *History) Undo(current []layout.Section) (snapshot []layout.Section, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undo) == 0 {
		return nil, false
	}
	snapshot = h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	if len(h.redo) >= h.depth {
		h.redo = h.redo[1:]
	}
	h.redo = append(h.redo, layout.CloneSections(current))
	return layout.CloneSections(snapshot), true
}

// Redo is the symmetric inverse of Undo. ok is false when there is nothing
// to redo.
func (h *History) Redo(current []layout.Section) (snapshot []layout.Section, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redo) == 0 {
		return nil, false
	}
	snapshot = h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	if len(h.undo) >= h.depth {
		h.undo = h.undo[1:]
	}
	h.undo = append(h.undo, layout.CloneSections(current))
	return layout.CloneSections(snapshot), true
}

// CanUndo reports whether an undo snapshot is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo) > 0
}

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo) > 0
}

// Clear drops both stacks.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undo = nil
	h.redo = nil
}
