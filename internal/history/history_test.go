package history

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/goliatone/go-storefront/internal/layout"
)

func snapshotOf(ids ...string) []layout.Section {
	out := make([]layout.Section, len(ids))
	for i, id := range ids {
		out[i] = layout.Section{
			ID:      id,
			Type:    "hero",
			Enabled: true,
			Order:   i,
			Settings: map[string]any{
				"heading": id,
			},
		}
	}
	return out
}

func TestUndoRestoresSnapshotAndEnablesRedo(t *testing.T) {
	h := New(10)
	before := snapshotOf("a", "b")
	after := snapshotOf("a", "b", "c")

	h.RecordBeforeMutation(before)

	restored, ok := h.Undo(after)
	if !ok {
		t.Fatal("expected an undo snapshot")
	}
	if !reflect.DeepEqual(restored, before) {
		t.Fatalf("undo returned wrong snapshot: %v", restored)
	}

	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("expected a redo snapshot")
	}
	if !reflect.DeepEqual(redone, after) {
		t.Fatalf("redo returned wrong snapshot: %v", redone)
	}
}

func TestUndoOnEmptyHistory(t *testing.T) {
	h := New(10)

	if _, ok := h.Undo(snapshotOf("a")); ok {
		t.Fatal("undo succeeded on empty history")
	}
	if _, ok := h.Redo(snapshotOf("a")); ok {
		t.Fatal("redo succeeded on empty history")
	}
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("empty history reports available snapshots")
	}
}

func TestNewRecordingClearsRedoStack(t *testing.T) {
	h := New(10)
	h.RecordBeforeMutation(snapshotOf("a"))

	if _, ok := h.Undo(snapshotOf("a", "b")); !ok {
		t.Fatal("expected an undo snapshot")
	}
	if !h.CanRedo() {
		t.Fatal("expected redo to be available after undo")
	}

	h.RecordBeforeMutation(snapshotOf("a"))
	if h.CanRedo() {
		t.Fatal("redo stack survived a new recording")
	}
}

func TestUndoDepthDropsOldestSnapshot(t *testing.T) {
	h := New(3)
	for i := 0; i < 5; i++ {
		h.RecordBeforeMutation(snapshotOf(fmt.Sprintf("state-%d", i)))
	}

	// Only the three most recent snapshots survive.
	for want := 4; want >= 2; want-- {
		restored, ok := h.Undo(nil)
		if !ok {
			t.Fatalf("expected snapshot %d to be available", want)
		}
		if restored[0].ID != fmt.Sprintf("state-%d", want) {
			t.Fatalf("unexpected snapshot order: got %s, want state-%d", restored[0].ID, want)
		}
	}
	if h.CanUndo() {
		t.Fatal("history retained more snapshots than its depth")
	}
}

func TestSnapshotsAreIsolatedFromCallers(t *testing.T) {
	h := New(10)
	original := snapshotOf("a")
	h.RecordBeforeMutation(original)

	original[0].Settings["heading"] = "mutated"

	restored, _ := h.Undo(nil)
	if restored[0].Settings["heading"] == "mutated" {
		t.Fatal("caller mutation leaked into the recorded snapshot")
	}
}

func TestClearDropsBothStacks(t *testing.T) {
	h := New(10)
	h.RecordBeforeMutation(snapshotOf("a"))
	h.Undo(snapshotOf("a", "b"))

	h.Clear()

	if h.CanUndo() || h.CanRedo() {
		t.Fatal("clear left snapshots behind")
	}
}

func TestNonPositiveDepthFallsBackToDefault(t *testing.T) {
	h := New(0)
	for i := 0; i < DefaultDepth+5; i++ {
		h.RecordBeforeMutation(snapshotOf(fmt.Sprintf("state-%d", i)))
	}

	count := 0
	for {
		if _, ok := h.Undo(nil); !ok {
			break
		}
		count++
	}
	if count != DefaultDepth {
		t.Fatalf("expected %d snapshots, got %d", DefaultDepth, count)
	}
}
