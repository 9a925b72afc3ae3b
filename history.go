package eraser

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/eraser/internal/stack"
)

// DefaultHistoryLimit is the default capacity of each history stack.
const DefaultHistoryLimit = 30

// Snapshotter captures and restores full buffer snapshots.
// *Surface implements Snapshotter.
type Snapshotter interface {
	Snapshot() (*Snapshot, error)
	Restore(*Snapshot) error
}

// HistoryState is the observable state of a History.
type HistoryState struct {
	CanUndo   bool
	CanRedo   bool
	UndoDepth int
	RedoDepth int
}

// History keeps bounded undo and redo stacks of full snapshots. A snapshot
// is owned by exactly one stack at a time; moving it between stacks never
// copies or shares it.
type History struct {
	undo     *stack.Bounded[*Snapshot]
	redo     *stack.Bounded[*Snapshot]
	observer func(HistoryState)
}

// NewHistory creates empty stacks holding at most limit snapshots each.
// Limits below 1 are raised to 1.
func NewHistory(limit int) *History {
	return &History{
		undo: stack.NewBounded[*Snapshot](limit),
		redo: stack.NewBounded[*Snapshot](limit),
	}
}

// Observe registers fn to be called with the new state after every
// mutation. A nil fn removes the observer.
func (h *History) Observe(fn func(HistoryState)) {
	h.observer = fn
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool {
	return !h.undo.Empty()
}

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool {
	return !h.redo.Empty()
}

// Limit returns the capacity of each stack.
func (h *History) Limit() int {
	return h.undo.Cap()
}

// State returns the current observable state.
func (h *History) State() HistoryState {
	return HistoryState{
		CanUndo:   h.CanUndo(),
		CanRedo:   h.CanRedo(),
		UndoDepth: h.undo.Len(),
		RedoDepth: h.redo.Len(),
	}
}

// BeginEdit records the state of src before an edit mutates it and clears
// the redo stack. If the snapshot cannot be taken the redo stack is still
// cleared and the error is returned; the caller may continue the edit
// without undo coverage.
func (h *History) BeginEdit(src Snapshotter) error {
	defer h.notify()

	h.redo.Clear()
	snap, err := src.Snapshot()
	if err != nil {
		return fmt.Errorf("eraser: begin edit: %w", err)
	}
	if _, evicted := h.undo.Push(snap); evicted {
		Logger().Debug("history: evicted oldest undo entry", slog.Int("limit", h.undo.Cap()))
	}
	Logger().Debug("history: snapshot taken",
		slog.Int("bytes", snap.Size()),
		slog.Int("retained", h.Bytes()))
	return nil
}

// Undo restores the most recent undo entry onto src and moves the current
// state of src onto the redo stack. It reports whether anything was undone;
// an empty undo stack is a no-op, not an error. On error both stacks and
// src are left unchanged.
func (h *History) Undo(src Snapshotter) (bool, error) {
	return h.step(src, h.undo, h.redo, "undo")
}

// Redo is the inverse of Undo.
func (h *History) Redo(src Snapshotter) (bool, error) {
	return h.step(src, h.redo, h.undo, "redo")
}

// step pops from, saves the current state of src onto to, and restores the
// popped entry.
func (h *History) step(src Snapshotter, from, to *stack.Bounded[*Snapshot], op string) (bool, error) {
	target, ok := from.Pop()
	if !ok {
		return false, nil
	}

	current, err := src.Snapshot()
	if err != nil {
		from.Push(target)
		return false, fmt.Errorf("eraser: %s: %w", op, err)
	}
	if err := src.Restore(target); err != nil {
		from.Push(target)
		return false, fmt.Errorf("eraser: %s: %w", op, err)
	}
	to.Push(current)

	h.notify()
	return true, nil
}

// Bytes returns the pixel bytes held by both stacks.
func (h *History) Bytes() int {
	n := 0
	sum := func(s *Snapshot) { n += s.Size() }
	h.undo.Each(sum)
	h.redo.Each(sum)
	return n
}

// Reset empties both stacks.
func (h *History) Reset() {
	released := h.Bytes()
	h.undo.Clear()
	h.redo.Clear()
	Logger().Info("history: reset", slog.Int("released", released))
	h.notify()
}

func (h *History) notify() {
	if h.observer != nil {
		h.observer(h.State())
	}
}
