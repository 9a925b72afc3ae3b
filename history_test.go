package eraser

import (
	"errors"
	"testing"
)

// failingSource is a Snapshotter whose operations can be made to fail.
type failingSource struct {
	*Surface
	snapErr    error
	restoreErr error
}

func (f *failingSource) Snapshot() (*Snapshot, error) {
	if f.snapErr != nil {
		return nil, f.snapErr
	}
	return f.Surface.Snapshot()
}

func (f *failingSource) Restore(s *Snapshot) error {
	if f.restoreErr != nil {
		return f.restoreErr
	}
	return f.Surface.Restore(s)
}

// edit records a history entry and stamps a square at x.
func edit(t *testing.T, h *History, s *Surface, x float64) {
	t.Helper()
	if err := h.BeginEdit(s); err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	s.Compositor().Stamp(Brush{Shape: ShapeSquare, Size: 6}, Pt(x, 20))
}

func TestHistoryUndoRestoresEachState(t *testing.T) {
	s := loadedSurface(t, 100, 40)
	h := NewHistory(DefaultHistoryLimit)

	states := []*Pixmap{s.Buffer().Clone()}
	for i := 0; i < 5; i++ {
		edit(t, h, s, float64(10+i*15))
		states = append(states, s.Buffer().Clone())
	}

	for i := len(states) - 2; i >= 0; i-- {
		ok, err := h.Undo(s)
		if err != nil || !ok {
			t.Fatalf("Undo = %v, %v", ok, err)
		}
		if !s.Buffer().Equal(states[i]) {
			t.Fatalf("after undo, buffer != state %d", i)
		}
	}
	if h.CanUndo() {
		t.Error("undo stack not empty after undoing every edit")
	}
	if ok, err := h.Undo(s); ok || err != nil {
		t.Errorf("Undo on empty stack = %v, %v", ok, err)
	}

	for i := 1; i < len(states); i++ {
		ok, err := h.Redo(s)
		if err != nil || !ok {
			t.Fatalf("Redo = %v, %v", ok, err)
		}
		if !s.Buffer().Equal(states[i]) {
			t.Fatalf("after redo, buffer != state %d", i)
		}
	}
	if h.CanRedo() {
		t.Error("redo stack not empty after redoing everything")
	}
}

func TestHistoryEditClearsRedo(t *testing.T) {
	s := loadedSurface(t, 100, 40)
	h := NewHistory(DefaultHistoryLimit)

	edit(t, h, s, 10)
	edit(t, h, s, 30)
	if _, err := h.Undo(s); err != nil {
		t.Fatal(err)
	}
	if !h.CanRedo() {
		t.Fatal("expected redo after undo")
	}

	edit(t, h, s, 60)
	if h.CanRedo() {
		t.Error("new edit did not clear redo")
	}
	if got := h.State(); got.UndoDepth != 2 || got.RedoDepth != 0 {
		t.Errorf("State = %+v, want 2 undo, 0 redo", got)
	}
}

func TestHistoryIsBounded(t *testing.T) {
	s := loadedSurface(t, 100, 40)
	h := NewHistory(DefaultHistoryLimit)

	var afterFirstEviction *Pixmap
	for i := 0; i < DefaultHistoryLimit+10; i++ {
		if i == 10 {
			afterFirstEviction = s.Buffer().Clone()
		}
		edit(t, h, s, float64(3+i*2))
	}
	if got := h.State().UndoDepth; got != DefaultHistoryLimit {
		t.Fatalf("undo depth = %d, want %d", got, DefaultHistoryLimit)
	}

	n := 0
	for h.CanUndo() {
		if _, err := h.Undo(s); err != nil {
			t.Fatal(err)
		}
		n++
	}
	if n != DefaultHistoryLimit {
		t.Errorf("undid %d steps, want %d", n, DefaultHistoryLimit)
	}
	if !s.Buffer().Equal(afterFirstEviction) {
		t.Error("oldest reachable state is not the one before the 11th edit")
	}
	if got := h.State().RedoDepth; got != DefaultHistoryLimit {
		t.Errorf("redo depth = %d, want %d", got, DefaultHistoryLimit)
	}
}

func TestHistorySnapshotFailure(t *testing.T) {
	s := loadedSurface(t, 40, 40)
	h := NewHistory(DefaultHistoryLimit)

	edit(t, h, s, 10)
	if _, err := h.Undo(s); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("out of memory")
	src := &failingSource{Surface: s, snapErr: boom}
	if err := h.BeginEdit(src); !errors.Is(err, boom) {
		t.Errorf("BeginEdit error = %v, want %v", err, boom)
	}
	if h.CanRedo() {
		t.Error("failed BeginEdit kept the redo stack")
	}
	if h.CanUndo() {
		t.Error("failed BeginEdit pushed an undo entry")
	}
}

func TestHistoryFailedStepLeavesStacks(t *testing.T) {
	s := loadedSurface(t, 40, 40)
	h := NewHistory(DefaultHistoryLimit)
	edit(t, h, s, 10)
	edit(t, h, s, 25)
	before := s.Buffer().Clone()
	want := h.State()

	boom := errors.New("restore failed")
	src := &failingSource{Surface: s, restoreErr: boom}
	ok, err := h.Undo(src)
	if ok || !errors.Is(err, boom) {
		t.Fatalf("Undo = %v, %v; want false, %v", ok, err, boom)
	}
	if got := h.State(); got != want {
		t.Errorf("State = %+v, want %+v", got, want)
	}
	if !s.Buffer().Equal(before) {
		t.Error("failed undo changed the buffer")
	}

	src = &failingSource{Surface: s, snapErr: boom}
	if _, err := h.Undo(src); !errors.Is(err, boom) {
		t.Errorf("Undo error = %v", err)
	}
	if got := h.State(); got != want {
		t.Errorf("State after snapshot failure = %+v, want %+v", got, want)
	}
}

func TestHistoryObserverAndReset(t *testing.T) {
	s := loadedSurface(t, 40, 40)
	h := NewHistory(3)

	var seen []HistoryState
	h.Observe(func(st HistoryState) { seen = append(seen, st) })

	edit(t, h, s, 10)
	if _, err := h.Undo(s); err != nil {
		t.Fatal(err)
	}
	h.Reset()

	want := []HistoryState{
		{CanUndo: true, UndoDepth: 1},
		{CanRedo: true, RedoDepth: 1},
		{},
	}
	if len(seen) != len(want) {
		t.Fatalf("observed %d states, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("state %d = %+v, want %+v", i, seen[i], want[i])
		}
	}
	if h.Limit() != 3 {
		t.Errorf("Limit = %d, want 3", h.Limit())
	}
}

func TestHistoryBytesCountsBothStacks(t *testing.T) {
	s := loadedSurface(t, 20, 10)
	h := NewHistory(DefaultHistoryLimit)
	const per = 20 * 10 * 4

	if got := h.Bytes(); got != 0 {
		t.Fatalf("empty history Bytes = %d", got)
	}
	edit(t, h, s, 5)
	edit(t, h, s, 12)
	if got := h.Bytes(); got != 2*per {
		t.Errorf("after two edits Bytes = %d, want %d", got, 2*per)
	}
	if _, err := h.Undo(s); err != nil {
		t.Fatal(err)
	}
	if got := h.Bytes(); got != 2*per {
		t.Errorf("after undo Bytes = %d, want %d", got, 2*per)
	}
	h.Reset()
	if got := h.Bytes(); got != 0 {
		t.Errorf("after Reset Bytes = %d", got)
	}
}
