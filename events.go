package eraser

import "strings"

// Event is an input delivered to Editor.Handle.
type Event interface {
	isEvent()
}

// PointerKind is the phase of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// Button identifies the pointer button of an event.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a pointer sample in device coordinates.
type PointerEvent struct {
	Kind   PointerKind
	Button Button
	X, Y   float64
}

func (PointerEvent) isEvent() {}

// Device returns the event position as a Point.
func (e PointerEvent) Device() Point {
	return Pt(e.X, e.Y)
}

// KeyEvent is a key press with its modifiers.
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Meta  bool
	Shift bool
}

func (KeyEvent) isEvent() {}

// IsUndo reports whether the event is the undo combination: Ctrl+Z or Cmd+Z.
func (e KeyEvent) IsUndo() bool {
	return (e.Ctrl || e.Meta) && !e.Shift && strings.EqualFold(e.Key, "z")
}

// IsRedo reports whether the event is a redo combination: Ctrl+Shift+Z,
// Cmd+Shift+Z, Ctrl+Y or Cmd+Y.
func (e KeyEvent) IsRedo() bool {
	if !e.Ctrl && !e.Meta {
		return false
	}
	return (e.Shift && strings.EqualFold(e.Key, "z")) || strings.EqualFold(e.Key, "y")
}

// ZoomEvent is one discrete zoom input, such as a wheel notch. A positive
// DeltaY zooms out, anything else zooms in.
type ZoomEvent struct {
	DeltaY float64
}

func (ZoomEvent) isEvent() {}

// SetZoomEvent sets an absolute zoom, saturated into [MinZoom, MaxZoom].
type SetZoomEvent struct {
	Zoom float64
}

func (SetZoomEvent) isEvent() {}

// ShowOriginalEvent toggles the untouched original overlay.
type ShowOriginalEvent struct {
	On bool
}

func (ShowOriginalEvent) isEvent() {}

// BrushEvent replaces the brush used by subsequent strokes.
type BrushEvent struct {
	Brush Brush
}

func (BrushEvent) isEvent() {}
