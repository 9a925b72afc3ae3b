package eraser

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gogpu/eraser/internal/imageio"
)

// Mode is the state of the input state machine.
type Mode int

const (
	// ModeIdle waits for a pointer press.
	ModeIdle Mode = iota
	// ModeErasing applies an interpolated stroke on every pointer move.
	ModeErasing
	// ModePanning moves the view with the pointer.
	ModePanning
	// ModePreviewOnly shows the untouched original; pointer and undo/redo
	// input is inert.
	ModePreviewOnly
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeErasing:
		return "erasing"
	case ModePanning:
		return "panning"
	case ModePreviewOnly:
		return "preview-only"
	default:
		return "unknown"
	}
}

// EditorState is the observable state of an Editor after an event.
type EditorState struct {
	Mode         Mode
	Brush        Brush
	View         View
	ShowOriginal bool
	HasImage     bool
	Document     uuid.UUID // identifies the loaded image; uuid.Nil when empty
	CanUndo      bool
	CanRedo      bool
}

// LoadTicket identifies one load request. Only the ticket of the most recent
// request can complete a load.
type LoadTicket struct {
	generation uint64
}

// strokeSession is the erase gesture between press and release.
type strokeSession struct {
	active bool
	last   Point
	brush  Brush
}

// panSession is the pan gesture between press and release.
type panSession struct {
	active     bool
	start      Point // device position of the press
	panAtStart Point
}

// Editor is the input state machine. It interprets pointer, keyboard and zoom
// events and drives the surface, history and view accordingly.
//
// An Editor handles one event at a time and is not safe for concurrent use;
// decode images off-thread with a Loader and apply the results from the
// event loop.
type Editor struct {
	surface *Surface
	history *History
	overlay *Pixmap
	cursor  *Compositor

	brush        Brush
	view         View
	showOriginal bool
	initialBrush Brush

	stroke strokeSession
	pan    panSession

	document   uuid.UUID
	generation uint64
}

// NewEditor creates an editor with an empty surface.
func NewEditor(opts ...EditorOption) *Editor {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	surface := NewSurface(options.width, options.height)
	surface.SetInterpolator(options.interp)
	overlay := NewPixmap(options.width, options.height)

	brush := options.brush.Normalize()
	return &Editor{
		surface:      surface,
		history:      NewHistory(options.historyLimit),
		overlay:      overlay,
		cursor:       NewCompositor(overlay),
		brush:        brush,
		view:         NewView(options.origin),
		initialBrush: brush,
	}
}

// Surface returns the surface being edited.
func (e *Editor) Surface() *Surface {
	return e.surface
}

// History returns the undo/redo history.
func (e *Editor) History() *History {
	return e.history
}

// Preview returns the overlay holding the brush cursor outline. It is never
// part of the exported image.
func (e *Editor) Preview() *Pixmap {
	return e.overlay
}

// Display returns the image the host should show: the fitted original while
// ShowOriginal is on, otherwise the live buffer. It returns nil when empty.
func (e *Editor) Display() image.Image {
	switch {
	case !e.surface.Loaded():
		return nil
	case e.showOriginal:
		return e.surface.Original()
	default:
		return e.surface.Buffer()
	}
}

// State returns the current editor state.
func (e *Editor) State() EditorState {
	return EditorState{
		Mode:         e.mode(),
		Brush:        e.brush,
		View:         e.view,
		ShowOriginal: e.showOriginal,
		HasImage:     e.surface.Loaded(),
		Document:     e.document,
		CanUndo:      e.history.CanUndo(),
		CanRedo:      e.history.CanRedo(),
	}
}

func (e *Editor) mode() Mode {
	switch {
	case e.showOriginal:
		return ModePreviewOnly
	case e.stroke.active:
		return ModeErasing
	case e.pan.active:
		return ModePanning
	default:
		return ModeIdle
	}
}

// Handle applies one event and returns the resulting state.
func (e *Editor) Handle(ev Event) EditorState {
	switch ev := ev.(type) {
	case PointerEvent:
		e.handlePointer(ev)
	case KeyEvent:
		e.handleKey(ev)
	case ZoomEvent:
		e.view.ZoomStep(ev.DeltaY)
	case SetZoomEvent:
		e.view.SetZoom(ev.Zoom)
	case ShowOriginalEvent:
		e.setShowOriginal(ev.On)
	case BrushEvent:
		e.brush = ev.Brush.Normalize()
	}
	return e.State()
}

func (e *Editor) handlePointer(ev PointerEvent) {
	if e.showOriginal {
		return
	}
	device := ev.Device()
	if !device.IsFinite() {
		return
	}

	switch ev.Kind {
	case PointerDown:
		switch ev.Button {
		case ButtonPrimary:
			e.beginStroke(e.view.ToLogical(device))
		case ButtonSecondary:
			e.beginPan(device)
		}
	case PointerMove:
		if e.pan.active {
			e.view.Pan = e.pan.panAtStart.Add(device.Sub(e.pan.start))
		}
		if e.stroke.active {
			e.continueStroke(e.view.ToLogical(device))
		}
	case PointerUp:
		if ev.Button == ButtonPrimary {
			e.endStroke()
		}
		e.pan = panSession{}
	case PointerLeave:
		e.endStroke()
		e.pan = panSession{}
		e.clearPreview()
		return
	}

	e.drawPreview(e.view.ToLogical(device))
}

// beginStroke snapshots the surface and applies the first stamp.
func (e *Editor) beginStroke(at Point) {
	if !e.surface.Loaded() || e.stroke.active || e.pan.active {
		return
	}
	if err := e.history.BeginEdit(e.surface); err != nil {
		Logger().Warn("eraser: edit proceeds without undo entry", slog.Any("err", err))
	}

	e.stroke = strokeSession{active: true, last: at, brush: e.brush}
	e.surface.Compositor().Stamp(e.stroke.brush, at)
}

func (e *Editor) continueStroke(to Point) {
	n := e.surface.Compositor().StampLine(e.stroke.brush, e.stroke.last, to)
	Logger().Debug("eraser: stroke segment", slog.Int("stamps", n))
	e.stroke.last = to
}

func (e *Editor) endStroke() {
	e.stroke = strokeSession{}
}

func (e *Editor) beginPan(device Point) {
	if !e.surface.Loaded() || e.stroke.active || e.pan.active {
		return
	}
	e.pan = panSession{active: true, start: device, panAtStart: e.view.Pan}
}

func (e *Editor) handleKey(ev KeyEvent) {
	if e.showOriginal {
		return
	}
	switch {
	case ev.IsUndo():
		e.endStroke()
		if _, err := e.history.Undo(e.surface); err != nil {
			Logger().Warn("eraser: undo failed", slog.Any("err", err))
		}
	case ev.IsRedo():
		e.endStroke()
		if _, err := e.history.Redo(e.surface); err != nil {
			Logger().Warn("eraser: redo failed", slog.Any("err", err))
		}
	}
}

// Undo is the programmatic equivalent of the undo key combination.
func (e *Editor) Undo() EditorState {
	return e.Handle(KeyEvent{Key: "z", Ctrl: true})
}

// Redo is the programmatic equivalent of the redo key combination.
func (e *Editor) Redo() EditorState {
	return e.Handle(KeyEvent{Key: "y", Ctrl: true})
}

// SetBrushSize sets the brush size, saturated into [MinBrushSize, MaxBrushSize].
func (e *Editor) SetBrushSize(size float64) EditorState {
	b := e.brush
	b.Size = size
	return e.Handle(BrushEvent{Brush: b})
}

// SetBrushShape sets the brush shape. Unknown shapes become ShapeCircle.
func (e *Editor) SetBrushShape(shape Shape) EditorState {
	b := e.brush
	b.Shape = shape
	return e.Handle(BrushEvent{Brush: b})
}

// SetZoom sets the zoom, saturated into [MinZoom, MaxZoom].
func (e *Editor) SetZoom(z float64) EditorState {
	return e.Handle(SetZoomEvent{Zoom: z})
}

func (e *Editor) setShowOriginal(on bool) {
	e.showOriginal = on
	if on {
		e.endStroke()
		e.pan = panSession{}
		e.clearPreview()
	}
}

func (e *Editor) drawPreview(at Point) {
	e.clearPreview()
	outline := e.brush.Outline(at)
	for _, style := range PreviewStyles {
		e.cursor.Outline(outline, style)
	}
}

func (e *Editor) clearPreview() {
	clear(e.overlay.Data())
}

// BeginLoad starts a load request and returns its ticket. Any earlier
// request still pending becomes stale.
func (e *Editor) BeginLoad() LoadTicket {
	e.generation++
	return LoadTicket{generation: e.generation}
}

// CompleteLoad finishes the load identified by t with the decoded image or
// the decode error. A stale ticket returns ErrStaleLoad and changes nothing.
// A decode error returns an error matching ErrImageDecode and leaves the
// surface and history unchanged.
func (e *Editor) CompleteLoad(t LoadTicket, img image.Image, decodeErr error) (EditorState, error) {
	if t.generation != e.generation {
		Logger().Debug("eraser: dropped stale load",
			slog.Uint64("ticket", t.generation), slog.Uint64("current", e.generation))
		return e.State(), ErrStaleLoad
	}
	if decodeErr != nil {
		return e.State(), fmt.Errorf("%w: %w", ErrImageDecode, decodeErr)
	}

	dr, err := e.surface.Load(img)
	if err != nil {
		return e.State(), err
	}

	e.history.Reset()
	e.endStroke()
	e.pan = panSession{}
	e.view.Pan = Point{}
	e.clearPreview()
	e.document = uuid.New()

	Logger().Info("eraser: image loaded",
		slog.String("document", e.document.String()),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()),
		slog.String("draw", dr.String()))
	return e.State(), nil
}

// Apply completes a load with a Loader result.
func (e *Editor) Apply(r LoadResult) (EditorState, error) {
	return e.CompleteLoad(r.Ticket, r.Image, r.Err)
}

// LoadImage loads an already decoded image synchronously.
func (e *Editor) LoadImage(img image.Image) error {
	_, err := e.CompleteLoad(e.BeginLoad(), img, nil)
	return err
}

// LoadReader decodes image bytes from r and loads the result synchronously.
func (e *Editor) LoadReader(r io.Reader) error {
	t := e.BeginLoad()
	img, _, err := imageio.Decode(r)
	_, err = e.CompleteLoad(t, img, err)
	return err
}

// LoadBytes decodes an in-memory image and loads the result synchronously.
// Empty data returns an error matching ErrImageDecode.
func (e *Editor) LoadBytes(data []byte) error {
	t := e.BeginLoad()
	img, _, err := imageio.DecodeBytes(data)
	_, err = e.CompleteLoad(t, img, err)
	return err
}

// Clear unloads the image, empties the history and cancels pending loads.
// The brush returns to the one the editor was created with, and the view
// and ShowOriginal return to their defaults. The view origin is kept.
func (e *Editor) Clear() EditorState {
	e.generation++
	e.surface.Reset()
	e.history.Reset()
	e.endStroke()
	e.pan = panSession{}
	e.clearPreview()
	e.document = uuid.Nil
	e.brush = e.initialBrush
	e.view = NewView(e.view.Origin)
	e.showOriginal = false
	return e.State()
}

// ExportPNG writes the live buffer as a lossless PNG.
func (e *Editor) ExportPNG(w io.Writer) error {
	return e.surface.ExportPNG(w)
}
