package eraser

import "golang.org/x/image/draw"

// Canvas size limits. The floor keeps the editing area usable when the host
// element reports a tiny or zero size.
const (
	MinCanvasWidth      = 320
	MinCanvasHeight     = 240
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600
)

// EditorOption configures an Editor during creation.
//
// Example:
//
//	ed := eraser.NewEditor(
//	    eraser.WithCanvasSize(1024, 768),
//	    eraser.WithBrush(eraser.Brush{Shape: eraser.ShapeSquare, Size: 24}),
//	)
type EditorOption func(*editorOptions)

// editorOptions holds optional configuration for Editor creation.
type editorOptions struct {
	width        int
	height       int
	historyLimit int
	brush        Brush
	origin       Point
	interp       draw.Interpolator
}

// defaultOptions returns the default editor options.
func defaultOptions() editorOptions {
	return editorOptions{
		width:        DefaultCanvasWidth,
		height:       DefaultCanvasHeight,
		historyLimit: DefaultHistoryLimit,
		brush:        DefaultBrush(),
		interp:       draw.ApproxBiLinear,
	}
}

// WithCanvasSize sets the surface size. Sizes below MinCanvasWidth x
// MinCanvasHeight are raised to the minimum.
func WithCanvasSize(width, height int) EditorOption {
	return func(o *editorOptions) {
		o.width = max(width, MinCanvasWidth)
		o.height = max(height, MinCanvasHeight)
	}
}

// WithHistoryLimit sets the capacity of each history stack.
// Values below 1 are raised to 1.
func WithHistoryLimit(n int) EditorOption {
	return func(o *editorOptions) {
		o.historyLimit = max(n, 1)
	}
}

// WithBrush sets the initial brush. The brush is normalized.
func WithBrush(b Brush) EditorOption {
	return func(o *editorOptions) {
		o.brush = b.Normalize()
	}
}

// WithOrigin sets the device position of the element hosting the surface.
func WithOrigin(origin Point) EditorOption {
	return func(o *editorOptions) {
		o.origin = origin
	}
}

// WithInterpolator sets the resampler used to fit loaded images.
// A nil interpolator keeps draw.ApproxBiLinear.
func WithInterpolator(interp draw.Interpolator) EditorOption {
	return func(o *editorOptions) {
		if interp != nil {
			o.interp = interp
		}
	}
}
