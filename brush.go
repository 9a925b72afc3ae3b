package eraser

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// Shape is the footprint of the eraser brush.
type Shape int

const (
	// ShapeCircle is a disc of diameter Size.
	ShapeCircle Shape = iota
	// ShapeSquare is an axis-aligned square of side Size.
	ShapeSquare
	// ShapeTriangle is an equilateral triangle of side Size, apex up.
	ShapeTriangle
)

// Brush size limits in logical units.
const (
	MinBrushSize     = 1.0
	MaxBrushSize     = 200.0
	DefaultBrushSize = 40.0
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool {
	return s >= ShapeCircle && s <= ShapeTriangle
}

// ParseShape maps a shape name to a Shape. Matching ignores case and
// surrounding space; unknown names fall back to ShapeCircle.
func ParseShape(name string) Shape {
	switch cases.Fold().String(strings.TrimSpace(name)) {
	case "square":
		return ShapeSquare
	case "triangle":
		return ShapeTriangle
	default:
		return ShapeCircle
	}
}

// Brush describes the eraser footprint. A Brush is a value; changing the
// editor's brush never affects a stroke already in progress.
type Brush struct {
	Shape Shape
	Size  float64
}

// DefaultBrush returns a circle of DefaultBrushSize.
func DefaultBrush() Brush {
	return Brush{Shape: ShapeCircle, Size: DefaultBrushSize}
}

// Normalize returns b with an unknown shape replaced by ShapeCircle and the
// size saturated into [MinBrushSize, MaxBrushSize]. NaN and zero sizes become
// MinBrushSize.
func (b Brush) Normalize() Brush {
	if !b.Shape.Valid() {
		b.Shape = ShapeCircle
	}
	b.Size = ClampBrushSize(b.Size)
	return b
}

// ClampBrushSize saturates size into [MinBrushSize, MaxBrushSize].
func ClampBrushSize(size float64) float64 {
	if math.IsNaN(size) || size == 0 {
		return MinBrushSize
	}
	return clamp(size, MinBrushSize, MaxBrushSize)
}

// Outline returns the closed outline of shape with the given size centered on
// center. The same path serves as the erase footprint and the cursor preview.
//
// The triangle has height h = size*sqrt(3)/2 with its apex at center.Y-h/2 and
// its base at center.Y+h/2, so its vertical extent is centered like the
// circle and square footprints.
func Outline(shape Shape, size float64, center Point) *Path {
	half := size / 2
	p := NewPath()

	switch shape {
	case ShapeSquare:
		p.Rectangle(center.X-half, center.Y-half, size, size)
	case ShapeTriangle:
		h := math.Sqrt(3) / 2 * size
		p.MoveTo(center.X, center.Y-h/2)
		p.LineTo(center.X-half, center.Y+h/2)
		p.LineTo(center.X+half, center.Y+h/2)
		p.Close()
	default:
		p.Circle(center.X, center.Y, half)
	}
	return p
}

// Outline returns the brush outline centered on center.
func (b Brush) Outline(center Point) *Path {
	return Outline(b.Shape, b.Size, center)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
