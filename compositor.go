package eraser

import (
	"image/color"

	"github.com/gogpu/eraser/internal/path"
	"github.com/gogpu/eraser/internal/raster"
)

// OutlineStyle describes how a non-destructive outline is painted.
type OutlineStyle struct {
	Color color.NRGBA
	Width float64
	Dash  []float64 // alternating on/off lengths; nil draws a solid line
}

// PreviewStyles is the dual outline used for the brush cursor: a dark stroke
// under a light one so the cursor stays visible on any background.
var PreviewStyles = []OutlineStyle{
	{Color: color.NRGBA{A: 217}, Width: 2, Dash: []float64{4, 3}},
	{Color: color.NRGBA{R: 255, G: 255, B: 255, A: 242}, Width: 1, Dash: []float64{4, 3}},
}

// Compositor applies brush operations to a pixmap. Erasing is a hard-edged
// alpha subtract: every pixel whose center lies inside a stamped shape becomes
// fully transparent and every other pixel is left bit-identical.
type Compositor struct {
	dst  *Pixmap
	rast *raster.Rasterizer
}

// NewCompositor creates a compositor that writes into dst.
func NewCompositor(dst *Pixmap) *Compositor {
	return &Compositor{
		dst:  dst,
		rast: raster.NewRasterizer(),
	}
}

// Target returns the pixmap the compositor writes into.
func (c *Compositor) Target() *Pixmap {
	return c.dst
}

// eraseTarget clears covered spans to transparent black.
type eraseTarget struct{ *Pixmap }

func (t eraseTarget) FillSpan(x1, x2, y int) {
	t.Pixmap.FillSpan(x1, x2, y, color.NRGBA{})
}

// paintTarget sets covered spans to a color.
type paintTarget struct {
	*Pixmap
	c color.NRGBA
}

func (t paintTarget) FillSpan(x1, x2, y int) {
	t.Pixmap.FillSpan(x1, x2, y, t.c)
}

// Erase fills p with full transparency. Repeated erasure of the same region
// is idempotent.
func (c *Compositor) Erase(p *Path) {
	c.rast.Fill(eraseTarget{c.dst}, toRaster(p.flatten()))
}

// Stamp erases one brush footprint centered on center.
func (c *Compositor) Stamp(b Brush, center Point) {
	if !center.IsFinite() {
		return
	}
	c.Erase(b.Outline(center))
}

// StampLine erases a gap-free stroke from from to to and returns the number
// of stamps applied. Parts of the segment farther than one brush size from
// the pixmap cannot touch any pixel and are skipped.
func (c *Compositor) StampLine(b Brush, from, to Point) int {
	if !from.IsFinite() || !to.IsFinite() {
		return 0
	}
	from, to, ok := clipSegment(from, to,
		-b.Size, -b.Size, float64(c.dst.Width())+b.Size, float64(c.dst.Height())+b.Size)
	if !ok {
		return 0
	}

	centers := Interpolate(from, to, b.Size)
	for _, pt := range centers {
		c.Erase(b.Outline(pt))
	}
	return len(centers)
}

// Outline paints the outline of p with the given style. It is used only on
// overlay pixmaps and never on the committed buffer.
func (c *Compositor) Outline(p *Path, style OutlineStyle) {
	dst := paintTarget{Pixmap: c.dst, c: style.Color}
	for _, ring := range toRaster(p.flatten()) {
		c.rast.Stroke(dst, ring, style.Width, style.Dash)
	}
}

// toRaster converts flattened polygons to rasterizer points.
func toRaster(polys []path.Polygon) [][]raster.Point {
	out := make([][]raster.Point, len(polys))
	for i, poly := range polys {
		ring := make([]raster.Point, len(poly))
		for j, pt := range poly {
			ring[j] = raster.Point(pt)
		}
		out[i] = ring
	}
	return out
}

// clipSegment clips the segment a-b to the rectangle [x0,x1]x[y0,y1] using
// the Liang-Barsky algorithm. ok is false when nothing remains.
func clipSegment(a, b Point, x0, y0, x1, y1 float64) (Point, Point, bool) {
	t0, t1 := 0.0, 1.0
	d := b.Sub(a)

	edges := [4][2]float64{
		{-d.X, a.X - x0},
		{d.X, x1 - a.X},
		{-d.Y, a.Y - y0},
		{d.Y, y1 - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = min(t1, r)
		}
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = a.Lerp(b, t0)
	}
	if t1 < 1 {
		cb = a.Lerp(b, t1)
	}
	return ca, cb, true
}
