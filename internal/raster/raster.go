// Package raster provides hard-edged scanline rasterization of polygons.
//
// A pixel is covered when its center (x+0.5, y+0.5) lies inside the filled
// region. There is no partial coverage: every covered pixel receives the full
// operation of the target and every other pixel is left untouched.
package raster

import "math"

// Target receives covered spans. FillSpan covers pixels x1 <= x < x2 on row y;
// the rasterizer guarantees 0 <= x1 < x2 <= Width() and 0 <= y < Height().
type Target interface {
	Width() int
	Height() int
	FillSpan(x1, x2, y int)
}

// Rasterizer performs scanline rasterization. A Rasterizer reuses its edge
// buffers between calls and must not be shared between goroutines.
type Rasterizer struct {
	edges []Edge
	aet   *ActiveEdgeTable
}

// NewRasterizer creates a new rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		edges: make([]Edge, 0, 64),
		aet:   NewActiveEdgeTable(),
	}
}

// Fill rasterizes the union of closed polygons onto dst using the non-zero
// winding rule.
func (r *Rasterizer) Fill(dst Target, polys [][]Point) {
	r.edges = r.edges[:0]
	yMin := math.Inf(1)
	yMax := math.Inf(-1)

	for _, poly := range polys {
		n := len(poly)
		if n < 3 {
			continue
		}
		for i := range poly {
			e, ok := NewEdge(poly[i], poly[(i+1)%n])
			if !ok {
				continue
			}
			r.edges = append(r.edges, e)
			yMin = math.Min(yMin, e.y0)
			yMax = math.Max(yMax, e.y1)
		}
	}
	if len(r.edges) == 0 {
		return
	}

	// Rows whose center lies in [yMin, yMax).
	yMin = math.Max(yMin, 0)
	yMax = math.Min(yMax, float64(dst.Height()))
	if !(yMin < yMax) {
		return
	}
	first := int(math.Ceil(yMin - 0.5))
	last := int(math.Ceil(yMax - 0.5))

	for y := first; y < last; y++ {
		r.scanline(dst, float64(y)+0.5, y)
	}
}

// scanline fills one row sampled at sy.
func (r *Rasterizer) scanline(dst Target, sy float64, y int) {
	r.aet.Clear()
	for i := range r.edges {
		if r.edges[i].Crosses(sy) {
			r.aet.AddAtY(&r.edges[i], sy)
		}
	}
	active := r.aet.Edges()
	if len(active) < 2 {
		return
	}
	r.aet.Sort()

	winding := 0
	var start float64
	for _, e := range active {
		if winding == 0 {
			start = e.x
		}
		winding += e.dir
		if winding == 0 {
			fillSpan(dst, start, e.x, y)
		}
	}
}

// fillSpan covers the pixels whose centers lie in [xa, xb).
func fillSpan(dst Target, xa, xb float64, y int) {
	xa = math.Max(xa, 0)
	xb = math.Min(xb, float64(dst.Width()))
	if !(xa < xb) {
		return
	}
	x1 := int(math.Ceil(xa - 0.5))
	x2 := int(math.Ceil(xb - 0.5))
	if x1 >= x2 {
		return
	}
	dst.FillSpan(x1, x2, y)
}
