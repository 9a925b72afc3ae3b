// Package path flattens brush outlines into closed polygons for the rasterizer.
package path

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Tolerance is the maximum distance between a curve and its flattened chords.
const Tolerance = 0.1

// maxDepth bounds curve subdivision for degenerate control polygons.
const maxDepth = 16

// Element represents an element in an outline.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isElement() {}

// Polygon is a closed ring of vertices. The last vertex connects back to the first.
type Polygon []Point

// Flatten converts outline elements into one closed polygon per subpath.
// Subpaths with fewer than three vertices enclose no area and are dropped.
func Flatten(elements []Element) []Polygon {
	var (
		polys   []Polygon
		ring    Polygon
		current Point
	)

	flush := func() {
		if len(ring) >= 3 {
			polys = append(polys, ring)
		}
		ring = nil
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			current = e.Point
			ring = append(ring, current)
		case LineTo:
			current = e.Point
			ring = append(ring, current)
		case CubicTo:
			ring = flattenCubic(ring, current, e.Control1, e.Control2, e.Point, 0)
			current = e.Point
		case Close:
			flush()
		}
	}
	flush()

	return polys
}

func (p Point) lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// flattenCubic appends the chord endpoints of a cubic Bezier to dst using
// de Casteljau subdivision until the control points are within Tolerance.
func flattenCubic(dst Polygon, p0, p1, p2, p3 Point, depth int) Polygon {
	dist := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if dist < Tolerance || depth >= maxDepth {
		return append(dst, p3)
	}

	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)

	dst = flattenCubic(dst, p0, q0, r0, s, depth+1)
	return flattenCubic(dst, s, r1, q2, p3, depth+1)
}

// distanceToSegment returns the distance from p to the segment (a, b).
func distanceToSegment(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	apx, apy := p.X-a.X, p.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq < 1e-20 {
		return math.Hypot(apx, apy)
	}

	t := (apx*abx + apy*aby) / lenSq
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return math.Hypot(apx-abx*t, apy-aby*t)
}
