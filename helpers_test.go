package eraser

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// opaqueImage returns a fully opaque w x h image with a position-dependent
// color so that misplaced pixels are detectable.
func opaqueImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255})
		}
	}
	return img
}

// loadedSurface returns a w x h surface holding opaqueImage(w, h) unscaled.
func loadedSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s := NewSurface(w, h)
	if _, err := s.Load(opaqueImage(w, h)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

// center returns the center of pixel (x, y).
func center(x, y int) Point {
	return Pt(float64(x)+0.5, float64(y)+0.5)
}

// distanceToSegment returns the distance from p to the segment a-b.
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return p.Distance(a)
	}
	ap := p.Sub(a)
	t := math.Max(0, math.Min(1, (ap.X*ab.X+ap.Y*ab.Y)/lenSq))
	return p.Distance(a.Lerp(b, t))
}

// abs returns the absolute value of x.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
