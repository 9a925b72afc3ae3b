package eraser

import "math"

// strokeSpacing is the stamp spacing as a fraction of the brush size.
const strokeSpacing = 0.35

// StrokeStep returns the maximum distance between consecutive stamp centers
// for a brush of the given size: max(1, size*0.35).
func StrokeStep(size float64) float64 {
	return math.Max(1, size*strokeSpacing)
}

// Interpolate returns the stamp centers for a stroke segment from from to to.
// It produces steps+1 centers at t = i/steps, where
// steps = max(1, ceil(distance/StrokeStep(size))). Both endpoints are always
// included and adjacent centers are never farther apart than StrokeStep(size).
func Interpolate(from, to Point, size float64) []Point {
	step := StrokeStep(size)
	steps := int(math.Max(1, math.Ceil(from.Distance(to)/step)))

	centers := make([]Point, steps+1)
	for i := 0; i <= steps; i++ {
		centers[i] = from.Lerp(to, float64(i)/float64(steps))
	}
	return centers
}
