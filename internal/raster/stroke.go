package raster

import "math"

// Stroke rasterizes a closed ring as a sequence of thick segments. Each
// segment is filled as a quad of the given width centered on the segment.
// A non-empty dash alternates on/off lengths along the ring.
func (r *Rasterizer) Stroke(dst Target, ring []Point, width float64, dash []float64) {
	if len(ring) < 2 {
		return
	}
	if width < 1 {
		width = 1
	}

	closed := make([]Point, 0, len(ring)+1)
	closed = append(closed, ring...)
	closed = append(closed, ring[0])

	for _, run := range Dash(closed, dash) {
		for i := 0; i+1 < len(run); i++ {
			r.strokeSegment(dst, run[i], run[i+1], width)
		}
	}
}

// strokeSegment fills a quad around the segment p0-p1.
func (r *Rasterizer) strokeSegment(dst Target, p0, p1 Point, width float64) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return
	}

	off := width / 2
	nx := -dy / length * off
	ny := dx / length * off

	quad := []Point{
		{X: p0.X + nx, Y: p0.Y + ny},
		{X: p0.X - nx, Y: p0.Y - ny},
		{X: p1.X - nx, Y: p1.Y - ny},
		{X: p1.X + nx, Y: p1.Y + ny},
	}
	r.Fill(dst, [][]Point{quad})
}

// Dash splits an open polyline into the runs covered by the "on" intervals
// of pattern. An empty or all-zero pattern returns the polyline unchanged.
// Odd-length patterns repeat twice, so [4] behaves as [4, 4].
func Dash(line []Point, pattern []float64) [][]Point {
	total := 0.0
	for _, l := range pattern {
		total += math.Abs(l)
	}
	if total == 0 || len(line) < 2 {
		return [][]Point{line}
	}
	if len(pattern)%2 != 0 {
		pattern = append(append([]float64(nil), pattern...), pattern...)
	}

	var (
		runs   [][]Point
		run    = []Point{line[0]}
		idx    int
		remain = math.Abs(pattern[0])
		on     = true
	)

	for i := 0; i+1 < len(line); i++ {
		a, b := line[i], line[i+1]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for segLen-pos > remain {
			pos += remain
			t := pos / segLen
			p := Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			if on {
				run = append(run, p)
				runs = append(runs, run)
				run = nil
			} else {
				run = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remain = math.Abs(pattern[idx])
		}
		remain -= segLen - pos
		if on {
			run = append(run, b)
		}
	}
	if on && len(run) >= 2 {
		runs = append(runs, run)
	}
	return runs
}
