package raster

import "testing"

func TestNewEdge(t *testing.T) {
	tests := []struct {
		name         string
		p0, p1       Point
		wantOK       bool
		wantY0       float64
		wantY1       float64
		wantDir      int
		wantXAtYHalf float64
	}{
		{"downward", Point{0, 0}, Point{10, 10}, true, 0, 10, 1, 5},
		{"upward normalized", Point{10, 10}, Point{0, 0}, true, 0, 10, -1, 5},
		{"vertical", Point{3, 2}, Point{3, 8}, true, 2, 8, 1, 3},
		{"horizontal rejected", Point{0, 4}, Point{9, 4}, false, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := NewEdge(tt.p0, tt.p1)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if e.y0 != tt.wantY0 || e.y1 != tt.wantY1 || e.dir != tt.wantDir {
				t.Errorf("edge = %+v", e)
			}
			mid := (e.y0 + e.y1) / 2
			if got := e.XAtY(mid); got != tt.wantXAtYHalf {
				t.Errorf("XAtY(%v) = %v, want %v", mid, got, tt.wantXAtYHalf)
			}
		})
	}
}

func TestEdgeCrossesIsHalfOpen(t *testing.T) {
	e, _ := NewEdge(Point{0, 2}, Point{0, 6})
	tests := []struct {
		y    float64
		want bool
	}{
		{1.5, false},
		{2, true},
		{4.5, true},
		{5.999, true},
		{6, false},
	}
	for _, tt := range tests {
		if got := e.Crosses(tt.y); got != tt.want {
			t.Errorf("Crosses(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestActiveEdgeTable(t *testing.T) {
	aet := NewActiveEdgeTable()
	for _, pts := range [][2]Point{
		{{30, 0}, {30, 10}},
		{{10, 10}, {10, 0}},
		{{0, 0}, {40, 10}},
	} {
		e, ok := NewEdge(pts[0], pts[1])
		if !ok {
			t.Fatal("unexpected horizontal edge")
		}
		aet.AddAtY(&e, 5)
	}
	aet.Sort()

	edges := aet.Edges()
	wantX := []float64{10, 20, 30}
	wantDir := []int{-1, 1, 1}
	if len(edges) != len(wantX) {
		t.Fatalf("len = %d, want %d", len(edges), len(wantX))
	}
	for i := range edges {
		if edges[i].x != wantX[i] || edges[i].dir != wantDir[i] {
			t.Errorf("edge %d = %+v, want x=%v dir=%d", i, edges[i], wantX[i], wantDir[i])
		}
	}

	aet.Clear()
	if len(aet.Edges()) != 0 {
		t.Error("Clear left edges behind")
	}
}
