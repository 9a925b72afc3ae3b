package eraser

import (
	"math"
	"testing"
)

func TestViewToLogical(t *testing.T) {
	tests := []struct {
		name   string
		view   View
		device Point
		want   Point
	}{
		{"identity", NewView(Point{}), Pt(10, 20), Pt(10, 20)},
		{"origin", NewView(Pt(100, 50)), Pt(110, 70), Pt(10, 20)},
		{"zoom", View{Zoom: 2, Origin: Pt(100, 50)}, Pt(120, 90), Pt(10, 20)},
		{"pan", View{Zoom: 2, Pan: Pt(-40, 10), Origin: Pt(100, 50)}, Pt(80, 100), Pt(10, 20)},
		{"zero value", View{}, Pt(3, 4), Pt(3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.view.ToLogical(tt.device)
			if got.Distance(tt.want) > 1e-9 {
				t.Errorf("ToLogical(%v) = %v, want %v", tt.device, got, tt.want)
			}
			if back := tt.view.ToDevice(got); back.Distance(tt.device) > 1e-9 {
				t.Errorf("ToDevice(ToLogical(%v)) = %v", tt.device, back)
			}
		})
	}
}

func TestClampZoom(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1, 1},
		{0.25, 0.25},
		{8, 8},
		{0.1, MinZoom},
		{20, MaxZoom},
		{-3, MinZoom},
		{0, 1},
		{math.NaN(), 1},
		{math.Inf(1), MaxZoom},
	}
	for _, tt := range tests {
		if got := ClampZoom(tt.in); got != tt.want {
			t.Errorf("ClampZoom(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestZoomStepSaturates(t *testing.T) {
	v := NewView(Point{})
	for i := 0; i < 100; i++ {
		v.ZoomStep(-1)
	}
	if v.Zoom != MaxZoom {
		t.Errorf("zoom after 100 steps in = %v, want %v", v.Zoom, MaxZoom)
	}
	v.ZoomStep(-1)
	if v.Zoom != MaxZoom {
		t.Errorf("zoom in at the limit = %v, want %v", v.Zoom, MaxZoom)
	}

	for i := 0; i < 100; i++ {
		v.ZoomStep(1)
	}
	if v.Zoom != MinZoom {
		t.Errorf("zoom after 100 steps out = %v, want %v", v.Zoom, MinZoom)
	}
}

func TestZoomStepDirection(t *testing.T) {
	v := NewView(Point{})
	v.ZoomStep(120)
	if math.Abs(v.Zoom-1/ZoomFactor) > 1e-12 {
		t.Errorf("positive delta zoom = %v, want %v", v.Zoom, 1/ZoomFactor)
	}

	v = NewView(Point{})
	v.ZoomStep(0)
	if math.Abs(v.Zoom-ZoomFactor) > 1e-12 {
		t.Errorf("zero delta zoom = %v, want %v", v.Zoom, ZoomFactor)
	}
}
