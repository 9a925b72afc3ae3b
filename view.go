package eraser

import "math"

// Zoom limits and the per-step wheel factor.
const (
	MinZoom    = 0.25
	MaxZoom    = 8.0
	ZoomFactor = 1.1
)

// View maps device pointer coordinates to surface-logical coordinates.
//
//	logical = (device - Origin - Pan) / Zoom
//
// Origin is the device position of the element hosting the surface; Pan is
// an additional device-space offset set by pan gestures.
type View struct {
	Zoom   float64
	Pan    Point
	Origin Point
}

// NewView returns the identity view at the given origin.
func NewView(origin Point) View {
	return View{Zoom: 1, Origin: origin}
}

// ToLogical converts a device point to surface-logical coordinates.
func (v View) ToLogical(device Point) Point {
	return device.Sub(v.Origin).Sub(v.Pan).Div(v.zoom())
}

// ToDevice converts a surface-logical point to device coordinates.
func (v View) ToDevice(logical Point) Point {
	return logical.Mul(v.zoom()).Add(v.Pan).Add(v.Origin)
}

// SetZoom sets the zoom, saturated into [MinZoom, MaxZoom].
func (v *View) SetZoom(z float64) {
	v.Zoom = ClampZoom(z)
}

// ZoomBy multiplies the zoom by factor, saturating at the limits.
func (v *View) ZoomBy(factor float64) {
	v.Zoom = ClampZoom(v.zoom() * factor)
}

// ZoomStep applies one discrete wheel step. A positive deltaY (scrolling
// down) zooms out by 1/ZoomFactor; anything else zooms in by ZoomFactor.
func (v *View) ZoomStep(deltaY float64) {
	if deltaY > 0 {
		v.ZoomBy(1 / ZoomFactor)
		return
	}
	v.ZoomBy(ZoomFactor)
}

// zoom returns a usable zoom even for a zero View value.
func (v View) zoom() float64 {
	if v.Zoom == 0 {
		return 1
	}
	return v.Zoom
}

// ClampZoom saturates z into [MinZoom, MaxZoom]. NaN and zero map to 1.
func ClampZoom(z float64) float64 {
	if math.IsNaN(z) || z == 0 {
		return 1
	}
	return clamp(z, MinZoom, MaxZoom)
}
