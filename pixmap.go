package eraser

import (
	"bytes"
	"image"
	"image/color"
)

// Pixmap represents a rectangular pixel buffer with straight (non-premultiplied)
// alpha, 4 bytes per pixel in R, G, B, A order.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new fully transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data. The slice aliases the pixmap.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel, or transparent black when
// out of bounds.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Alpha returns the alpha channel of a single pixel.
func (p *Pixmap) Alpha(x, y int) uint8 {
	return p.GetPixel(x, y).A
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.NRGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// FillSpan sets pixels x1 <= x < x2 on row y to c. The span is clipped to
// the pixmap.
func (p *Pixmap) FillSpan(x1, x2, y int, c color.NRGBA) {
	if y < 0 || y >= p.height {
		return
	}
	x1 = max(x1, 0)
	x2 = min(x2, p.width)
	if x1 >= x2 {
		return
	}
	row := p.data[(y*p.width+x1)*4 : (y*p.width+x2)*4]
	if c == (color.NRGBA{}) {
		clear(row)
		return
	}
	for i := 0; i < len(row); i += 4 {
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
		row[i+3] = c.A
	}
}

// Clone returns an independent copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// SameSize reports whether q has the same dimensions as p.
func (p *Pixmap) SameSize(q *Pixmap) bool {
	return q != nil && p.width == q.width && p.height == q.height
}

// Equal reports whether q has the same dimensions and bit-identical pixels.
func (p *Pixmap) Equal(q *Pixmap) bool {
	return p.SameSize(q) && bytes.Equal(p.data, q.data)
}

// ToImage returns an independent copy of the pixmap as an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// view returns an image.NRGBA that aliases the pixmap data, so image
// drawing routines write straight into the pixmap.
func (p *Pixmap) view() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
