package eraser

import (
	"image"
	"io"

	"golang.org/x/image/draw"

	"github.com/gogpu/eraser/internal/imageio"
)

// Surface owns the pixel buffer being edited. The buffer size is fixed when
// the surface is created; loading an image clears it and draws the image
// centered and scaled to fit ("contain") inside it.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	width  int
	height int
	interp draw.Interpolator

	buffer   *Pixmap // live pixels; nil until an image is loaded
	original *Pixmap // buffer as it was right after the last load
	drawRect image.Rectangle
	comp     *Compositor
}

// NewSurface creates an empty surface of the given size. A surface with a
// non-positive width or height adopts the size of each loaded image.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:  max(width, 0),
		height: max(height, 0),
		interp: draw.ApproxBiLinear,
	}
}

// SetInterpolator sets the resampler used when a loaded image must be
// scaled. A nil interpolator restores draw.ApproxBiLinear.
func (s *Surface) SetInterpolator(interp draw.Interpolator) {
	if interp == nil {
		interp = draw.ApproxBiLinear
	}
	s.interp = interp
}

// Width returns the surface width, or 0 when unsized and empty.
func (s *Surface) Width() int {
	if s.buffer != nil {
		return s.buffer.Width()
	}
	return s.width
}

// Height returns the surface height, or 0 when unsized and empty.
func (s *Surface) Height() int {
	if s.buffer != nil {
		return s.buffer.Height()
	}
	return s.height
}

// Loaded reports whether an image has been loaded.
func (s *Surface) Loaded() bool {
	return s.buffer != nil
}

// Buffer returns the live pixel buffer, or nil when empty. Callers must not
// modify it; all edits go through the surface's Compositor.
func (s *Surface) Buffer() *Pixmap {
	return s.buffer
}

// Original returns the buffer as it was right after the last load, or nil.
func (s *Surface) Original() *Pixmap {
	return s.original
}

// DrawRect returns where the last loaded image was drawn.
func (s *Surface) DrawRect() image.Rectangle {
	return s.drawRect
}

// Compositor returns the compositor bound to the live buffer, or nil when
// the surface is empty.
func (s *Surface) Compositor() *Compositor {
	return s.comp
}

// ContainRect computes where an image of size imgW x imgH is drawn inside a
// surface of size surfW x surfH: scale = min(surfW/imgW, surfH/imgH), the
// drawn size is floor(img*scale) and the offsets floor((surf-drawn)/2).
func ContainRect(surfW, surfH, imgW, imgH int) image.Rectangle {
	if surfW <= 0 || surfH <= 0 || imgW <= 0 || imgH <= 0 {
		return image.Rectangle{}
	}
	scale := min(float64(surfW)/float64(imgW), float64(surfH)/float64(imgH))
	dw := int(float64(imgW) * scale)
	dh := int(float64(imgH) * scale)
	dx := (surfW - dw) / 2
	dy := (surfH - dh) / 2
	return image.Rect(dx, dy, dx+dw, dy+dh)
}

// Load replaces the surface contents with img. The buffer is cleared to
// transparent and img is drawn into ContainRect. It returns the draw
// rectangle. On error the surface keeps its prior contents.
func (s *Surface) Load(img image.Image) (image.Rectangle, error) {
	if img == nil || img.Bounds().Empty() {
		return image.Rectangle{}, ErrNoImage
	}
	src := img.Bounds()

	w, h := s.width, s.height
	if w <= 0 || h <= 0 {
		w, h = src.Dx(), src.Dy()
	}

	buf := NewPixmap(w, h)
	dr := ContainRect(w, h, src.Dx(), src.Dy())
	switch {
	case dr.Empty():
		// Too thin to cover a single pixel at this scale.
	case dr.Dx() == src.Dx() && dr.Dy() == src.Dy():
		draw.Copy(buf.view(), dr.Min, img, src, draw.Src, nil)
	default:
		s.interp.Scale(buf.view(), dr, img, src, draw.Src, nil)
	}

	s.buffer = buf
	s.original = buf.Clone()
	s.drawRect = dr
	s.comp = NewCompositor(buf)
	return dr, nil
}

// Reset discards the loaded image and leaves the surface empty.
func (s *Surface) Reset() {
	s.buffer = nil
	s.original = nil
	s.drawRect = image.Rectangle{}
	s.comp = nil
}

// Snapshot returns an independent copy of the live buffer.
func (s *Surface) Snapshot() (*Snapshot, error) {
	if s.buffer == nil {
		return nil, ErrEmptySurface
	}
	return &Snapshot{pixels: s.buffer.Clone()}, nil
}

// Restore overwrites the live buffer with snap. It fails with a
// *DimensionMismatchError when the sizes differ, leaving the buffer unchanged.
func (s *Surface) Restore(snap *Snapshot) error {
	if s.buffer == nil {
		return ErrEmptySurface
	}
	if snap == nil || !s.buffer.SameSize(snap.pixels) {
		e := &DimensionMismatchError{SurfaceWidth: s.buffer.Width(), SurfaceHeight: s.buffer.Height()}
		if snap != nil {
			e.SnapshotWidth, e.SnapshotHeight = snap.Width(), snap.Height()
		}
		return e
	}
	copy(s.buffer.data, snap.pixels.data)
	return nil
}

// ExportPNG writes the live buffer to w as a lossless PNG with alpha.
func (s *Surface) ExportPNG(w io.Writer) error {
	if s.buffer == nil {
		return ErrEmptySurface
	}
	return imageio.EncodePNG(w, s.buffer.ToImage())
}

// Snapshot is an immutable full copy of a surface buffer.
type Snapshot struct {
	pixels *Pixmap
}

// Width returns the snapshot width.
func (s *Snapshot) Width() int {
	return s.pixels.Width()
}

// Height returns the snapshot height.
func (s *Snapshot) Height() int {
	return s.pixels.Height()
}

// Size returns the snapshot size in bytes.
func (s *Snapshot) Size() int {
	return len(s.pixels.data)
}

// Matches reports whether p holds exactly the snapshot's pixels.
func (s *Snapshot) Matches(p *Pixmap) bool {
	return s.pixels.Equal(p)
}

// Image returns a copy of the snapshot as an image.NRGBA.
func (s *Snapshot) Image() *image.NRGBA {
	return s.pixels.ToImage()
}
