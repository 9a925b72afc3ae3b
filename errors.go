package eraser

import (
	"errors"
	"fmt"
)

// Editing errors.
var (
	// ErrImageDecode is returned when external image bytes cannot be decoded.
	// The surface keeps its prior contents and history is untouched.
	ErrImageDecode = errors.New("eraser: image decode failed")

	// ErrNoImage is returned when Load is given a nil or zero-sized image.
	ErrNoImage = errors.New("eraser: no image")

	// ErrEmptySurface is returned when an operation needs pixels but no image
	// has been loaded.
	ErrEmptySurface = errors.New("eraser: surface is empty")

	// ErrDimensionMismatch is returned when a snapshot is restored onto a
	// surface of a different size.
	ErrDimensionMismatch = errors.New("eraser: dimension mismatch")

	// ErrStaleLoad is returned when a load result arrives after a newer load
	// was requested. The result is discarded.
	ErrStaleLoad = errors.New("eraser: stale load result")

	// ErrLoaderClosed is returned when a decode is requested after Close.
	ErrLoaderClosed = errors.New("eraser: loader closed")
)

// DimensionMismatchError reports the sizes involved in a failed restore.
// It matches ErrDimensionMismatch with errors.Is.
type DimensionMismatchError struct {
	SurfaceWidth, SurfaceHeight   int
	SnapshotWidth, SnapshotHeight int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("eraser: dimension mismatch: surface %dx%d, snapshot %dx%d",
		e.SurfaceWidth, e.SurfaceHeight, e.SnapshotWidth, e.SnapshotHeight)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
