// Package eraser is a raster brush-stroke editing engine for removing pixels
// from a photo.
//
// # Overview
//
// The engine owns a pixel buffer, turns pointer motion into erase operations,
// maps device coordinates to surface coordinates under zoom and pan, and
// keeps a bounded, bit-exact undo/redo history.
//
// # Quick Start
//
//	ed := eraser.NewEditor(eraser.WithCanvasSize(800, 600))
//	if err := ed.LoadReader(file); err != nil {
//	    return err
//	}
//	ed.Handle(eraser.PointerEvent{Kind: eraser.PointerDown, X: 100, Y: 100})
//	ed.Handle(eraser.PointerEvent{Kind: eraser.PointerMove, X: 180, Y: 120})
//	ed.Handle(eraser.PointerEvent{Kind: eraser.PointerUp, X: 180, Y: 120})
//	ed.Undo()
//	err := ed.ExportPNG(out)
//
// # Architecture
//
// The package is organized into:
//   - Brush geometry: Shape, Brush, Outline (circle, square, triangle paths)
//   - Stroke interpolation: Interpolate, StrokeStep
//   - Compositing: Compositor (hard-edged erase, non-destructive outlines)
//   - View transform: View (zoom in [0.25, 8], pan, device to logical)
//   - History: History (bounded undo/redo stacks of full snapshots)
//   - Raster surface: Surface, Pixmap, Snapshot
//   - Input state machine: Editor, Event, EditorState
//   - Internal: path (flattening), raster (scanline fill), stack (bounded LIFO),
//     imageio (decode/encode)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - A pixel (x, y) is covered by a shape when its center (x+0.5, y+0.5) is inside
//
// # Concurrency
//
// Editing is single-threaded: an Editor handles one event at a time and every
// buffer mutation completes before Handle returns. Only image decoding may run
// in the background (see Loader); stale results are discarded by LoadTicket.
package eraser
