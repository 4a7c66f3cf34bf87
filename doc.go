// Package paintcore is a paint-stroke compositing engine for raster images.
//
// # Overview
//
// A stroke is a sequence of pointer samples turned into brush stamps
// ("painthits") placed at regular spacing along the path and composited
// into a drawable. Each painthit runs the same pipeline:
//
//  1. Capture undo tiles under the painthit.
//  2. Build the stamp: scale the brush mask for pressure, place it at
//     sub-pixel or whole-pixel precision, optionally modulate it with noise.
//  3. Let the tool render the paint, then composite it with the paint mode.
//
// # Quick Start
//
//	pm := paintcore.NewPixmap(256, 256, paintcore.FormatRGBA8)
//	history := paintcore.NewHistory(paintcore.HistoryConfig{})
//
//	s := paintcore.NewSession(paintcore.Paintbrush{},
//		paintcore.WithBrushProvider(paintcore.StaticBrush(paintcore.NewCircleBrush(8, 0.5))),
//		paintcore.WithUndoSystem(history))
//
//	s.Init(pm, 20, 20)
//	s.InterpolateTo(200, 120)
//	s.Finish()
//	s.Cleanup()
//
//	history.Undo()
//
// # Application Modes
//
// Under [ApplyConstant] the coverage of every painthit is max-combined into
// a per-stroke canvas and the canvas is composited over the pixels as they
// were before the stroke, so a stroke never exceeds its opacity no matter
// how often it crosses itself. Under [ApplyIncremental] each painthit is
// composited over the current pixels and paint builds up.
//
// # Drawables
//
// Any type implementing [Drawable] can be painted. [Pixmap] is the in-memory
// implementation used by the command line tool and the tests.
//
// # Coordinate System
//
// Sample coordinates are in drawable pixels with the origin at the top-left.
// The pixel (x, y) covers [x, x+1) × [y, y+1).
package paintcore
