package paintcore

import (
	"fmt"
	"image"
)

// SetupMode tells a tool which target it is preparing paint for.
type SetupMode uint8

const (
	// SetupNormal prepares paint for the primary drawable.
	SetupNormal SetupMode = iota

	// SetupLinked prepares paint for the linked drawable.
	SetupLinked
)

// String returns the lowercase setup mode name.
func (m SetupMode) String() string {
	switch m {
	case SetupNormal:
		return "normal"
	case SetupLinked:
		return "linked"
	default:
		return fmt.Sprintf("SetupMode(%d)", uint8(m))
	}
}

// Painthit is one brush stamp application at one stroke point.
type Painthit struct {
	// Sample is the application point.
	Sample Sample

	// Stamp is the brush mask placed in drawable space.
	Stamp Stamp
}

// Rect returns the unclipped drawable-space rectangle of the painthit.
func (h *Painthit) Rect() image.Rectangle { return h.Stamp.Rect() }

// PaintTarget is handed to a RenderFunc once per painted drawable.
type PaintTarget struct {
	Setup    SetupMode
	Drawable Drawable

	// Paint covers the painthit clipped to the drawable and starts out
	// transparent.
	Paint *PaintBuffer

	// Mode is the paint mode to write with. A render function may change it.
	Mode PaintMode

	// Pristine reads the drawable as it was before the stroke.
	Pristine PixelSource
}

// RenderFunc fills t.Paint for one target. Returning false skips the
// target for this painthit.
type RenderFunc func(t *PaintTarget) bool

// target is one drawable painted by a stroke with its per-stroke buffers.
type target struct {
	setup    SetupMode
	drawable Drawable
	undo     *UndoStore

	// canvas is the stroke coverage canvas, one value per drawable pixel.
	// It only grows during a stroke.
	canvas []float32

	paint    PaintBuffer
	coverage []float32
}

func newTarget(setup SetupMode, d Drawable) *target {
	b := d.Bounds()
	return &target{
		setup:    setup,
		drawable: d,
		undo:     NewUndoStore(d),
		canvas:   make([]float32, b.Dx()*b.Dy()),
	}
}

// reset prepares the target for a new stroke.
func (t *target) reset() {
	clear(t.canvas)
	t.undo.Release()
}

// scratch returns a zeroed coverage buffer for r.
func (t *target) scratch(r image.Rectangle) []float32 {
	n := r.Dx() * r.Dy()
	if cap(t.coverage) < n {
		t.coverage = make([]float32, n)
	}
	t.coverage = t.coverage[:n]
	clear(t.coverage)
	return t.coverage
}

// accumulate max-combines the stamp, weighted by opacity, into the canvas
// over r and returns the canvas clipped to r.
func (t *target) accumulate(st Stamp, r image.Rectangle, opacity float32) []float32 {
	cov := t.scratch(r)
	width := t.drawable.Bounds().Dx()
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := t.canvas[y*width:]
		for x := r.Min.X; x < r.Max.X; x++ {
			v := st.Mask.At(x-st.Origin.X, y-st.Origin.Y) * opacity
			if v > row[x] {
				row[x] = v
			}
			cov[i] = row[x]
			i++
		}
	}
	return cov
}

// weigh returns the stamp over r weighted by opacity.
func (t *target) weigh(st Stamp, r image.Rectangle, opacity float32) []float32 {
	cov := t.scratch(r)
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cov[i] = st.Mask.At(x-st.Origin.X, y-st.Origin.Y) * opacity
			i++
		}
	}
	return cov
}

// composite writes one painthit into every bound target.
//
// Under ApplyConstant the stamp is max-combined into the coverage canvas
// and the canvas is written over the pristine pixels, so overlapping
// painthits never exceed the opacity of one. Under ApplyIncremental the
// stamp is written over the current pixels and accumulates. It returns the
// union of written regions.
func composite(targets []*target, hit *Painthit, p Params, render RenderFunc) image.Rectangle {
	var dirty image.Rectangle
	opacity := float32(p.opacityAt(hit.Sample.Pressure))

	for _, t := range targets {
		r := hit.Rect().Intersect(t.drawable.Bounds())
		if r.Empty() {
			continue
		}

		t.paint.Reset(r)
		pt := &PaintTarget{
			Setup:    t.setup,
			Drawable: t.drawable,
			Paint:    &t.paint,
			Mode:     p.PaintMode,
			Pristine: t.undo,
		}
		if !render(pt) {
			continue
		}

		req := &ApplyRequest{
			Rect:    r,
			Paint:   &t.paint,
			Opacity: p.ImageOpacity,
			Mode:    pt.Mode,
		}
		if p.ApplyMode == ApplyConstant {
			req.Coverage = t.accumulate(hit.Stamp, r, opacity)
			req.Base = t.undo
		} else {
			req.Coverage = t.weigh(hit.Stamp, r, opacity)
		}
		t.drawable.ApplyRegion(req)
		dirty = dirty.Union(r)
	}
	return dirty
}
