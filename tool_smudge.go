package paintcore

import (
	"image"
	"math"
)

// Smudge drags colors along the stroke.
//
// Each target keeps an accumulator the size of the painthit. The first
// painthit only picks up color; every later one blends the accumulator
// with the pixels under the brush and lays it down.
type Smudge struct {
	// Rate is how much picked-up color is kept per painthit, in [0, 1].
	Rate float64

	accum [2]*smudgeAccum
}

type smudgeAccum struct {
	size image.Point
	pix  []float32
}

// NewSmudge creates a smudge tool with a moderate rate.
func NewSmudge() *Smudge {
	return &Smudge{Rate: 0.5}
}

// Name implements Tool.
func (sm *Smudge) Name() string { return "smudge" }

// Start implements ToolStarter.
func (sm *Smudge) Start(*Session, Params) { sm.accum = [2]*smudgeAccum{} }

// Stop implements ToolStopper.
func (sm *Smudge) Stop(*Session) { sm.accum = [2]*smudgeAccum{} }

// Motion implements Tool.
func (sm *Smudge) Motion(s *Session, p Params) {
	hit := s.Painthit(p)
	if hit == nil {
		return
	}
	p.ApplyMode = ApplyIncremental
	rect := hit.Rect()
	s.Paste(hit, p, func(t *PaintTarget) bool {
		t.Mode = PaintReplace
		return sm.render(t, rect)
	})
}

func (sm *Smudge) render(t *PaintTarget, rect image.Rectangle) bool {
	cur := ReadPaint(t.Drawable, t.Drawable.Format(), t.Paint.Rect)
	a := sm.accum[t.Setup]
	if a == nil || a.size != rect.Size() {
		a = &smudgeAccum{size: rect.Size(), pix: make([]float32, rect.Dx()*rect.Dy()*4)}
		sm.accum[t.Setup] = a
		a.blend(cur, rect, 0)
		return false
	}

	a.blend(cur, rect, float32(clamp01(sm.Rate)))
	r := t.Paint.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			ai := ((y-rect.Min.Y)*a.size.X + (x - rect.Min.X)) * 4
			pi := t.Paint.PixOffset(x, y)
			for ch := range 4 {
				t.Paint.Pix[pi+ch] = uint8(math.Round(float64(a.pix[ai+ch]) * 255))
			}
		}
	}
	return true
}

// blend sets accum = accum*rate + cur*(1-rate) where cur covers it.
// rect positions the accumulator in drawable space.
func (a *smudgeAccum) blend(cur *PaintBuffer, rect image.Rectangle, rate float32) {
	r := cur.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			ai := ((y-rect.Min.Y)*a.size.X + (x - rect.Min.X)) * 4
			ci := cur.PixOffset(x, y)
			for ch := range 4 {
				c := float32(cur.Pix[ci+ch]) / 255
				a.pix[ai+ch] = a.pix[ai+ch]*rate + c*(1-rate)
			}
		}
	}
}
