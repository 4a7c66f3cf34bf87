package paintcore

import "image"

// Clone paints pixels copied from a source drawable.
//
// Offset is added to a target position to find the source position, so
// the source stays aligned with the stroke.
type Clone struct {
	Source Drawable
	Offset image.Point
}

// Name implements Tool.
func (c *Clone) Name() string { return "clone" }

// Motion implements Tool. Without a source nothing is painted.
func (c *Clone) Motion(s *Session, p Params) {
	if c.Source == nil {
		return
	}
	s.Paste(s.Painthit(p), p, c.render)
}

func (c *Clone) render(t *PaintTarget) bool {
	sr := t.Paint.Rect.Add(c.Offset).Intersect(c.Source.Bounds())
	if sr.Empty() {
		return false
	}
	src := ReadPaint(c.Source, c.Source.Format(), sr)
	for y := sr.Min.Y; y < sr.Max.Y; y++ {
		si := src.PixOffset(sr.Min.X, y)
		di := t.Paint.PixOffset(sr.Min.X-c.Offset.X, y-c.Offset.Y)
		copy(t.Paint.Pix[di:di+sr.Dx()*4], src.Pix[si:si+sr.Dx()*4])
	}
	return true
}
