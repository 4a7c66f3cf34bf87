package paintcore

import (
	"math"

	"github.com/gogpu/paintcore/internal/filter"
)

// ConvolveType selects what Convolve does.
type ConvolveType uint8

const (
	// ConvolveBlur softens pixels with a Gaussian blur.
	ConvolveBlur ConvolveType = iota

	// ConvolveSharpen boosts local contrast with an unsharp mask.
	ConvolveSharpen
)

// Convolve blurs or sharpens pixels under the brush.
type Convolve struct {
	Type ConvolveType

	// Rate is the strength of each painthit, in [0, 1].
	Rate float64

	// Radius is the Gaussian radius in pixels.
	Radius float64
}

// NewConvolve creates a convolve tool of the given type.
func NewConvolve(typ ConvolveType) *Convolve {
	return &Convolve{Type: typ, Rate: 0.5, Radius: 1}
}

// Name implements Tool.
func (c *Convolve) Name() string { return "convolve" }

// Motion implements Tool.
func (c *Convolve) Motion(s *Session, p Params) {
	p.ApplyMode = ApplyIncremental
	p.BrushOpacity *= clamp01(c.Rate)
	s.Paste(s.Painthit(p), p, func(t *PaintTarget) bool {
		t.Mode = PaintReplace
		c.render(t)
		return true
	})
}

// render filters the target region. Pixels are read with a margin so the
// kernel sees real neighbours inside the drawable.
func (c *Convolve) render(t *PaintTarget) {
	margin := filter.KernelSize(c.Radius) / 2
	src := t.Paint.Rect.Inset(-margin).Intersect(t.Drawable.Bounds())
	in := ReadPaint(t.Drawable, t.Drawable.Format(), src)

	plane := filter.NewPlane(src.Dx(), src.Dy(), 4)
	for i, v := range in.Pix {
		plane.Pix[i] = float32(v) / 255
	}

	var out *filter.Plane
	if c.Type == ConvolveSharpen {
		out = filter.Sharpen(plane, c.Radius, 1)
	} else {
		out = filter.Blur(plane, c.Radius)
	}

	r := t.Paint.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			di := t.Paint.PixOffset(x, y)
			si := ((y-src.Min.Y)*src.Dx() + (x - src.Min.X)) * 4
			a := out.Pix[si+3]
			for ch := range 4 {
				// Premultiplied color never exceeds alpha.
				v := min(out.Pix[si+ch], a)
				if ch == 3 {
					v = a
				}
				t.Paint.Pix[di+ch] = uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
			}
		}
	}
}
