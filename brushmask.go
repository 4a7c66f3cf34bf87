package paintcore

import (
	"image"
	"math"
	"math/rand/v2"

	"github.com/gogpu/paintcore/internal/noise"
)

// Stamp is a brush mask placed in drawable space for one painthit.
type Stamp struct {
	Mask   *Mask
	Origin image.Point
}

// Rect returns the drawable-space rectangle covered by the stamp.
func (s Stamp) Rect() image.Rectangle {
	return s.Mask.Bounds().Add(s.Origin)
}

// maskPipeline turns the canonical brush mask into the stamp for one
// painthit: scale, subsample, solidify and noise, each stage optional.
//
// Every product is a fresh buffer except the unscaled solidified mask,
// which is kept for the rest of the stroke while noise is off. The
// canonical mask is never written.
type maskPipeline struct {
	solid map[*Mask]*Mask

	field              *noise.Field
	noiseOX, noiseOY   float64
	noiseSin, noiseCos float64

	warned bool
}

// begin prepares per-stroke state. The noise texture gets a random offset
// and rotation so consecutive strokes do not repeat it.
func (p *maskPipeline) begin(rng *rand.Rand) {
	p.clear()
	p.field = noise.New(rng.Uint64())
	p.noiseOX = rng.Float64() * 256
	p.noiseOY = rng.Float64() * 256
	p.noiseSin, p.noiseCos = math.Sincos(rng.Float64() * 2 * math.Pi)
}

// clear drops every per-stroke cache.
func (p *maskPipeline) clear() {
	clear(p.solid)
	p.warned = false
}

// placement is where and how large a stamp lands, known before any mask
// is computed so undo tiles can be captured first.
type placement struct {
	origin image.Point
	size   image.Point
	fx, fy float64
	scaled bool
}

// rect returns the drawable-space rectangle of the stamp.
func (pl placement) rect() image.Rectangle {
	return image.Rectangle{Min: pl.origin, Max: pl.origin.Add(pl.size)}
}

// place positions src centered at (x, y). Hard and exact stamps snap to
// the nearest pixel; soft and scaled stamps grow by one texel to hold the
// sub-pixel shift.
func place(src *Mask, x, y, scale float64, hardness Hardness) placement {
	w, h := src.Width(), src.Height()
	ix, iy := math.Floor(x), math.Floor(y)
	fx, fy := x-ix, y-iy
	if hardness != HardnessSoft {
		if fx >= 0.5 {
			ix++
		}
		if fy >= 0.5 {
			iy++
		}
		fx, fy = 0, 0
	}

	pl := placement{
		origin: image.Pt(int(ix)-w/2, int(iy)-h/2),
		size:   image.Pt(w, h),
		fx:     fx,
		fy:     fy,
		scaled: math.Abs(scale-1) > 1e-6,
	}
	if kernelSupported(src.Precision()) && (pl.scaled || hardness == HardnessSoft) {
		pl.size = image.Pt(w+1, h+1)
	}
	return pl
}

// stamp computes the stamp centered at (x, y) with the brush scaled by scale.
func (p *maskPipeline) stamp(src *Mask, x, y, scale float64, params Params) Stamp {
	pl := place(src, x, y, scale, params.Hardness)
	origin, fx, fy, scaled := pl.origin, pl.fx, pl.fy, pl.scaled

	if !kernelSupported(src.Precision()) {
		if !p.warned {
			Logger().Warn("paintcore: brush mask precision not supported, stamping unmodified",
				"precision", src.Precision())
			p.warned = true
		}
		return Stamp{Mask: src.Clone(), Origin: origin}
	}

	hard := params.Hardness == HardnessHard

	var m *Mask
	switch {
	case hard && !params.Noise && !scaled:
		m = p.cachedSolid(src)
	case scaled:
		m = scaleMask(src, scale, fx, fy)
		if hard {
			m = solidify(m)
		}
	case hard:
		m = solidify(src)
	case params.Hardness == HardnessSoft:
		m = subsample(src, fx, fy)
	default:
		m = src
	}

	if params.Noise {
		m = p.applyNoise(m, origin, params.NoiseParams)
	}
	return Stamp{Mask: m, Origin: origin}
}

// cachedSolid returns the solidified unscaled mask, building it once per
// stroke. Scaled masks change with pressure on nearly every painthit and
// are built fresh instead, so the cache holds one entry per brush.
func (p *maskPipeline) cachedSolid(src *Mask) *Mask {
	if m, ok := p.solid[src]; ok {
		return m
	}
	m := solidify(src)
	if p.solid == nil {
		p.solid = make(map[*Mask]*Mask)
	}
	p.solid[src] = m
	return m
}

func kernelSupported(prec Precision) bool {
	return prec == PrecisionU8 || prec == PrecisionFloat
}

// subsample shifts src by a sub-pixel offset, spreading each texel over
// its 2x2 destination neighbourhood. The result is one texel larger in
// each dimension.
func subsample(src *Mask, fx, fy float64) *Mask {
	w, h := src.Width(), src.Height()
	stride := w + 1
	acc := make([]float32, stride*(h+1))

	w00 := float32((1 - fx) * (1 - fy))
	w10 := float32(fx * (1 - fy))
	w01 := float32((1 - fx) * fy)
	w11 := float32(fx * fy)

	for y := range h {
		for x := range w {
			v := src.At(x, y)
			if v == 0 {
				continue
			}
			i := y*stride + x
			acc[i] += v * w00
			acc[i+1] += v * w10
			acc[i+stride] += v * w01
			acc[i+stride+1] += v * w11
		}
	}

	if src.Precision() == PrecisionFloat {
		return NewMaskFloat(stride, h+1, acc)
	}
	out := NewMask(stride, h+1, PrecisionU8)
	for i, v := range acc {
		out.u8[i] = uint8(min(v*255+0.5, 255))
	}
	return out
}

// solidify returns a copy of src with every non-zero texel at full coverage.
func solidify(src *Mask) *Mask {
	out := NewMask(src.Width(), src.Height(), src.Precision())
	switch src.Precision() {
	case PrecisionFloat:
		solidifyData(out.f32, src.f32, 1)
	default:
		solidifyData(out.u8, src.u8, 255)
	}
	return out
}

func solidifyData[T uint8 | float32](dst, src []T, full T) {
	for i, v := range src {
		if v != 0 {
			dst[i] = full
		}
	}
}
