package paintcore

import (
	"encoding/binary"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// scaleMask resamples src by scale about its center into a buffer one
// texel larger than src in each dimension, shifted by the sub-pixel offset
// (fx, fy). The buffer size does not depend on scale, so stamp placement
// stays the same while the brush shrinks.
func scaleMask(src *Mask, scale, fx, fy float64) *Mask {
	w, h := src.Width(), src.Height()
	cx, cy := float64(w)/2, float64(h)/2
	s2d := f64.Aff3{
		scale, 0, cx + fx - scale*cx,
		0, scale, cy + fy - scale*cy,
	}
	sr := image.Rect(0, 0, w, h)
	dr := image.Rect(0, 0, w+1, h+1)

	if src.Precision() == PrecisionFloat {
		s := image.NewGray16(sr)
		for i, v := range src.f32 {
			binary.BigEndian.PutUint16(s.Pix[2*i:], uint16(min(max(v, 0), 1)*65535+0.5))
		}
		d := image.NewGray16(dr)
		draw.BiLinear.Transform(d, s2d, s, sr, draw.Src, nil)

		out := make([]float32, dr.Dx()*dr.Dy())
		for i := range out {
			out[i] = float32(binary.BigEndian.Uint16(d.Pix[2*i:])) / 65535
		}
		return NewMaskFloat(dr.Dx(), dr.Dy(), out)
	}

	s := &image.Gray{Pix: src.u8, Stride: w, Rect: sr}
	d := image.NewGray(dr)
	draw.BiLinear.Transform(d, s2d, s, sr, draw.Src, nil)
	return NewMaskU8(dr.Dx(), dr.Dy(), d.Pix)
}
