package paintcore

import (
	"image"

	"github.com/gogpu/paintcore/internal/noise"
)

// applyNoise multiplies coverage by a smoothstepped noise texture.
//
// The texture is sampled in drawable space, rotated and offset per stroke,
// so it stays fixed under the brush as the stroke moves. src is not
// modified; the result is a fresh buffer of the same precision.
func (p *maskPipeline) applyNoise(src *Mask, origin image.Point, np NoiseParams) *Mask {
	if p.field == nil {
		p.field = noise.New(0)
		p.noiseCos = 1
	}
	out := NewMask(src.Width(), src.Height(), src.Precision())
	edge0 := np.StepStart
	edge1 := np.StepStart + np.StepWidth

	for y := range src.Height() {
		py := float64(origin.Y+y) + 0.5
		for x := range src.Width() {
			v := src.At(x, y)
			if v == 0 {
				continue
			}
			px := float64(origin.X+x) + 0.5
			u := (px*p.noiseCos-py*p.noiseSin)*np.Frequency + p.noiseOX
			w := (px*p.noiseSin+py*p.noiseCos)*np.Frequency + p.noiseOY
			n := (p.field.At(u, w) + 1) / 2
			out.Set(x, y, v*float32(noise.Smoothstep(edge0, edge1, n)))
		}
	}
	return out
}
