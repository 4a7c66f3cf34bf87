package paintcore

import "math"

// Brush supplies the canonical coverage mask stamped at every painthit.
//
// The paint core holds a read-only reference to the mask for the duration
// of a stroke and never mutates it.
type Brush interface {
	// Mask returns the canonical coverage mask.
	Mask() *Mask

	// Spacing returns the distance between painthits as a percentage of
	// the larger mask dimension.
	Spacing() float64
}

// BrushProvider hands out the brush active at stroke start.
// It may return nil when no brush is available.
type BrushProvider interface {
	ActiveBrush() Brush
}

// BrushProviderFunc adapts a function to BrushProvider.
type BrushProviderFunc func() Brush

// ActiveBrush implements BrushProvider.
func (f BrushProviderFunc) ActiveBrush() Brush { return f() }

// StaticBrush returns a provider that always hands out b.
func StaticBrush(b Brush) BrushProvider {
	return BrushProviderFunc(func() Brush { return b })
}

// DefaultBrushSpacing is the spacing of generated brushes, in percent.
const DefaultBrushSpacing = 10.0

// MaskBrush is a Brush backed by a fixed mask.
type MaskBrush struct {
	mask    *Mask
	spacing float64
}

// NewMaskBrush creates a brush from a mask and a spacing percentage.
func NewMaskBrush(mask *Mask, spacing float64) *MaskBrush {
	return &MaskBrush{mask: mask, spacing: spacing}
}

// Mask implements Brush.
func (b *MaskBrush) Mask() *Mask { return b.mask }

// Spacing implements Brush.
func (b *MaskBrush) Spacing() float64 { return b.spacing }

// NewCircleBrush generates a round 8-bit brush.
//
// Texels within radius*hardness of the center have full coverage; coverage
// then falls off smoothly to zero at radius. hardness is clamped to [0, 1].
func NewCircleBrush(radius, hardness float64) *MaskBrush {
	radius = math.Max(radius, 0.5)
	hardness = clamp01(hardness)

	size := 2*int(math.Ceil(radius)) + 1
	c := float64(size / 2)
	inner := radius * hardness
	m := NewMask(size, size, PrecisionU8)

	for y := range size {
		for x := range size {
			d := math.Hypot(float64(x)-c, float64(y)-c)
			var v float64
			switch {
			case d <= inner:
				v = 1
			case d < radius:
				s := (d - inner) / (radius - inner)
				v = 1 - s*s*(3-2*s)
			}
			m.u8[y*size+x] = uint8(math.Round(v * 255))
		}
	}
	return &MaskBrush{mask: m, spacing: DefaultBrushSpacing}
}

// WithSpacing returns a copy of the brush sharing its mask with a different
// spacing.
func (b *MaskBrush) WithSpacing(spacing float64) *MaskBrush {
	return &MaskBrush{mask: b.mask, spacing: spacing}
}
