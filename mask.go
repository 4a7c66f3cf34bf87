package paintcore

import (
	"fmt"
	"image"
)

// Precision identifies the storage type of a Mask.
type Precision uint8

const (
	// PrecisionU8 stores coverage as uint8, 255 is full coverage.
	PrecisionU8 Precision = iota

	// PrecisionU16 stores coverage as uint16, 65535 is full coverage.
	// It is a storage precision only; brush mask kernels do not support it.
	PrecisionU16

	// PrecisionFloat stores coverage as float32, 1.0 is full coverage.
	PrecisionFloat
)

// String returns the precision name.
func (p Precision) String() string {
	switch p {
	case PrecisionU8:
		return "u8"
	case PrecisionU16:
		return "u16"
	case PrecisionFloat:
		return "float"
	default:
		return fmt.Sprintf("Precision(%d)", uint8(p))
	}
}

// Mask is a single-channel coverage buffer.
//
// Brush masks are owned by the brush and treated as read-only by the paint
// core. Only the slice matching the mask precision is allocated.
type Mask struct {
	width     int
	height    int
	precision Precision
	u8        []uint8
	u16       []uint16
	f32       []float32
}

// NewMask creates a zeroed mask with the given dimensions and precision.
func NewMask(width, height int, precision Precision) *Mask {
	width, height = max(width, 0), max(height, 0)
	m := &Mask{width: width, height: height, precision: precision}
	n := width * height
	switch precision {
	case PrecisionU16:
		m.u16 = make([]uint16, n)
	case PrecisionFloat:
		m.f32 = make([]float32, n)
	default:
		m.precision = PrecisionU8
		m.u8 = make([]uint8, n)
	}
	return m
}

// NewMaskU8 wraps 8-bit coverage data. len(data) must be width*height.
func NewMaskU8(width, height int, data []uint8) *Mask {
	return &Mask{width: width, height: height, precision: PrecisionU8, u8: data}
}

// NewMaskFloat wraps float coverage data. len(data) must be width*height.
func NewMaskFloat(width, height int, data []float32) *Mask {
	return &Mask{width: width, height: height, precision: PrecisionFloat, f32: data}
}

// NewMaskU16 wraps 16-bit coverage data. len(data) must be width*height.
func NewMaskU16(width, height int, data []uint16) *Mask {
	return &Mask{width: width, height: height, precision: PrecisionU16, u16: data}
}

// NewMaskFromAlpha creates an 8-bit mask from an image's alpha channel.
func NewMaskFromAlpha(img image.Image) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := NewMask(w, h, PrecisionU8)

	for y := range h {
		for x := range w {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			mask.u8[y*w+x] = uint8(a >> 8)
		}
	}

	return mask
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Precision returns the storage precision.
func (m *Mask) Precision() Precision { return m.precision }

// U8 returns the 8-bit data, or nil for other precisions.
func (m *Mask) U8() []uint8 { return m.u8 }

// U16 returns the 16-bit data, or nil for other precisions.
func (m *Mask) U16() []uint16 { return m.u16 }

// Float returns the float data, or nil for other precisions.
func (m *Mask) Float() []float32 { return m.f32 }

// At returns the coverage at (x, y) in [0, 1].
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) float32 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	i := y*m.width + x
	switch m.precision {
	case PrecisionU16:
		return float32(m.u16[i]) / 65535
	case PrecisionFloat:
		return m.f32[i]
	default:
		return float32(m.u8[i]) / 255
	}
}

// Set sets the coverage at (x, y), clamped to [0, 1].
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, v float32) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	v = min(max(v, 0), 1)
	i := y*m.width + x
	switch m.precision {
	case PrecisionU16:
		m.u16[i] = uint16(v*65535 + 0.5)
	case PrecisionFloat:
		m.f32[i] = v
	default:
		m.u8[i] = uint8(v*255 + 0.5)
	}
}

// IsEmpty reports whether the mask has no area or no non-zero texel.
func (m *Mask) IsEmpty() bool {
	for _, v := range m.u8 {
		if v != 0 {
			return false
		}
	}
	for _, v := range m.u16 {
		if v != 0 {
			return false
		}
	}
	for _, v := range m.f32 {
		if v != 0 {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	c := &Mask{width: m.width, height: m.height, precision: m.precision}
	if m.u8 != nil {
		c.u8 = append([]uint8(nil), m.u8...)
	}
	if m.u16 != nil {
		c.u16 = append([]uint16(nil), m.u16...)
	}
	if m.f32 != nil {
		c.f32 = append([]float32(nil), m.f32...)
	}
	return c
}
