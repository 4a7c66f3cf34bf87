package paintcore

import "fmt"

// Format represents the pixel storage format of a drawable.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale without alpha (1 byte per pixel).
	// Typical for channels and masks.
	FormatGray8 Format = iota

	// FormatGrayA8 is 8-bit grayscale with straight alpha (2 bytes per pixel).
	FormatGrayA8

	// FormatRGBA8 is 32-bit RGBA with straight alpha (4 bytes per pixel).
	FormatRGBA8

	// FormatRGBAPremul is 32-bit RGBA with premultiplied alpha (4 bytes per pixel).
	FormatRGBAPremul

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Name is the lowercase format name.
	Name string

	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// IsPremultiplied indicates if alpha is premultiplied.
	IsPremultiplied bool

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8:      {Name: "gray8", BytesPerPixel: 1, IsGrayscale: true},
	FormatGrayA8:     {Name: "graya8", BytesPerPixel: 2, HasAlpha: true, IsGrayscale: true},
	FormatRGBA8:      {Name: "rgba8", BytesPerPixel: 4, HasAlpha: true},
	FormatRGBAPremul: {Name: "rgba8-premul", BytesPerPixel: 4, HasAlpha: true, IsPremultiplied: true},
}

// Info returns the FormatInfo for this format.
// Unknown formats return a zero FormatInfo.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel.
func (f Format) BytesPerPixel() int { return f.Info().BytesPerPixel }

// HasAlpha reports whether the format has an alpha channel.
func (f Format) HasAlpha() bool { return f.Info().HasAlpha }

// IsPremultiplied reports whether color channels are premultiplied by alpha.
func (f Format) IsPremultiplied() bool { return f.Info().IsPremultiplied }

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool { return f < formatCount }

// String returns the format name.
func (f Format) String() string {
	if f >= formatCount {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formatInfoTable[f].Name
}

// ParseFormat looks a format up by name.
func ParseFormat(name string) (Format, error) {
	for f := range formatCount {
		if formatInfoTable[f].Name == name {
			return f, nil
		}
	}
	return FormatRGBA8, fmt.Errorf("paintcore: unknown format %q", name)
}

// decode reads one pixel in this format as premultiplied RGBA.
func (f Format) decode(px []byte) (r, g, b, a byte) {
	switch f {
	case FormatGray8:
		return px[0], px[0], px[0], 255
	case FormatGrayA8:
		v := mul255(px[0], px[1])
		return v, v, v, px[1]
	case FormatRGBA8:
		a = px[3]
		return mul255(px[0], a), mul255(px[1], a), mul255(px[2], a), a
	default:
		return px[0], px[1], px[2], px[3]
	}
}

// encode writes one premultiplied RGBA pixel in this format.
// Formats without alpha store the color as composited over black.
func (f Format) encode(px []byte, r, g, b, a byte) {
	switch f {
	case FormatGray8:
		px[0] = luma8(r, g, b)
	case FormatGrayA8:
		px[0] = unmul255(luma8(r, g, b), a)
		px[1] = a
	case FormatRGBA8:
		px[0] = unmul255(r, a)
		px[1] = unmul255(g, a)
		px[2] = unmul255(b, a)
		px[3] = a
	default:
		px[0], px[1], px[2], px[3] = r, g, b, a
	}
}

// mul255 returns round(c * a / 255).
func mul255(c, a byte) byte {
	x := uint32(c)*uint32(a) + 128
	return byte((x + x>>8) >> 8)
}

// unmul255 recovers a straight channel from a premultiplied one.
func unmul255(c, a byte) byte {
	if a == 0 {
		return 0
	}
	if c >= a {
		return 255
	}
	return byte((uint32(c)*255 + uint32(a)/2) / uint32(a))
}

// luma8 returns the Rec. 601 luma of an 8-bit color.
func luma8(r, g, b byte) byte {
	return byte((299*uint32(r) + 587*uint32(g) + 114*uint32(b) + 500) / 1000)
}
