package paintcore

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/gogpu/paintcore/internal/blend"
)

// Pixmap is an in-memory Drawable backed by a single pixel buffer.
// It serves tests and tools that do not bring their own tiled storage.
type Pixmap struct {
	width  int
	height int
	format Format
	data   []uint8

	previewInvalidations int
}

// NewPixmap creates a zeroed pixmap. Unknown formats fall back to FormatRGBA8.
func NewPixmap(width, height int, format Format) *Pixmap {
	if !format.IsValid() {
		format = FormatRGBA8
	}
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		format: format,
		data:   make([]uint8, width*height*format.BytesPerPixel()),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Bounds implements Drawable.
func (p *Pixmap) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// Format implements Drawable.
func (p *Pixmap) Format() Format { return p.format }

// Data returns the raw pixel data in the pixmap format.
func (p *Pixmap) Data() []uint8 { return p.data }

// Stride returns the row stride in bytes.
func (p *Pixmap) Stride() int { return p.width * p.format.BytesPerPixel() }

func (p *Pixmap) offset(x, y int) int {
	return y*p.Stride() + x*p.format.BytesPerPixel()
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	pc := c.Premultiply()
	i := p.offset(x, y)
	p.format.encode(p.data[i:], to8(pc.R), to8(pc.G), to8(pc.B), to8(pc.A))
}

// GetPixel returns the straight-alpha color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	r, g, b, a := p.format.decode(p.data[p.offset(x, y):])
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}.Unpremultiply()
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	bpp := p.format.BytesPerPixel()
	if len(p.data) == 0 {
		return
	}
	p.SetPixel(0, 0, c)
	for i := bpp; i < len(p.data); i += bpp {
		copy(p.data[i:i+bpp], p.data[:bpp])
	}
}

// ReadRegion implements PixelSource.
func (p *Pixmap) ReadRegion(r image.Rectangle, dst []byte) {
	r = r.Intersect(p.Bounds())
	rowBytes := r.Dx() * p.format.BytesPerPixel()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		src := p.offset(r.Min.X, y)
		copy(dst[(y-r.Min.Y)*rowBytes:], p.data[src:src+rowBytes])
	}
}

// WriteRegion implements Drawable.
func (p *Pixmap) WriteRegion(r image.Rectangle, src []byte) {
	r = r.Intersect(p.Bounds())
	rowBytes := r.Dx() * p.format.BytesPerPixel()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst := p.offset(r.Min.X, y)
		copy(p.data[dst:dst+rowBytes], src[(y-r.Min.Y)*rowBytes:])
	}
}

// ApplyRegion implements Drawable.
//
// Each pixel of req.Rect is blended in premultiplied RGBA8 space with the
// paint scaled by coverage*opacity, over either the current pixel or the
// matching pixel of req.Base.
func (p *Pixmap) ApplyRegion(req *ApplyRequest) {
	r := req.Rect.Intersect(p.Bounds())
	if r.Empty() || req.Paint == nil {
		return
	}
	bpp := p.format.BytesPerPixel()

	var base []byte
	if req.Base != nil {
		base = make([]byte, r.Dx()*r.Dy()*bpp)
		req.Base.ReadRegion(r, base)
	}

	fn := blend.FuncFor(req.Mode)
	opacity := clamp01(req.Opacity)
	covStride := req.Rect.Dx()

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst := p.data[p.offset(x, y):]
			bottom := dst
			if base != nil {
				bottom = base[((y-r.Min.Y)*r.Dx()+(x-r.Min.X))*bpp:]
			}

			cov := float64(req.Coverage[(y-req.Rect.Min.Y)*covStride+(x-req.Rect.Min.X)])
			t := byte(math.Round(clamp01(cov*opacity) * 255))
			if t == 0 {
				if base != nil {
					copy(dst[:bpp], bottom[:bpp])
				}
				continue
			}

			dr, dg, db, da := p.format.decode(bottom)
			pi := req.Paint.PixOffset(x, y)
			if pi < 0 {
				continue
			}
			sr, sg, sb, sa := req.Paint.Pix[pi], req.Paint.Pix[pi+1], req.Paint.Pix[pi+2], req.Paint.Pix[pi+3]

			var or, og, ob, oa byte
			if req.Mode == PaintReplace {
				or, og, ob, oa = blend.Replace(sr, sg, sb, sa, dr, dg, db, da, t)
			} else {
				or, og, ob, oa = fn(mul255(sr, t), mul255(sg, t), mul255(sb, t), mul255(sa, t), dr, dg, db, da)
			}
			p.format.encode(dst, or, og, ob, oa)
		}
	}
}

// InvalidatePreview implements PreviewInvalidator.
func (p *Pixmap) InvalidatePreview() {
	p.previewInvalidations++
}

// PreviewInvalidations returns how many times the preview was invalidated.
func (p *Pixmap) PreviewInvalidations() int {
	return p.previewInvalidations
}

// Clone creates a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height, p.format)
	copy(c.data, p.data)
	return c
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	bpp := p.format.BytesPerPixel()
	for i, j := 0, 0; j < len(p.data); i, j = i+4, j+bpp {
		r, g, b, a := p.format.decode(p.data[j:])
		FormatRGBA8.encode(img.Pix[i:], r, g, b, a)
	}
	return img
}

// FromImage creates an RGBA8 pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy(), FormatRGBA8)
	for y := range pm.height {
		for x := range pm.width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := pm.offset(x, y)
			pm.data[i+0], pm.data[i+1], pm.data[i+2], pm.data[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}
