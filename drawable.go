package paintcore

import "image"

// PixelSource reads pixels in the pixel format of the drawable it serves.
type PixelSource interface {
	// ReadRegion copies the pixels of r into dst, rows tightly packed
	// (stride = r.Dx() * bytes per pixel). r lies within the drawable bounds.
	ReadRegion(r image.Rectangle, dst []byte)
}

// Drawable is a paintable target such as a layer or a channel.
//
// The paint core never touches pixel storage directly: it reads regions,
// restores them for undo and writes painthits through ApplyRegion.
// A drawable is used by one stroke at a time.
type Drawable interface {
	PixelSource

	// Bounds returns the drawable extent. Min is always (0, 0).
	Bounds() image.Rectangle

	// Format returns the pixel format tag.
	Format() Format

	// WriteRegion replaces the pixels of r with src, rows tightly packed.
	WriteRegion(r image.Rectangle, src []byte)

	// ApplyRegion blends a painthit into the drawable.
	ApplyRegion(req *ApplyRequest)
}

// PreviewInvalidator is implemented by drawables that keep a preview
// (thumbnail, projection) which must be refreshed after a stroke.
type PreviewInvalidator interface {
	InvalidatePreview()
}

// ApplyRequest describes one painthit write.
type ApplyRequest struct {
	// Rect is the region to write, already clipped to the drawable bounds.
	Rect image.Rectangle

	// Paint holds premultiplied paint for Rect.
	Paint *PaintBuffer

	// Coverage holds one value in [0, 1] per pixel of Rect, row-major.
	Coverage []float32

	// Opacity scales Coverage.
	Opacity float64

	// Mode selects the blend arithmetic.
	Mode PaintMode

	// Base supplies the previous contents to blend over. When nil the
	// current drawable contents are used, so repeated writes accumulate.
	Base PixelSource
}

// PaintBuffer is a premultiplied RGBA8 buffer covering a drawable region.
type PaintBuffer struct {
	// Rect is the drawable-space region covered by the buffer.
	Rect image.Rectangle

	// Pix holds 4 bytes per pixel, rows tightly packed.
	Pix []byte
}

// NewPaintBuffer allocates a transparent buffer for r.
func NewPaintBuffer(r image.Rectangle) *PaintBuffer {
	b := &PaintBuffer{}
	b.Reset(r)
	return b
}

// Reset resizes the buffer to r, reusing storage, and clears it.
func (b *PaintBuffer) Reset(r image.Rectangle) {
	n := r.Dx() * r.Dy() * 4
	if cap(b.Pix) < n {
		b.Pix = make([]byte, n)
	} else {
		b.Pix = b.Pix[:n]
		clear(b.Pix)
	}
	b.Rect = r
}

// Stride returns the row stride in bytes.
func (b *PaintBuffer) Stride() int { return b.Rect.Dx() * 4 }

// PixOffset returns the byte offset of drawable pixel (x, y), or -1 if the
// pixel is outside the buffer.
func (b *PaintBuffer) PixOffset(x, y int) int {
	if !(image.Point{X: x, Y: y}).In(b.Rect) {
		return -1
	}
	return (y-b.Rect.Min.Y)*b.Stride() + (x-b.Rect.Min.X)*4
}

// Fill sets every pixel to c.
func (b *PaintBuffer) Fill(c RGBA) {
	p := c.Premultiply()
	r, g, bl, a := to8(p.R), to8(p.G), to8(p.B), to8(p.A)
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i+0] = r
		b.Pix[i+1] = g
		b.Pix[i+2] = bl
		b.Pix[i+3] = a
	}
}

// At returns the straight-alpha color at drawable pixel (x, y).
func (b *PaintBuffer) At(x, y int) RGBA {
	i := b.PixOffset(x, y)
	if i < 0 {
		return Transparent
	}
	return RGBA{
		R: float64(b.Pix[i+0]) / 255,
		G: float64(b.Pix[i+1]) / 255,
		B: float64(b.Pix[i+2]) / 255,
		A: float64(b.Pix[i+3]) / 255,
	}.Unpremultiply()
}

// Load decodes src, laid out like a ReadRegion result for the buffer's
// Rect in format f, into the buffer.
func (b *PaintBuffer) Load(f Format, src []byte) {
	bpp := f.BytesPerPixel()
	for i, j := 0, 0; i < len(b.Pix); i, j = i+4, j+bpp {
		b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = f.decode(src[j : j+bpp])
	}
}

// ReadPaint reads r from src, stored in format f, as premultiplied paint.
func ReadPaint(src PixelSource, f Format, r image.Rectangle) *PaintBuffer {
	raw := make([]byte, r.Dx()*r.Dy()*f.BytesPerPixel())
	src.ReadRegion(r, raw)
	b := NewPaintBuffer(r)
	b.Load(f, raw)
	return b
}
