package filter

// Plane is an interleaved float32 pixel buffer.
// Channels values are stored per pixel, rows are tightly packed.
type Plane struct {
	Width    int
	Height   int
	Channels int
	Pix      []float32
}

// NewPlane allocates a zeroed plane.
func NewPlane(width, height, channels int) *Plane {
	return &Plane{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]float32, width*height*channels),
	}
}

// Blur returns a Gaussian-blurred copy of src.
// Samples past the edges are clamped to the nearest edge pixel.
func Blur(src *Plane, radius float64) *Plane {
	dst := NewPlane(src.Width, src.Height, src.Channels)
	if radius <= 0 || src.Width == 0 || src.Height == 0 {
		copy(dst.Pix, src.Pix)
		return dst
	}

	kernel := CachedGaussianKernel(radius)
	tmp := NewPlane(src.Width, src.Height, src.Channels)
	convolve(src, tmp, kernel, 1, 0)
	convolve(tmp, dst, kernel, 0, 1)
	return dst
}

// Sharpen applies an unsharp mask: src + amount*(src - blur(src)).
// Results are clamped to [0, 1].
func Sharpen(src *Plane, radius, amount float64) *Plane {
	blurred := Blur(src, radius)
	a := float32(amount)
	for i, v := range src.Pix {
		s := v + a*(v-blurred.Pix[i])
		blurred.Pix[i] = min(max(s, 0), 1)
	}
	return blurred
}

// convolve runs one separable pass along (dx, dy).
func convolve(src, dst *Plane, kernel []float32, dx, dy int) {
	half := len(kernel) / 2
	ch := src.Channels
	for y := range src.Height {
		for x := range src.Width {
			out := (y*src.Width + x) * ch
			for c := range ch {
				var sum float32
				for k, w := range kernel {
					sx := clampInt(x+(k-half)*dx, 0, src.Width-1)
					sy := clampInt(y+(k-half)*dy, 0, src.Height-1)
					sum += w * src.Pix[(sy*src.Width+sx)*ch+c]
				}
				dst.Pix[out+c] = sum
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
