// Package noise implements seeded 2D gradient noise for brush texture.
package noise

import (
	"math"
	"math/rand/v2"
)

// Field is a 2D gradient noise field. A Field is immutable once built and
// returns the same value for the same coordinates.
type Field struct {
	perm [512]uint8
}

// gradients are the 8 unit directions used at lattice points.
var gradients = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{math.Sqrt2 / 2, math.Sqrt2 / 2}, {-math.Sqrt2 / 2, math.Sqrt2 / 2},
	{math.Sqrt2 / 2, -math.Sqrt2 / 2}, {-math.Sqrt2 / 2, -math.Sqrt2 / 2},
}

// New builds a field whose lattice is shuffled by seed.
func New(seed uint64) *Field {
	f := &Field{}
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	for i := range f.perm {
		f.perm[i] = p[i&255]
	}
	return f
}

// At returns the noise value at (x, y), roughly in [-1, 1].
// Values at integer lattice points are 0.
func (f *Field) At(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	xi, yi := int(fx)&255, int(fy)&255
	dx, dy := x-fx, y-fy

	n00 := f.dot(xi, yi, dx, dy)
	n10 := f.dot(xi+1, yi, dx-1, dy)
	n01 := f.dot(xi, yi+1, dx, dy-1)
	n11 := f.dot(xi+1, yi+1, dx-1, dy-1)

	u, v := fade(dx), fade(dy)
	nx0 := n00 + u*(n10-n00)
	nx1 := n01 + u*(n11-n01)
	return (nx0 + v*(nx1-nx0)) * math.Sqrt2
}

func (f *Field) dot(xi, yi int, dx, dy float64) float64 {
	g := gradients[f.perm[int(f.perm[xi&255])+yi&255]&7]
	return g[0]*dx + g[1]*dy
}

// fade is the quintic interpolant 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Smoothstep maps x into [0, 1] with a Hermite ramp between edge0 and edge1.
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge1 <= edge0 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := min(max((x-edge0)/(edge1-edge0), 0), 1)
	return t * t * (3 - 2*t)
}
