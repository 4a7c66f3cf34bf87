package filter

import (
	"math"

	"github.com/gogpu/paintcore/internal/cache"
)

// GaussianKernel returns a normalized 1D Gaussian kernel with sigma equal
// to radius, truncated at three sigma. A non-positive radius yields the
// identity kernel.
func GaussianKernel(radius float64) []float32 {
	n := KernelSize(radius)
	if n == 1 {
		return []float32{1}
	}

	half := n / 2
	weights := make([]float64, n)
	var total float64
	for i := range weights {
		d := float64(i - half)
		weights[i] = math.Exp(-d * d / (2 * radius * radius))
		total += weights[i]
	}

	k := make([]float32, n)
	for i, w := range weights {
		k[i] = float32(w / total)
	}
	return k
}

// kernels caches Gaussian kernels keyed by radius quantized to 0.01 px.
var kernels = cache.New[int, []float32](64)

// CachedGaussianKernel returns a shared Gaussian kernel for the radius.
// Callers must not modify the returned slice.
func CachedGaussianKernel(radius float64) []float32 {
	key := int(math.Round(radius * 100))
	return kernels.GetOrCreate(key, func() []float32 {
		return GaussianKernel(radius)
	})
}

// KernelSize returns the size of the Gaussian kernel for a radius.
func KernelSize(radius float64) int {
	if radius <= 0 {
		return 1
	}
	return int(math.Ceil(radius*3))*2 + 1
}
