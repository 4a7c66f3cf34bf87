// Package cache provides a small generic LRU cache for derived data that
// is expensive to rebuild and safe to share, such as convolution kernels.
//
//	kernels := cache.New[int, []float32](64)
//	k := kernels.GetOrCreate(150, func() []float32 { return build(1.5) })
//
// Cache is safe for concurrent use.
package cache
