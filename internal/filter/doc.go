// Package filter provides the convolution kernels used by the convolve
// tool: a separable Gaussian blur and an unsharp-mask sharpen over
// interleaved float32 planes.
package filter
