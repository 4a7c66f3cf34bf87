// Package tile provides the lazily allocated, tile-granular store that holds
// pre-stroke pixel content for undo.
//
// A drawable is divided into 64x64 pixel tiles. A tile's pixels are copied
// into the store the first time a painthit touches it during a stroke and
// are never recaptured afterwards, so the store always holds the content as
// it was before the stroke began.
//
// Thread safety: Store is NOT thread-safe. A store belongs to one stroke.
package tile

import "image"

// Tile size constants.
const (
	// Width is the width of a tile in pixels.
	Width = 64

	// Height is the height of a tile in pixels.
	Height = 64
)

// Tile holds the captured pixels of one tile-sized region.
//
// Edge tiles may have smaller dimensions when the drawable is not evenly
// divisible by the tile size.
type Tile struct {
	// X is the tile column index (0-based).
	X int

	// Y is the tile row index (0-based).
	Y int

	// Width is the actual width in pixels (may be < tile.Width for edge tiles).
	Width int

	// Height is the actual height in pixels (may be < tile.Height for edge tiles).
	Height int

	// BPP is the number of bytes per pixel.
	BPP int

	// Data contains the captured pixel bytes, rows tightly packed.
	// Length is Width * Height * BPP bytes.
	Data []byte
}

// Rect returns the pixel bounds of this tile in drawable space.
func (t *Tile) Rect() image.Rectangle {
	x, y := t.X*Width, t.Y*Height
	return image.Rect(x, y, x+t.Width, y+t.Height)
}

// Stride returns the row stride in bytes.
func (t *Tile) Stride() int {
	return t.Width * t.BPP
}

// PixelOffset returns the byte offset into Data for a drawable-space pixel,
// or -1 if the pixel is not within this tile.
func (t *Tile) PixelOffset(x, y int) int {
	px := x - t.X*Width
	py := y - t.Y*Height
	if px < 0 || px >= t.Width || py < 0 || py >= t.Height {
		return -1
	}
	return py*t.Stride() + px*t.BPP
}

// ByteSize returns the size of the tile data in bytes.
func (t *Tile) ByteSize() int {
	return len(t.Data)
}
