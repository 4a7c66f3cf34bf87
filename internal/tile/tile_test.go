package tile

import (
	"image"
	"testing"
)

func TestTileRect(t *testing.T) {
	tests := []struct {
		name string
		tile Tile
		want image.Rectangle
	}{
		{"first tile", Tile{X: 0, Y: 0, Width: 64, Height: 64}, image.Rect(0, 0, 64, 64)},
		{"second row", Tile{X: 0, Y: 1, Width: 64, Height: 64}, image.Rect(0, 64, 64, 128)},
		{"edge tile", Tile{X: 2, Y: 3, Width: 32, Height: 16}, image.Rect(128, 192, 160, 208)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tile.Rect(); got != tt.want {
				t.Errorf("Rect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTilePixelOffset(t *testing.T) {
	tl := Tile{X: 1, Y: 1, Width: 10, Height: 10, BPP: 4}
	if got := tl.PixelOffset(64, 64); got != 0 {
		t.Errorf("PixelOffset(64,64) = %d, want 0", got)
	}
	if got := tl.PixelOffset(66, 65); got != 10*4+2*4 {
		t.Errorf("PixelOffset(66,65) = %d, want %d", got, 48)
	}
	if got := tl.PixelOffset(63, 64); got != -1 {
		t.Errorf("PixelOffset(outside) = %d, want -1", got)
	}
}

func TestPoolReuse(t *testing.T) {
	p := NewPool()
	a := p.Get(64, 64, 4)
	if a == nil || len(a.Data) != 64*64*4 {
		t.Fatalf("Get(64,64,4) returned %v", a)
	}
	p.Put(a)
	b := p.Get(32, 128, 4) // same byte size
	if len(b.Data) != 64*64*4 || b.Width != 32 || b.Height != 128 {
		t.Errorf("Get(32,128,4) = %dx%d with %d bytes", b.Width, b.Height, len(b.Data))
	}
	if p.Get(0, 10, 4) != nil {
		t.Error("Get with zero width returned a tile")
	}
	p.Put(nil)
}
