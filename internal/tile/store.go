package tile

import "image"

// ReadFunc copies the pixels of r from the live drawable into dst,
// rows tightly packed (stride = r.Dx() * bpp).
type ReadFunc func(r image.Rectangle, dst []byte)

// WriteFunc copies src, rows tightly packed, into r of the live drawable.
type WriteFunc func(r image.Rectangle, src []byte)

// Store holds captured pre-stroke tiles for one drawable.
//
// Tiles are allocated lazily: nothing is allocated until EnsureCaptured
// first touches a tile. Once captured, a tile is never recaptured until
// Release.
type Store struct {
	width  int
	height int
	bpp    int

	tilesX int
	tilesY int

	// tiles is a flat row-major slice; nil entries are not captured.
	tiles    []*Tile
	captured bitmap
	bounds   image.Rectangle

	pool *Pool
}

// NewStore creates an empty store for a width x height drawable with bpp
// bytes per pixel.
func NewStore(width, height, bpp int) *Store {
	width, height = max(width, 0), max(height, 0)
	tilesX := (width + Width - 1) / Width
	tilesY := (height + Height - 1) / Height
	return &Store{
		width:    width,
		height:   height,
		bpp:      bpp,
		tilesX:   tilesX,
		tilesY:   tilesY,
		tiles:    make([]*Tile, tilesX*tilesY),
		captured: newBitmap(tilesX, tilesY),
		pool:     defaultPool,
	}
}

// Rect returns the full drawable rectangle covered by the store.
func (s *Store) Rect() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// BPP returns the bytes per pixel of captured data.
func (s *Store) BPP() int { return s.bpp }

// tileRange converts a pixel rectangle into an inclusive tile range.
func (s *Store) tileRange(r image.Rectangle) (tx1, ty1, tx2, ty2 int, ok bool) {
	r = r.Intersect(s.Rect())
	if r.Empty() {
		return 0, 0, 0, 0, false
	}
	return r.Min.X / Width, r.Min.Y / Height, (r.Max.X - 1) / Width, (r.Max.Y - 1) / Height, true
}

// tileRect returns the drawable-space rectangle of tile (tx, ty).
func (s *Store) tileRect(tx, ty int) image.Rectangle {
	x, y := tx*Width, ty*Height
	return image.Rect(x, y, min(x+Width, s.width), min(y+Height, s.height))
}

// EnsureCaptured copies every tile intersecting r that has not been captured
// yet, reading current content through read. It returns the number of tiles
// newly captured; calling it again over the same area returns 0.
func (s *Store) EnsureCaptured(r image.Rectangle, read ReadFunc) int {
	tx1, ty1, tx2, ty2, ok := s.tileRange(r)
	if !ok {
		return 0
	}

	n := 0
	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			if s.captured.isSet(tx, ty) {
				continue
			}
			tr := s.tileRect(tx, ty)
			t := s.pool.Get(tr.Dx(), tr.Dy(), s.bpp)
			t.X, t.Y = tx, ty
			read(tr, t.Data)

			s.tiles[ty*s.tilesX+tx] = t
			s.captured.set(tx, ty)
			s.bounds = s.bounds.Union(tr)
			n++
		}
	}
	return n
}

// IsCaptured reports whether tile (tx, ty) holds captured content.
func (s *Store) IsCaptured(tx, ty int) bool {
	return s.captured.isSet(tx, ty)
}

// TileAt returns the captured tile at tile coordinates, or nil.
func (s *Store) TileAt(tx, ty int) *Tile {
	if !s.captured.isSet(tx, ty) {
		return nil
	}
	return s.tiles[ty*s.tilesX+tx]
}

// Len returns the number of captured tiles.
func (s *Store) Len() int {
	return s.captured.count()
}

// ByteSize returns the number of bytes held by captured tiles.
func (s *Store) ByteSize() int {
	n := 0
	s.ForEach(func(t *Tile) { n += t.ByteSize() })
	return n
}

// Bounds returns the bounding box of all captured tiles.
// It is empty when nothing has been captured.
func (s *Store) Bounds() image.Rectangle {
	return s.bounds
}

// ForEach calls fn for each captured tile in row-major order.
func (s *Store) ForEach(fn func(t *Tile)) {
	for _, t := range s.tiles {
		if t != nil {
			fn(t)
		}
	}
}

// ReadRegion copies the pristine pixels of r into dst (stride = r.Dx()*bpp).
// Pixels of captured tiles come from the store; pixels of uncaptured tiles
// are read through live, which sees current drawable content.
func (s *Store) ReadRegion(r image.Rectangle, dst []byte, live ReadFunc) {
	if r.Empty() {
		return
	}
	stride := r.Dx() * s.bpp

	// Uncaptured areas are untouched by this stroke, so the live drawable
	// already holds their pristine content.
	if live != nil {
		live(r, dst)
	}

	tx1, ty1, tx2, ty2, ok := s.tileRange(r)
	if !ok {
		return
	}
	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			t := s.TileAt(tx, ty)
			if t == nil {
				continue
			}
			part := t.Rect().Intersect(r)
			rowBytes := part.Dx() * s.bpp
			for y := part.Min.Y; y < part.Max.Y; y++ {
				src := t.PixelOffset(part.Min.X, y)
				off := (y-r.Min.Y)*stride + (part.Min.X-r.Min.X)*s.bpp
				copy(dst[off:off+rowBytes], t.Data[src:src+rowBytes])
			}
		}
	}
}

// Swap exchanges the content of every captured tile with the live drawable.
// Calling Swap twice restores the original state, which is how undo and
// redo of one stroke are implemented.
func (s *Store) Swap(read ReadFunc, write WriteFunc) {
	var scratch []byte
	s.ForEach(func(t *Tile) {
		tr := t.Rect()
		if cap(scratch) < len(t.Data) {
			scratch = make([]byte, len(t.Data))
		}
		scratch = scratch[:len(t.Data)]
		read(tr, scratch)
		write(tr, t.Data)
		copy(t.Data, scratch)
	})
}

// Release returns all tiles to the pool and forgets captured state.
// The store may be reused for a new stroke afterwards.
func (s *Store) Release() {
	for i, t := range s.tiles {
		if t != nil {
			s.pool.Put(t)
			s.tiles[i] = nil
		}
	}
	s.captured.clear()
	s.bounds = image.Rectangle{}
}
