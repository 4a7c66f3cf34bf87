package paintcore

import (
	"image"

	"github.com/gogpu/paintcore/internal/tile"
)

// UndoStore captures the pre-stroke content of one drawable, tile by tile.
//
// A tile is copied the first time a painthit touches it and is never
// recaptured during the stroke, so the store always serves the drawable
// as it was before the stroke began.
type UndoStore struct {
	drawable Drawable
	tiles    *tile.Store
}

// NewUndoStore creates an empty store sized to d.
func NewUndoStore(d Drawable) *UndoStore {
	b := d.Bounds()
	return &UndoStore{
		drawable: d,
		tiles:    tile.NewStore(b.Dx(), b.Dy(), d.Format().BytesPerPixel()),
	}
}

// Drawable returns the drawable the store captures.
func (u *UndoStore) Drawable() Drawable { return u.drawable }

// EnsureCaptured captures every tile intersecting r that was not captured
// yet and returns how many were. Repeated calls over the same area are
// no-ops.
func (u *UndoStore) EnsureCaptured(r image.Rectangle) int {
	return u.tiles.EnsureCaptured(r, u.drawable.ReadRegion)
}

// ReadRegion implements PixelSource, serving pre-stroke pixels: captured
// tiles from the store, everything else from the drawable.
func (u *UndoStore) ReadRegion(r image.Rectangle, dst []byte) {
	u.tiles.ReadRegion(r, dst, u.drawable.ReadRegion)
}

// IsEmpty reports whether nothing has been captured.
func (u *UndoStore) IsEmpty() bool { return u.tiles.Len() == 0 }

// Bounds returns the bounding box of the captured tiles.
func (u *UndoStore) Bounds() image.Rectangle { return u.tiles.Bounds() }

// TileCount returns the number of captured tiles.
func (u *UndoStore) TileCount() int { return u.tiles.Len() }

// ByteSize returns the memory held by captured tiles.
func (u *UndoStore) ByteSize() int { return u.tiles.ByteSize() }

// Release frees captured tiles. The store may be reused afterwards.
func (u *UndoStore) Release() { u.tiles.Release() }

// finalize hands the captured tiles over to a new UndoEntry and leaves the
// store empty. It returns nil when nothing was captured.
func (u *UndoStore) finalize() *UndoEntry {
	if u.IsEmpty() {
		return nil
	}
	e := &UndoEntry{drawable: u.drawable, region: u.tiles.Bounds(), tiles: u.tiles}
	b := u.drawable.Bounds()
	u.tiles = tile.NewStore(b.Dx(), b.Dy(), u.tiles.BPP())
	return e
}

// UndoEntry is one reversible patch: a drawable region and the tiles that
// restore it.
type UndoEntry struct {
	drawable Drawable
	region   image.Rectangle
	tiles    *tile.Store
}

// Drawable returns the drawable the entry restores.
func (e *UndoEntry) Drawable() Drawable { return e.drawable }

// Region returns the bounding box of the patch.
func (e *UndoEntry) Region() image.Rectangle { return e.region }

// TileCount returns the number of tiles in the patch.
func (e *UndoEntry) TileCount() int { return e.tiles.Len() }

// ByteSize returns the memory held by the patch.
func (e *UndoEntry) ByteSize() int { return e.tiles.ByteSize() }

// Swap exchanges the patch with the drawable content. Applying it once
// undoes the stroke; applying it again redoes it.
func (e *UndoEntry) Swap() {
	e.tiles.Swap(e.drawable.ReadRegion, e.drawable.WriteRegion)
	if inv, ok := e.drawable.(PreviewInvalidator); ok {
		inv.InvalidatePreview()
	}
}

// Release frees the patch tiles.
func (e *UndoEntry) Release() { e.tiles.Release() }

// UndoSystem receives the undo transaction of each finished stroke.
//
// PushGroup is called once per stroke with one entry per painted drawable:
// the primary first, then the linked drawable if it was painted. The
// system takes ownership of the entries.
type UndoSystem interface {
	PushGroup(label string, entries ...*UndoEntry)
}
