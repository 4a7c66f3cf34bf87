package tile

import "math/bits"

// bitmap records which tiles have been captured, one bit per tile.
// Bit index = ty * tilesX + tx.
type bitmap struct {
	words  []uint64
	tilesX int
	tilesY int
}

func newBitmap(tilesX, tilesY int) bitmap {
	return bitmap{
		words:  make([]uint64, (tilesX*tilesY+63)/64),
		tilesX: tilesX,
		tilesY: tilesY,
	}
}

func (b *bitmap) index(tx, ty int) (int, bool) {
	if tx < 0 || tx >= b.tilesX || ty < 0 || ty >= b.tilesY {
		return 0, false
	}
	return ty*b.tilesX + tx, true
}

func (b *bitmap) set(tx, ty int) {
	if idx, ok := b.index(tx, ty); ok {
		b.words[idx/64] |= 1 << (idx & 63)
	}
}

func (b *bitmap) isSet(tx, ty int) bool {
	idx, ok := b.index(tx, ty)
	return ok && b.words[idx/64]&(1<<(idx&63)) != 0
}

func (b *bitmap) count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

func (b *bitmap) clear() {
	clear(b.words)
}
