package tile

import "sync"

// Pool reuses tile buffers between strokes.
//
// Buffers are keyed by byte size, so full tiles of one pixel format share a
// pool while edge tiles get their own.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	pools sync.Map // int -> *sync.Pool
}

// NewPool creates an empty tile pool.
func NewPool() *Pool {
	return &Pool{}
}

// Get returns a tile with a buffer of width*height*bpp bytes.
// The buffer content is unspecified; callers overwrite it on capture.
func (p *Pool) Get(width, height, bpp int) *Tile {
	if width <= 0 || height <= 0 || bpp <= 0 {
		return nil
	}
	size := width * height * bpp
	t := p.poolFor(size).Get().(*Tile)
	t.X, t.Y = 0, 0
	t.Width, t.Height, t.BPP = width, height, bpp
	return t
}

// Put returns a tile to the pool. Put(nil) is a no-op.
func (p *Pool) Put(t *Tile) {
	if t == nil || len(t.Data) == 0 {
		return
	}
	p.poolFor(len(t.Data)).Put(t)
}

func (p *Pool) poolFor(size int) *sync.Pool {
	if pool, ok := p.pools.Load(size); ok {
		return pool.(*sync.Pool)
	}
	newPool := &sync.Pool{
		New: func() any {
			return &Tile{Data: make([]byte, size)}
		},
	}
	actual, _ := p.pools.LoadOrStore(size, newPool)
	return actual.(*sync.Pool)
}

// defaultPool is shared by all stores.
var defaultPool = NewPool()
