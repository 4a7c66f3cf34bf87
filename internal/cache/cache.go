package cache

import (
	"container/list"
	"sync"
)

// Cache maps keys to derived values and keeps at most limit of them,
// dropping the least recently used entry on overflow.
//
// Cache must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu    sync.Mutex
	limit int
	order *list.List // front is most recently used
	index map[K]*list.Element
}

type item[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache holding at most limit entries.
// A limit of 0 means unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		limit: limit,
		order: list.New(),
		index: make(map[K]*list.Element),
	}
}

// Get returns the value for key and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*item[K, V]).value, true
}

// GetOrCreate returns the value for key, building it with create on a
// miss. create runs under the lock, so a value is never built twice.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*item[K, V]).value
	}

	v := create()
	c.index[key] = c.order.PushFront(&item[K, V]{key: key, value: v})
	if c.limit > 0 && c.order.Len() > c.limit {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.index, oldest.Value.(*item[K, V]).key)
	}
	return v
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	clear(c.index)
}
