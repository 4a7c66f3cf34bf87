package cache

import "testing"

func TestCacheGetOrCreate(t *testing.T) {
	c := New[int, string](0)
	calls := 0
	create := func() string {
		calls++
		return "v"
	}

	if got := c.GetOrCreate(1, create); got != "v" {
		t.Errorf("GetOrCreate() = %q, want %q", got, "v")
	}
	if got := c.GetOrCreate(1, create); got != "v" {
		t.Errorf("GetOrCreate() second call = %q, want %q", got, "v")
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCacheGetMiss(t *testing.T) {
	c := New[string, int](4)
	if _, ok := c.Get("missing"); ok {
		t.Error("Get() on empty cache returned ok")
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](4)
	for i := range 4 {
		c.GetOrCreate(i, func() int { return i })
	}
	// Touch 0 so it survives eviction.
	if _, ok := c.Get(0); !ok {
		t.Fatal("Get(0) missing before eviction")
	}

	c.GetOrCreate(4, func() int { return 4 })

	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4 after eviction", c.Len())
	}
	if _, ok := c.Get(0); !ok {
		t.Error("recently used entry 0 was evicted")
	}
	if _, ok := c.Get(1); ok {
		t.Error("least recently used entry 1 was kept")
	}
}

func TestCacheClear(t *testing.T) {
	c := New[int, int](0)
	c.GetOrCreate(1, func() int { return 1 })
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", c.Len())
	}
}
