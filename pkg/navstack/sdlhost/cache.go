package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// Cache keeps a bounded set of resources and releases the least recently
// used one when full.
type Cache[K comparable, V comparable] struct {
	entries map[K]V
	order   []K // least recently used first
	maxSize int
	release func(V)
}

// NewCache creates a cache holding at most maxSize entries. release is
// called for every entry the cache drops.
func NewCache[K, V comparable](maxSize int, release func(V)) *Cache[K, V] {
	maxSize = max(maxSize, 1)
	return &Cache[K, V]{
		entries: make(map[K]V),
		order:   make([]K, 0, maxSize),
		maxSize: maxSize,
		release: release,
	}
}

// NewTextureCache creates a cache of SDL textures, destroyed on eviction.
func NewTextureCache[K comparable](maxSize int) *Cache[K, *sdl.Texture] {
	return NewCache[K](maxSize, func(t *sdl.Texture) {
		if t != nil {
			t.Destroy()
		}
	})
}

// Get returns the entry under key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]
	if ok {
		c.touch(key)
	}
	return v, ok
}

// Set stores v under key. An entry previously stored under key is released
// unless it is v itself.
func (c *Cache[K, V]) Set(key K, v V) {
	if old, ok := c.entries[key]; ok {
		if old != v {
			c.release(old)
		}
		c.entries[key] = v
		c.touch(key)
		return
	}

	for len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = v
	c.order = append(c.order, key)
}

// Remove releases and forgets the entry under key.
func (c *Cache[K, V]) Remove(key K) {
	v, ok := c.entries[key]
	if !ok {
		return
	}
	c.release(v)
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cache[K, V]) Len() int {
	return len(c.order)
}

func (c *Cache[K, V]) touch(key K) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *Cache[K, V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	if v, ok := c.entries[oldest]; ok {
		c.release(v)
		delete(c.entries, oldest)
	}
}

// Destroy releases every entry.
func (c *Cache[K, V]) Destroy() {
	for _, v := range c.entries {
		c.release(v)
	}
	c.entries = make(map[K]V)
	c.order = c.order[:0]
}
