package texture

import (
	"image"
	"path/filepath"
	"sync"
)

// Resolver resolves a texture path to a decoded image.
type Resolver interface {
	Resolve(path string) (*image.NRGBA, error)
}

// Cache is a concurrency-safe texture cache keyed by cleaned path.
// Failed loads are cached too, so a missing file is read once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]cacheEntry
	load  func(string) (*image.NRGBA, error)
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

func NewCache() *Cache {
	return &Cache{
		items: make(map[string]cacheEntry),
		load:  LoadTexture,
	}
}

// Resolve loads and caches the texture at path.
func (c *Cache) Resolve(path string) (*image.NRGBA, error) {
	path = filepath.Clean(path)

	// Fast path: read lock
	c.mu.RLock()
	if e, ok := c.items[path]; ok {
		c.mu.RUnlock()
		return e.img, e.err
	}
	c.mu.RUnlock()

	img, err := c.load(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[path]; ok {
		return e.img, e.err
	}
	c.items[path] = cacheEntry{img: img, err: err}
	return img, err
}

// Len returns the number of cached paths, failed ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

var _ Resolver = (*Cache)(nil)
