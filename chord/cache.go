package chord

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache holds the chord table of every key it has been asked for. Entries are
// computed on first use and kept for the lifetime of the cache. Failed
// computations are not stored.
type Cache struct {
	compute func(key string) ([]Chord, error)

	mu      sync.RWMutex
	entries map[string][]Chord
	group   singleflight.Group
}

func NewCache(compute func(key string) ([]Chord, error)) *Cache {
	return &Cache{
		compute: compute,
		entries: make(map[string][]Chord),
	}
}

// Get returns the table for key, computing it if it is not cached yet.
// Repeated calls for the same key return the same slice.
func (c *Cache) Get(key string) ([]Chord, error) {
	if res, ok := c.lookup(key); ok {
		return res, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// another caller may have stored it between lookup and Do
		if res, ok := c.lookup(key); ok {
			return res, nil
		}
		res, err := c.compute(key)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = res
		c.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Chord), nil
}

func (c *Cache) lookup(key string) ([]Chord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[key]
	return res, ok
}

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
