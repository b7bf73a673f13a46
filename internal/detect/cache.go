package detect

import (
	"sort"
	"sync"
)

// Cache stores detection results keyed by content hash. Safe for concurrent
// use. A disabled cache computes every time and stores nothing.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
	enabled bool
}

// NewCache builds a cache. When enabled is false every lookup misses.
func NewCache(enabled bool) *Cache {
	return &Cache{
		entries: make(map[string]string),
		enabled: enabled,
	}
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. compute runs outside the lock; concurrent misses on the same key
// may compute twice, with the later result winning. The second return
// reports whether the value came from the cache.
func (c *Cache) GetOrCompute(key string, compute func() (string, error)) (string, bool, error) {
	if c.enabled {
		c.mu.RLock()
		v, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return v, true, nil
		}
	}

	v, err := compute()
	if err != nil {
		return "", false, err
	}

	if c.enabled {
		c.mu.Lock()
		c.entries[key] = v
		c.mu.Unlock()
	}
	return v, false, nil
}

// Clear empties the cache and returns the number of entries dropped.
func (c *Cache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]string)
	return n
}

// Stats is a snapshot of the cache for diagnostics output.
type Stats struct {
	Enabled bool     `json:"cache_enabled"`
	Size    int      `json:"cache_size"`
	Keys    []string `json:"cache_keys"`
}

// Stats returns the current cache contents with keys in sorted order.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return Stats{Enabled: c.enabled, Size: len(keys), Keys: keys}
}
