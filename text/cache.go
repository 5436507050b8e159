package text

import (
	"slices"
	"sync"
)

// glyphKey identifies the metrics of one rune at one size.
type glyphKey struct {
	r    rune
	size float64
}

// glyphMetrics are the per-glyph answers a Face caches.
type glyphMetrics struct {
	gid     uint16
	advance float64
	bounds  Rect
}

// metricsCache is a thread-safe LRU cache with a soft limit.
// When the cache exceeds softLimit, the least recently used quarter is evicted.
// A softLimit of 0 means unlimited.
type metricsCache struct {
	mu        sync.Mutex
	entries   map[glyphKey]*cacheEntry
	softLimit int
	tick      int64 // monotonic access counter
}

type cacheEntry struct {
	value glyphMetrics
	atime int64
}

func newMetricsCache(softLimit int) *metricsCache {
	return &metricsCache{
		entries:   make(map[glyphKey]*cacheEntry),
		softLimit: softLimit,
	}
}

// getOrCreate returns the cached value for key or stores the result of create.
// create runs under the lock so concurrent misses do not duplicate work.
func (c *metricsCache) getOrCreate(key glyphKey, create func() glyphMetrics) glyphMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.value
	}

	v := create()
	c.entries[key] = &cacheEntry{value: v, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return v
}

// clear removes all entries.
func (c *metricsCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[glyphKey]*cacheEntry)
	c.tick = 0
}

// len returns the number of entries.
func (c *metricsCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest removes entries until the cache is at 3/4 of its soft limit.
// Caller must hold c.mu.
func (c *metricsCache) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   glyphKey
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int {
		switch {
		case a.atime < b.atime:
			return -1
		case a.atime > b.atime:
			return 1
		}
		return 0
	})
	for _, a := range all[:toEvict] {
		delete(c.entries, a.key)
	}
}
