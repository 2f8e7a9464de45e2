package layout

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// RowCache caches row counts per buffer line, validated by content hash.
type RowCache struct {
	mu      sync.Mutex
	engine  *Engine
	entries map[uint32]cacheEntry
	maxSize int
	hits    atomic.Uint64
	misses  atomic.Uint64
}

type cacheEntry struct {
	hash uint64
	rows int
}

// NewRowCache creates a cache backed by engine.
// maxSize of 0 means unbounded.
func NewRowCache(engine *Engine, maxSize int) *RowCache {
	if maxSize < 0 {
		maxSize = 0
	}
	return &RowCache{
		engine:  engine,
		entries: make(map[uint32]cacheEntry),
		maxSize: maxSize,
	}
}

// RowCount returns the row count of line, computing it when the cached
// entry is missing or was computed for different text.
func (c *RowCache) RowCount(line uint32, text string) int {
	hash := hashLine(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[line]; ok && e.hash == hash {
		c.hits.Add(1)
		return e.rows
	}
	c.misses.Add(1)

	rows := c.engine.RowCount(text)
	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		// Drop everything rather than track recency; rows are cheap to rebuild.
		c.entries = make(map[uint32]cacheEntry)
	}
	c.entries[line] = cacheEntry{hash: hash, rows: rows}
	return rows
}

// InvalidateAll clears the cache. Call it after the engine's wrap width or
// tab width changes.
func (c *RowCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint32]cacheEntry)
}

// Size returns the number of cached entries.
func (c *RowCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *RowCache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Engine returns the layout engine used by this cache.
func (c *RowCache) Engine() *Engine {
	return c.engine
}

func hashLine(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
