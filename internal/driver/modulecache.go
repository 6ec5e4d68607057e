package driver

import (
	"sync"

	"yapl/internal/project"
)

// memoryCache keeps recently used summaries for the lifetime of a process.
type memoryCache struct {
	mu    sync.RWMutex
	byKey map[project.Digest]*FileSummary
}

func newMemoryCache(capHint int) *memoryCache {
	return &memoryCache{byKey: make(map[project.Digest]*FileSummary, capHint)}
}

func (c *memoryCache) Get(key project.Digest) (*FileSummary, bool) {
	c.mu.RLock()
	sum, ok := c.byKey[key]
	c.mu.RUnlock()
	return sum, ok
}

func (c *memoryCache) Put(key project.Digest, sum *FileSummary) {
	c.mu.Lock()
	c.byKey[key] = sum
	c.mu.Unlock()
}

func (c *memoryCache) Clear() {
	c.mu.Lock()
	clear(c.byKey)
	c.mu.Unlock()
}
