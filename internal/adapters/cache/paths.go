package cache

import (
	"sync"
	"unique"

	"go.trai.ch/brandlay/internal/core/ports"
)

// ExistenceCache memoizes existence checks. Negative answers are cached too,
// so a file created after the first check stays invisible until Invalidate.
type ExistenceCache struct {
	mu      sync.RWMutex
	entries map[unique.Handle[string]]bool
	checker ports.PathChecker
	metrics ports.Metrics
}

// NewExistenceCache creates an ExistenceCache backed by checker.
func NewExistenceCache(checker ports.PathChecker, metrics ports.Metrics) *ExistenceCache {
	return &ExistenceCache{
		entries: make(map[unique.Handle[string]]bool),
		checker: checker,
		metrics: metrics,
	}
}

// Exists reports whether path exists, checking the filesystem at most once
// per path for the lifetime of the cache.
func (c *ExistenceCache) Exists(path string) bool {
	key := unique.Make(path)

	c.mu.RLock()
	exists, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.metrics.CacheLookup(ports.CachePaths, true)
		return exists
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if exists, ok = c.entries[key]; ok {
		c.metrics.CacheLookup(ports.CachePaths, true)
		return exists
	}
	c.metrics.CacheLookup(ports.CachePaths, false)

	exists = c.checker.Exists(path)
	c.entries[key] = exists
	return exists
}
