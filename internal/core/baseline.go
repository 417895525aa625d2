// Package core provides the runtime core tier of the immutability rule engine.
// BaselineCache suppresses findings that were recorded on a previous run.
// Stdlib-only implementation.
// Thread-safe for concurrent access.
package core

import (
	"sort"
	"sync"
)

// BaselineCache is an in-memory Baseline keyed by Violation.Key().
// Typically loaded from and written back to disk by the production tier.
type BaselineCache struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

// NewBaselineCache creates a BaselineCache seeded with keys.
func NewBaselineCache(keys ...string) *BaselineCache {
	c := &BaselineCache{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		c.keys[k] = struct{}{}
	}
	return c
}

// Known reports whether key was recorded.
func (c *BaselineCache) Known(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.keys[key]
	return ok
}

// Record adds keys to the cache.
func (c *BaselineCache) Record(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		c.keys[k] = struct{}{}
	}
}

// Clear removes a recorded key.
func (c *BaselineCache) Clear(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.keys, key)
}

// Len returns the number of recorded keys.
func (c *BaselineCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.keys)
}

// Keys returns a sorted snapshot copy of the recorded keys.
// Modifications to the returned slice do not affect the cache.
func (c *BaselineCache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.keys))
	for k := range c.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
