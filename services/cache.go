package services

import (
	"sync"
)

// ViewCache memoizes derived views. Every aggregator is a pure function of
// (ledger, criteria), so a view is fully identified by the ledger version,
// the criteria fingerprint and the view name; no other invalidation logic is
// needed beyond dropping everything when the ledger is reloaded.
type ViewCache struct {
	mu      sync.Mutex
	entries map[string]interface{}
}

func NewViewCache() *ViewCache {
	return &ViewCache{entries: make(map[string]interface{})}
}

// GetOrCompute returns the cached view for (version, fingerprint, view) or
// computes, stores and returns it.
func (c *ViewCache) GetOrCompute(version, fingerprint, view string, compute func() interface{}) interface{} {
	key := version + "|" + fingerprint + "|" + view

	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v := compute()

	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()
	return v
}

// Invalidate drops every cached view. Called when the ledger is reloaded.
func (c *ViewCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]interface{})
	c.mu.Unlock()
}

// Len reports the number of cached views.
func (c *ViewCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
