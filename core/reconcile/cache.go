package reconcile

import "sync"

// Cache holds the most recent Result of a workspace.
// It has a single slot: every Store overwrites the previous result.
type Cache struct {
	mu     sync.RWMutex
	result *Result
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Store replaces the cached result.
func (c *Cache) Store(result *Result) {
	c.mu.Lock()
	c.result = result
	c.mu.Unlock()
}

// Result returns the cached result, or false if nothing was stored.
func (c *Cache) Result() (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result, c.result != nil
}

// Fetch returns the named report table of the cached result.
// Unknown names and an empty cache both fail with ErrReportNotFound.
func (c *Cache) Fetch(name string) (Table, error) {
	key, ok := ParseReportKey(name)
	if !ok {
		return Table{}, &ReportNotFoundError{Name: name}
	}

	c.mu.RLock()
	result := c.result
	c.mu.RUnlock()

	if result == nil {
		return Table{}, &ReportNotFoundError{Name: name}
	}
	return result.Table(key)
}

// Clear drops the cached result.
func (c *Cache) Clear() {
	c.Store(nil)
}
