package cache

import (
	"sync"

	"github.com/rowpump/rowpump/record"
)

// Key identifies one cached SQL template: the operation kind plus the table
// it targets. Composing the key from a tagged kind avoids prefix collisions
// with table names.
type Key struct {
	Kind  record.Kind
	Table string
}

// TemplateCache maps keys to immutable SQL template strings. Entries are
// created on first use and live for the process lifetime; nothing is ever
// evicted or mutated. Safe for concurrent use.
type TemplateCache struct {
	mu   sync.RWMutex
	data map[Key]string
}

func NewTemplateCache() *TemplateCache {
	return &TemplateCache{
		data: make(map[Key]string, 64),
	}
}

// Get returns the template cached under k, if any.
func (c *TemplateCache) Get(k Key) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.data[k]
	return s, ok
}

// GetOrCompute returns the template for k, invoking build on first use. The
// build runs outside the lock: two goroutines racing on the same key both
// compute identical text and the first store wins, so the duplicate work is
// benign. A build error is returned without caching anything.
func (c *TemplateCache) GetOrCompute(k Key, build func() (string, error)) (string, error) {
	c.mu.RLock()
	if s, ok := c.data[k]; ok {
		c.mu.RUnlock()
		return s, nil
	}
	c.mu.RUnlock()

	s, err := build()
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.data[k]; ok {
		return existing, nil
	}
	c.data[k] = s
	return s, nil
}

// Len reports the number of cached templates.
func (c *TemplateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
