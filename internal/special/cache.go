package special

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/Faultbox/blsconv/internal/scene"
)

// Stats reports cache usage.
type Stats struct {
	Hits   int64
	Misses int64 // Equals the number of generator invocations
}

// Cache holds one template per key. A template is generated on first
// request and never replaced; callers always receive a private copy.
// Cache is safe for concurrent use.
type Cache struct {
	mu        sync.RWMutex
	templates map[Key]*scene.Node
	group     singleflight.Group
	generate  func(Key) *scene.Node

	requests atomic.Int64
	misses   atomic.Int64
}

// NewCache creates an empty cache backed by Generate.
func NewCache() *Cache {
	return newCache(Generate)
}

func newCache(generate func(Key) *scene.Node) *Cache {
	return &Cache{
		templates: make(map[Key]*scene.Node),
		generate:  generate,
	}
}

func (c *Cache) lookup(key Key) (*scene.Node, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.templates[key]
	return t, ok
}

// Template returns a deep copy of the template for key, generating it on
// first use. Concurrent first requests share one generation.
func (c *Cache) Template(key Key) *scene.Node {
	c.requests.Add(1)
	if t, ok := c.lookup(key); ok {
		return t.Clone()
	}

	v, _, _ := c.group.Do(key.String(), func() (any, error) {
		if t, ok := c.lookup(key); ok {
			return t, nil
		}
		c.misses.Add(1)
		t := c.generate(key)
		c.mu.Lock()
		c.templates[key] = t
		c.mu.Unlock()
		return t, nil
	})
	return v.(*scene.Node).Clone()
}

// Len returns the number of cached templates.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}

// Stats returns a snapshot of cache usage.
func (c *Cache) Stats() Stats {
	misses := c.misses.Load()
	return Stats{Hits: c.requests.Load() - misses, Misses: misses}
}
