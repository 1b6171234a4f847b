// Package cache provides a keyed store that creates at most one value per key.
package cache

import (
	"sort"
	"sync"
)

// Cache maps keys to values created on first lookup.
//
// Lookups and creation are serialized, so concurrent first lookups of the
// same key observe the same value. The creator must be cheap and must not
// block; expensive work belongs in the value itself.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	values  map[K]V
	creator func(K) V
}

// New creates an empty cache that uses creator to build missing values.
func New[K comparable, V any](creator func(K) V) *Cache[K, V] {
	return &Cache[K, V]{
		values:  make(map[K]V),
		creator: creator,
	}
}

// Get returns the value for key, creating it if necessary.
func (c *Cache[K, V]) Get(key K) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.values[key]; ok {
		return v
	}

	v := c.creator(key)
	c.values[key] = v
	return v
}

// Refresh discards the value for key and returns a newly created one.
// Values for other keys are untouched.
func (c *Cache[K, V]) Refresh(key K) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := c.creator(key)
	c.values[key] = v
	return v
}

// Peek returns the value for key without creating it.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	return v, ok
}

// Len returns the number of cached values.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.values)
}

// Keys returns the cached keys, ordered by less when it is non-nil.
func (c *Cache[K, V]) Keys(less func(a, b K) bool) []K {
	c.mu.Lock()
	keys := make([]K, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	c.mu.Unlock()

	if less != nil {
		sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	}
	return keys
}
