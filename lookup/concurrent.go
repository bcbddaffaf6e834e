package lookup

import (
	"github.com/casualjim/tryget"
	"github.com/casualjim/tryget/internal/registry"
)

// Concurrent is a string-keyed map safe for concurrent readers and writers.
type Concurrent[V any] struct {
	values registry.Registry[V]
}

// NewConcurrent creates an empty concurrent map.
func NewConcurrent[V any]() *Concurrent[V] {
	return &Concurrent[V]{values: registry.New[V]()}
}

// Set stores value under key.
func (c *Concurrent[V]) Set(key string, value V) {
	c.values.Add(key, value)
}

// TryGet looks up key.
func (c *Concurrent[V]) TryGet(key string) tryget.Result[V] {
	return c.values.TryGet(key)
}

// GetOrSet returns the value stored under key, computing and storing it with
// valueFn when absent. The second result reports whether the value was already present.
func (c *Concurrent[V]) GetOrSet(key string, valueFn func() V) (V, bool) {
	return c.values.GetOrAdd(key, valueFn)
}

// Delete removes key.
func (c *Concurrent[V]) Delete(key string) {
	c.values.Del(key)
}

// Len returns the number of entries.
func (c *Concurrent[V]) Len() int {
	return c.values.Len()
}
