package lookup

import (
	"github.com/casualjim/tryget"
	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Ordered is a map that remembers insertion order.
// It is not safe for concurrent modification.
type Ordered[K comparable, V any] struct {
	m *orderedmap.OrderedMap[K, V]
}

// NewOrdered creates an empty ordered map.
func NewOrdered[K comparable, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{m: orderedmap.New[K, V]()}
}

// Set stores value under key. Updating an existing key keeps its position.
func (o *Ordered[K, V]) Set(key K, value V) *Ordered[K, V] {
	o.m.Set(key, value)
	return o
}

// TryGet looks up key.
func (o *Ordered[K, V]) TryGet(key K) tryget.Result[V] {
	return tryget.From[K, V](o.m, key)
}

// Delete removes key and reports whether it was present.
func (o *Ordered[K, V]) Delete(key K) bool {
	_, present := o.m.Delete(key)
	return present
}

// Keys returns the keys in insertion order.
func (o *Ordered[K, V]) Keys() []K {
	keys := make([]K, 0, o.m.Len())
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of entries.
func (o *Ordered[K, V]) Len() int {
	return o.m.Len()
}

// First returns the oldest entry whose value narrows to T.
func First[T any, K comparable, V any](o *Ordered[K, V]) tryget.Result[T] {
	for _, key := range o.Keys() {
		if res := tryget.As[T](o.TryGet(key)); res.OK() {
			return res
		}
	}
	return tryget.NotFound[T]()
}

// Select returns the values, in insertion order, that narrow to T.
func Select[T any, K comparable, V any](o *Ordered[K, V]) []T {
	return lo.FilterMap(o.Keys(), func(key K, _ int) (T, bool) {
		return tryget.AsValue[T](o.TryGet(key))
	})
}
