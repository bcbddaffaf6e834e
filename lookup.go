package tryget

// Getter is anything that can answer a keyed lookup with the value and whether it was found.
// Maps such as *haxmap.Map and *orderedmap.OrderedMap satisfy it directly.
type Getter[K any, V any] interface {
	Get(key K) (V, bool)
}

// TryGet looks key up in m. The result is successful when the key is present,
// even if the stored value is itself a zero value.
func TryGet[K comparable, V any](m map[K]V, key K) Result[V] {
	v, ok := m[key]
	return New(ok, v)
}

// From looks key up in src.
func From[K any, V any](src Getter[K, V], key K) Result[V] {
	return FromPair(src.Get(key))
}

// FromPair wraps a comma-ok pair, as returned by most lookups, into a Result.
// The value is dropped when ok is false.
func FromPair[V any](value V, ok bool) Result[V] {
	if !ok {
		return NotFound[V]()
	}
	return Found(value)
}
