package types

// DefaultMap is a map wrapper that materializes a default value for missing keys.
//
//	counts := NewDefaultMap[string](func() uint64 { return 0 })
//	counts.Update("send", func(n uint64) uint64 { return n + 1 })
type DefaultMap[K comparable, V any] struct {
	data        map[K]V
	defaultFunc func() V
}

// NewDefaultMap creates an empty DefaultMap using defaultFunc for missing keys.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get returns the value stored under key, storing and returning the
// default value first if the key is absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Set assigns val to key.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// Update replaces the value under key with fn applied to its current
// (or default) value and returns the new value.
func (d *DefaultMap[K, V]) Update(key K, fn func(V) V) V {
	val := fn(d.Get(key))
	d.data[key] = val
	return val
}

// Len returns the number of materialized keys.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}

// ToMap returns the underlying map. Callers must not retain it across
// further mutations of the DefaultMap.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
