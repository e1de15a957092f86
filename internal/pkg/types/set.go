package types

import (
	"cmp"
	"maps"
	"slices"
)

// Set is a generic hash set backed by map[T]struct{}.
// It is mutable and not safe for concurrent use.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the given elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Insert adds value and reports whether it was not already present.
// It is the check-and-add step used when deduplicating by identity key.
func (s Set[T]) Insert(value T) bool {
	if _, ok := s[value]; ok {
		return false
	}

	s[value] = struct{}{}
	return true
}

// Has reports whether value is in the set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// Delete removes one or more elements from the set.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// ToSlice returns the elements in unspecified order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(maps.Keys(s))
}

// Sorted returns the elements of an ordered set in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(maps.Keys(s))
}
