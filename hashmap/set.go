package hashmap

import (
	"cmp"
	"iter"
)

// Set is a hash set: a thin wrapper pairing each key with nothing.
type Set[K cmp.Ordered] struct {
	m *Map[K, struct{}]
}

// NewSet creates an empty Set.
func NewSet[K cmp.Ordered](optFns ...func(*Options[K])) *Set[K] {
	return &Set[K]{m: New[K, struct{}](optFns...)}
}

// Add inserts key and reports whether it was newly added.
func (s *Set[K]) Add(key K) bool {
	_, loaded := s.m.GetOrInsert(key, struct{}{})
	return !loaded
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	_, ok := s.m.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (s *Set[K]) Delete(key K) bool {
	return s.m.Delete(key)
}

// Len returns the number of keys.
func (s *Set[K]) Len() int { return s.m.Len() }

// Reserve grows the set so that n keys fit without rehashing.
func (s *Set[K]) Reserve(n int) { s.m.Reserve(n) }

// Clear removes all keys.
func (s *Set[K]) Clear() { s.m.Clear() }

// Clone returns an independent copy.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{m: s.m.Clone()}
}

// All returns a key iterator in unspecified order.
func (s *Set[K]) All() iter.Seq[K] {
	return s.m.Keys()
}
