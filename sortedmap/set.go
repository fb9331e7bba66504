package sortedmap

import (
	"cmp"
	"iter"
)

// Set is an ordered set: a thin wrapper pairing each key with nothing.
type Set[K cmp.Ordered] struct {
	m *Map[K, struct{}]
}

// NewSet creates an empty Set.
func NewSet[K cmp.Ordered]() *Set[K] {
	return &Set[K]{m: New[K, struct{}]()}
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
func (s *Set[K]) Delete(key K) bool { return s.m.Delete(key) }

// DeleteRange removes every key in [lo, hi) and returns the number removed.
func (s *Set[K]) DeleteRange(lo, hi K) int { return s.m.DeleteRange(lo, hi) }

// Len returns the number of keys.
func (s *Set[K]) Len() int { return s.m.Len() }

// At returns the key at rank i. It panics when i is out of range.
func (s *Set[K]) At(i int) K {
	k, _ := s.m.At(i)
	return k
}

// LowerBound returns the rank of the first key >= key.
func (s *Set[K]) LowerBound(key K) int { return s.m.LowerBound(key) }

// UpperBound returns the rank of the first key > key.
func (s *Set[K]) UpperBound(key K) int { return s.m.UpperBound(key) }

// Min returns the smallest key.
func (s *Set[K]) Min() (K, bool) {
	k, _, ok := s.m.Min()
	return k, ok
}

// Max returns the largest key.
func (s *Set[K]) Max() (K, bool) {
	k, _, ok := s.m.Max()
	return k, ok
}

// Clear removes all keys.
func (s *Set[K]) Clear() { s.m.Clear() }

// Clone returns an independent copy in O(1).
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{m: s.m.Clone()}
}

// All returns an ascending key iterator.
func (s *Set[K]) All() iter.Seq[K] { return s.m.Keys() }

// Ascend returns an ascending iterator over all keys >= from.
func (s *Set[K]) Ascend(from K) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.Ascend(from) {
			if !yield(k) {
				return
			}
		}
	}
}
