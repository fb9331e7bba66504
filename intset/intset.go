// Package intset provides a compressed-bitmap set for dense uint32 keys.
//
// It exposes the same set contract as hashmap.Set and sortedmap.Set but is
// backed by a Roaring bitmap, which is far more compact for dense integer
// populations and adds cheap set algebra (And, Or, AndNot). Iteration
// ascends. Not safe for concurrent use.
package intset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a Roaring-bitmap-backed set of uint32 keys.
type Set struct {
	rb *roaring.Bitmap
}

// New creates an empty Set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// Of creates a Set holding keys.
func Of(keys ...uint32) *Set {
	return &Set{rb: roaring.BitmapOf(keys...)}
}

// Add inserts key and reports whether it was newly added.
func (s *Set) Add(key uint32) bool {
	return s.rb.CheckedAdd(key)
}

// Delete removes key and reports whether it was present.
func (s *Set) Delete(key uint32) bool {
	return s.rb.CheckedRemove(key)
}

// Contains reports whether key is in the set.
func (s *Set) Contains(key uint32) bool {
	return s.rb.Contains(key)
}

// Len returns the number of keys.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty reports whether the set has no keys.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Clear removes all keys.
func (s *Set) Clear() {
	s.rb.Clear()
}

// Clone returns a deep copy.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// And intersects the set with other in place.
func (s *Set) And(other *Set) {
	s.rb.And(other.rb)
}

// Or unions the set with other in place.
func (s *Set) Or(other *Set) {
	s.rb.Or(other.rb)
}

// AndNot removes every key of other from the set.
func (s *Set) AndNot(other *Set) {
	s.rb.AndNot(other.rb)
}

// Min returns the smallest key.
func (s *Set) Min() (uint32, bool) {
	if s.rb.IsEmpty() {
		return 0, false
	}
	return s.rb.Minimum(), true
}

// Max returns the largest key.
func (s *Set) Max() (uint32, bool) {
	if s.rb.IsEmpty() {
		return 0, false
	}
	return s.rb.Maximum(), true
}

// All returns an ascending key iterator.
func (s *Set) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// ToSlice returns the keys in ascending order.
func (s *Set) ToSlice() []uint32 {
	return s.rb.ToArray()
}
