package sortedmap

import (
	"cmp"
	"iter"

	"github.com/hupe1980/cowgo/seq"
)

type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// Map is an ordered map over a key-sorted sequence. Between public operations
// the sequence is strictly increasing with no duplicate keys.
type Map[K cmp.Ordered, V any] struct {
	items *seq.List[entry[K, V]]
}

// New creates an empty Map.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{items: seq.New[entry[K, V]]()}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.items.Len() }

// lowerBound returns the position of the first entry whose key is >= key.
func (m *Map[K, V]) lowerBound(key K) int {
	lo, hi := 0, m.items.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if m.items.At(mid).key < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound returns the position of the first entry whose key is > key.
func (m *Map[K, V]) upperBound(key K) int {
	lo, hi := 0, m.items.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if m.items.At(mid).key <= key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// find returns the position of key and whether it is present. When absent,
// the position is where the key would be inserted.
func (m *Map[K, V]) find(key K) (int, bool) {
	i := m.lowerBound(key)
	return i, i < m.items.Len() && m.items.At(i).key == key
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := m.find(key); ok {
		return m.items.At(i).value, true
	}
	var zero V
	return zero, false
}

// Set stores value under key, replacing any previous value.
func (m *Map[K, V]) Set(key K, value V) {
	i, ok := m.find(key)
	if ok {
		m.items.SetAt(i, entry[K, V]{key, value})
		return
	}
	m.items.Insert(i, entry[K, V]{key, value})
}

// GetOrInsert returns the value stored under key, inserting value first when
// the key is absent. The second result reports whether the key was already
// present.
func (m *Map[K, V]) GetOrInsert(key K, value V) (V, bool) {
	i, ok := m.find(key)
	if ok {
		return m.items.At(i).value, true
	}
	m.items.Insert(i, entry[K, V]{key, value})
	return value, false
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if i, ok := m.find(key); ok {
		m.items.RemoveAt(i)
		return true
	}
	return false
}

// At returns the entry at rank i. It panics when i is out of range.
func (m *Map[K, V]) At(i int) (K, V) {
	e := m.items.At(i)
	return e.key, e.value
}

// DeleteAt removes the entry at rank i and reports whether i was in range.
func (m *Map[K, V]) DeleteAt(i int) bool {
	return m.items.RemoveAt(i)
}

// LowerBound returns the rank of the first key >= key, or Len when there is
// none. For a present key this is its own position.
func (m *Map[K, V]) LowerBound(key K) int { return m.lowerBound(key) }

// UpperBound returns the rank of the first key > key, or Len when there is
// none.
func (m *Map[K, V]) UpperBound(key K) int { return m.upperBound(key) }

// DeleteRange removes every key in [lo, hi) with a single bulk shift and
// returns the number removed. Removing a contiguous run one key at a time
// would be quadratic.
func (m *Map[K, V]) DeleteRange(lo, hi K) int {
	from := m.lowerBound(lo)
	to := m.lowerBound(hi)
	if to <= from {
		return 0
	}
	m.items.RemoveRange(from, to-from)
	return to - from
}

// Min returns the smallest entry.
func (m *Map[K, V]) Min() (K, V, bool) {
	if m.items.IsEmpty() {
		var k K
		var v V
		return k, v, false
	}
	e := m.items.At(0)
	return e.key, e.value, true
}

// Max returns the largest entry.
func (m *Map[K, V]) Max() (K, V, bool) {
	if m.items.IsEmpty() {
		var k K
		var v V
		return k, v, false
	}
	e := m.items.At(m.items.Len() - 1)
	return e.key, e.value, true
}

// Clear removes all entries, keeping the allocation for reuse.
func (m *Map[K, V]) Clear() { m.items.Clear() }

// Clone returns an independent copy in O(1). The sorted sequence is shared
// copy-on-write and diverges only when one side mutates.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{items: m.items.Clone()}
}

// All returns a key/value iterator in ascending key order. The map must not
// be mutated while iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.items.Values() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Ascend returns a key/value iterator over all keys >= from, ascending.
func (m *Map[K, V]) Ascend(from K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := m.lowerBound(from); i < m.items.Len(); i++ {
			e := m.items.At(i)
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns an ascending key iterator.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}
