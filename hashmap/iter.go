package hashmap

import "iter"

// All returns a key/value iterator in unspecified (bucket) order. The map
// must not be mutated while iterating: growth rehashes every entry.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for b := range m.buckets.Values() {
			if b == nil {
				continue
			}
			if !yield(b.entry.key, b.entry.value) {
				return
			}
			if b.overflow != nil {
				for e := range b.overflow.Values() {
					if !yield(e.key, e.value) {
						return
					}
				}
			}
		}
	}
}

// Keys returns a key iterator in unspecified order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns a value iterator in unspecified order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// DeleteFunc removes every entry for which del returns true and returns the
// number removed. This is the supported way to remove while traversing;
// removal through All would invalidate the iterator.
func (m *Map[K, V]) DeleteFunc(del func(K, V) bool) int {
	removed := 0
	for i := 0; i < m.buckets.Len(); i++ {
		b := m.buckets.At(i)
		if b == nil {
			continue
		}
		if b.overflow != nil {
			for j := b.overflow.Len() - 1; j >= 0; j-- {
				e := b.overflow.At(j)
				if del(e.key, e.value) {
					b.overflow.RemoveAt(j)
					m.size--
					removed++
				}
			}
		}
		if del(b.entry.key, b.entry.value) {
			if b.overflow != nil && b.overflow.Len() > 0 {
				last, _ := b.overflow.Pop()
				b.entry = last
			} else {
				m.buckets.SetAt(i, nil)
			}
			m.size--
			removed++
		}
	}
	return removed
}
