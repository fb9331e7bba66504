package seq

import (
	"iter"
	"slices"
)

// All returns an index/item iterator over the visible items. The list must
// not be mutated while iterating.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.data() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an item iterator over the visible items. The list must not
// be mutated while iterating.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.data() {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice returns a freshly allocated copy of the visible items.
func (l *List[T]) ToSlice() []T {
	return slices.Clone(l.data())
}

// IndexFunc returns the index of the first item satisfying f, or -1.
func (l *List[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(l.data(), f)
}

// EqualFunc reports whether both lists hold pairwise-equal items under eq.
func (l *List[T]) EqualFunc(other *List[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(l.data(), other.data(), eq)
}
