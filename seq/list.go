package seq

// state tags the four disjoint storage modes of a List.
type state uint8

const (
	// stateNull is the zero value: no data, no buffer.
	stateNull state = iota
	// stateEmpty is empty but non-null. It may keep a detached spare buffer
	// (refs always 1, used always 0) so the next write can reuse the
	// allocation instead of calling make again.
	stateEmpty
	// stateBound addresses the window [off, off+n) of a shared buffer.
	stateBound
	// stateExtern aliases caller-owned memory in ext[off:off+n]. The caller
	// keeps lifetime responsibility; the first mutation detaches.
	stateExtern
)

// List is a copy-on-write sequence handle.
//
// Clone produces a second handle over the same buffer in O(1); mutating either
// handle afterwards is never observable through the other. Use pointers to
// pass a List around - copying the struct by value would bypass reference
// counting.
type List[T any] struct {
	buf *buffer[T]
	ext []T
	off int
	n   int
	st  state
}

// New returns a null list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// WithCapacity returns an empty list whose buffer can hold c items before the
// first reallocation.
func WithCapacity[T any](c int) *List[T] {
	if c < 0 {
		c = 0
	}
	return &List[T]{buf: newBuffer[T](0, c), st: stateBound}
}

// Of returns a list holding a private copy of items.
func Of[T any](items ...T) *List[T] {
	l := New[T]()
	l.Append(items...)
	return l
}

// Borrow returns a list aliasing caller-owned memory without copying.
//
// The handle is only valid while items stays alive and unmutated by its
// owner. The first mutation through the list detaches it into a private
// buffer and never writes to items.
func Borrow[T any](items []T) *List[T] {
	if items == nil {
		return New[T]()
	}
	return &List[T]{ext: items, n: len(items), st: stateExtern}
}

// Len returns the number of visible items.
func (l *List[T]) Len() int { return l.n }

// Cap returns the capacity of the backing buffer, or the visible length for
// lists without one (extern and null handles cannot grow in place).
func (l *List[T]) Cap() int {
	if l.buf != nil {
		return cap(l.buf.items)
	}
	return l.n
}

// IsNull reports whether the list is in the null state. An empty list that
// has held data (or a spare buffer) is empty but not null.
func (l *List[T]) IsNull() bool { return l.st == stateNull }

// IsEmpty reports whether the list has no visible items.
func (l *List[T]) IsEmpty() bool { return l.n == 0 }

// shared reports whether the backing buffer has other handles on it.
func (l *List[T]) shared() bool {
	return l.st == stateBound && l.buf.refs > 1
}

// data returns the visible window. Read-only: writers must go through own
// first.
func (l *List[T]) data() []T {
	switch l.st {
	case stateBound:
		return l.buf.items[l.off : l.off+l.n]
	case stateExtern:
		return l.ext[l.off : l.off+l.n]
	}
	return nil
}

// At returns the item at index i. It panics when i is out of range.
func (l *List[T]) At(i int) T {
	return l.data()[i]
}

// AtOK returns the item at index i, or false when i is out of range.
func (l *List[T]) AtOK(i int) (T, bool) {
	if i < 0 || i >= l.n {
		var zero T
		return zero, false
	}
	return l.data()[i], true
}

// SetAt replaces the item at index i. It panics when i is out of range.
func (l *List[T]) SetAt(i int, v T) {
	if i < 0 || i >= l.n {
		panic("seq: index out of range")
	}
	l.own(0)
	l.buf.items[l.off+i] = v
}

// Swap exchanges the items at i and j. It panics when either is out of range.
func (l *List[T]) Swap(i, j int) {
	if i < 0 || i >= l.n || j < 0 || j >= l.n {
		panic("seq: index out of range")
	}
	if i == j {
		return
	}
	l.own(0)
	s := l.buf.items
	s[l.off+i], s[l.off+j] = s[l.off+j], s[l.off+i]
}

// own is the write barrier. After it returns the list is bound to a buffer it
// owns exclusively, with at least extra free slots after the window and no
// hidden items past the window end.
//
// Shared buffers are left untouched: the visible window is copied into a
// fresh private buffer and the old reference dropped. Uniquely owned buffers
// are mutated in place; the hidden tail is destructed there so a later append
// cannot resurrect it.
func (l *List[T]) own(extra int) {
	switch l.st {
	case stateNull, stateEmpty:
		if l.buf != nil && cap(l.buf.items) >= extra {
			// reuse the detached spare
			l.st = stateBound
			return
		}
		if l.buf != nil {
			l.buf.release()
		}
		l.buf = newBuffer[T](0, growCap(0, extra))
		l.st = stateBound
	case stateExtern:
		nb := newBuffer[T](l.n, growCap(0, l.n+extra))
		copy(nb.items, l.ext[l.off:l.off+l.n])
		l.buf, l.ext, l.off = nb, nil, 0
		l.st = stateBound
	case stateBound:
		if l.buf.refs > 1 {
			nb := newBuffer[T](l.n, growCap(0, l.n+extra))
			copy(nb.items, l.buf.items[l.off:l.off+l.n])
			l.buf.refs--
			l.buf, l.off = nb, 0
			return
		}
		used := l.off + l.n
		if used < len(l.buf.items) {
			clear(l.buf.items[used:])
			l.buf.items = l.buf.items[:used]
		}
		if cap(l.buf.items)-used >= extra {
			return
		}
		if l.off > 0 && cap(l.buf.items)-l.n >= extra {
			// enough total room: slide the window to the front
			copy(l.buf.items[:l.n], l.buf.items[l.off:used])
			clear(l.buf.items[l.n:used])
			l.buf.items = l.buf.items[:l.n]
			l.off = 0
			return
		}
		nb := newBuffer[T](l.n, growCap(cap(l.buf.items), l.n+extra))
		copy(nb.items, l.buf.items[l.off:used])
		l.buf.release()
		l.buf, l.off = nb, 0
	}
}
