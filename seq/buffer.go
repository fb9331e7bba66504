package seq

// minCapacity is the smallest capacity allocated for a growing buffer.
const minCapacity = 8

// buffer is a shared, reference-counted backing store.
//
// len(items) is the used count: every slot below it holds a live item, every
// slot above it (up to cap) is free tail space. Windows of one or more List
// handles address subranges of the used region.
type buffer[T any] struct {
	items []T
	refs  int
}

func newBuffer[T any](used, capacity int) *buffer[T] {
	return &buffer[T]{items: make([]T, used, capacity), refs: 1}
}

// release drops one reference. The final release zeroes the used region so
// the GC can reclaim anything the items point at; the allocation itself is
// collected once the last handle lets go.
func (b *buffer[T]) release() {
	b.refs--
	if b.refs == 0 {
		clear(b.items)
		b.items = b.items[:0]
	}
}

// growCap returns the capacity to allocate when a buffer of capacity cur must
// hold at least need items. Doubling keeps appends amortized O(1).
func growCap(cur, need int) int {
	if need <= cur {
		return cur
	}
	c := cur * 2
	if c < minCapacity {
		c = minCapacity
	}
	for c < need {
		c *= 2
	}
	return c
}
