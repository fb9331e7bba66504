package seq

// Clone returns a second handle over the same storage in O(1). No items are
// copied; the buffer is copied lazily by whichever handle mutates first.
//
// Cloning an extern list copies the alias, so both handles depend on the
// caller-owned memory. A detached spare buffer is never shared: cloning an
// empty list yields an empty list without one.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{st: l.st, off: l.off, n: l.n}
	switch l.st {
	case stateBound:
		l.buf.refs++
		c.buf = l.buf
	case stateExtern:
		c.ext = l.ext
	}
	return c
}

// Copy returns a private deep copy sized exactly to the visible items.
func (l *List[T]) Copy() *List[T] {
	c := New[T]()
	if l.n > 0 {
		c.buf = newBuffer[T](l.n, l.n)
		copy(c.buf.items, l.data())
		c.n = l.n
		c.st = stateBound
	} else if l.st != stateNull {
		c.st = stateEmpty
	}
	return c
}

// Set replaces the contents with a private copy of items.
func (l *List[T]) Set(items []T) {
	l.Clear()
	l.Append(items...)
}

// Clear removes all items. A uniquely owned buffer is kept as a detached
// spare so the next write can reuse the allocation; a shared buffer is
// dereferenced instead. The list ends up empty but non-null.
func (l *List[T]) Clear() {
	switch l.st {
	case stateBound:
		if l.buf.refs == 1 {
			clear(l.buf.items)
			l.buf.items = l.buf.items[:0]
		} else {
			l.buf.refs--
			l.buf = nil
		}
		l.st = stateEmpty
	case stateExtern:
		l.ext = nil
		l.st = stateEmpty
	}
	l.off, l.n = 0, 0
}

// Release drops all storage, including a detached spare, and resets the list
// to the null state.
func (l *List[T]) Release() {
	if l.buf != nil {
		l.buf.release()
		l.buf = nil
	}
	l.ext = nil
	l.off, l.n, l.st = 0, 0, stateNull
}

// Unslice reclaims storage hidden by earlier slicing. A uniquely owned buffer
// is compacted in place and its hidden items destructed; a shared buffer is
// traded for a tight private copy; an extern alias is materialized. Afterwards
// the buffer holds exactly the visible items, starting at the front.
func (l *List[T]) Unslice() {
	switch l.st {
	case stateEmpty:
		if l.buf != nil {
			l.buf.release()
			l.buf = nil
		}
	case stateExtern:
		nb := newBuffer[T](l.n, l.n)
		copy(nb.items, l.ext[l.off:l.off+l.n])
		l.buf, l.ext, l.off = nb, nil, 0
		l.st = stateBound
	case stateBound:
		if l.buf.refs > 1 {
			nb := newBuffer[T](l.n, l.n)
			copy(nb.items, l.buf.items[l.off:l.off+l.n])
			l.buf.refs--
			l.buf, l.off = nb, 0
			return
		}
		if l.off > 0 {
			copy(l.buf.items[:l.n], l.buf.items[l.off:l.off+l.n])
		}
		clear(l.buf.items[l.n:])
		l.buf.items = l.buf.items[:l.n]
		l.off = 0
	}
}

// Reserve ensures room for extra additional items without further
// reallocation. The buffer is privatized in the process.
func (l *List[T]) Reserve(extra int) {
	if extra <= 0 {
		return
	}
	l.own(extra)
}

// SetCap resizes the backing buffer to exactly c. Shrinking below the current
// length truncates and destructs the tail first.
func (l *List[T]) SetCap(c int) {
	if c < 0 {
		c = 0
	}
	if c < l.n {
		l.RemoveRange(c, l.n-c)
	}
	if l.st == stateBound && l.buf.refs == 1 &&
		cap(l.buf.items) == c && l.off == 0 && len(l.buf.items) == l.n {
		return
	}
	nb := newBuffer[T](l.n, c)
	copy(nb.items, l.data())
	if l.buf != nil {
		l.buf.release()
	}
	l.buf, l.ext, l.off = nb, nil, 0
	l.st = stateBound
}
