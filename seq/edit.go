package seq

// Append adds items at the end. Amortized O(1) per item.
func (l *List[T]) Append(items ...T) {
	if len(items) == 0 {
		return
	}
	l.own(len(items))
	used := l.off + l.n
	l.buf.items = l.buf.items[:used+len(items)]
	copy(l.buf.items[used:], items)
	l.n += len(items)
}

// Prepend adds items at the front. When earlier head removals or slicing left
// hidden space before the window, the items land there without shifting
// anything.
func (l *List[T]) Prepend(items ...T) {
	k := len(items)
	if k == 0 {
		return
	}
	if l.st == stateBound && l.buf.refs == 1 && l.off >= k {
		copy(l.buf.items[l.off-k:l.off], items)
		l.off -= k
		l.n += k
		return
	}
	l.Insert(0, items...)
}

// Insert places items before position at. The smaller side of the sequence is
// shifted: when hidden head space exists and the head is the shorter side,
// the head moves left; otherwise the tail moves right. Returns false and
// leaves the list unchanged when at is out of range.
func (l *List[T]) Insert(at int, items ...T) bool {
	if at < 0 || at > l.n {
		return false
	}
	k := len(items)
	if k == 0 {
		return true
	}
	if at == l.n {
		l.Append(items...)
		return true
	}
	if l.st == stateBound && l.buf.refs == 1 && l.off >= k && at <= l.n-at {
		no := l.off - k
		copy(l.buf.items[no:no+at], l.buf.items[l.off:l.off+at])
		copy(l.buf.items[no+at:no+at+k], items)
		l.off = no
		l.n += k
		return true
	}
	l.own(k)
	used := l.off + l.n
	l.buf.items = l.buf.items[:used+k]
	p := l.off + at
	copy(l.buf.items[p+k:], l.buf.items[p:used])
	copy(l.buf.items[p:p+k], items)
	l.n += k
	return true
}

// RemoveRange removes k items starting at position at. Head and tail removals
// are O(1) window adjustments; interior removals close the gap by shifting
// the smaller side. Returns false and leaves the list unchanged when the
// range is out of bounds.
func (l *List[T]) RemoveRange(at, k int) bool {
	if at < 0 || k < 0 || at+k > l.n {
		return false
	}
	if k == 0 {
		return true
	}
	if at == 0 {
		if l.st == stateBound && l.buf.refs == 1 {
			clear(l.buf.items[l.off : l.off+k])
		}
		l.off += k
		l.n -= k
		return true
	}
	if at+k == l.n {
		if l.st == stateBound && l.buf.refs == 1 {
			clear(l.buf.items[l.off+at:])
			l.buf.items = l.buf.items[:l.off+at]
		}
		l.n -= k
		return true
	}
	l.own(0)
	head, tail := at, l.n-at-k
	if head <= tail {
		copy(l.buf.items[l.off+k:l.off+k+head], l.buf.items[l.off:l.off+head])
		clear(l.buf.items[l.off : l.off+k])
		l.off += k
	} else {
		used := l.off + l.n
		copy(l.buf.items[l.off+at:], l.buf.items[l.off+at+k:used])
		clear(l.buf.items[used-k:])
		l.buf.items = l.buf.items[:used-k]
	}
	l.n -= k
	return true
}

// RemoveAt removes the item at position at. Returns false when at is out of
// range.
func (l *List[T]) RemoveAt(at int) bool {
	return l.RemoveRange(at, 1)
}

// Pop removes and returns the last item. O(1).
func (l *List[T]) Pop() (T, bool) {
	if l.n == 0 {
		var zero T
		return zero, false
	}
	v := l.data()[l.n-1]
	l.RemoveRange(l.n-1, 1)
	return v, true
}

// PopFront removes and returns the first item. O(1): the window advances over
// the buffer, which is exactly a slice from the front.
func (l *List[T]) PopFront() (T, bool) {
	if l.n == 0 {
		var zero T
		return zero, false
	}
	v := l.data()[0]
	l.RemoveRange(0, 1)
	return v, true
}

// Slice narrows the view to k items starting at start. O(1): the buffer and
// its refcount are untouched, items outside the range become hidden but stay
// allocated. Returns false and leaves the list unchanged when the range is
// out of bounds.
func (l *List[T]) Slice(start, k int) bool {
	if start < 0 || k < 0 || start+k > l.n {
		return false
	}
	l.off += start
	l.n = k
	return true
}

// SubList returns a new handle over k items starting at start, sharing the
// same buffer. Returns false when the range is out of bounds.
func (l *List[T]) SubList(start, k int) (*List[T], bool) {
	if start < 0 || k < 0 || start+k > l.n {
		return nil, false
	}
	c := l.Clone()
	c.off += start
	c.n = k
	return c, true
}

// Move transplants k items from position srcAt of src into position at of the
// receiver, removing them from src. With independent buffers the range is
// copied exactly once; self-moves and buffer-sharing moves fall back to a
// copy through a temporary. Returns false and changes nothing when either
// range is out of bounds.
func (l *List[T]) Move(at int, src *List[T], srcAt, k int) bool {
	if at < 0 || at > l.n || srcAt < 0 || k < 0 || srcAt+k > src.n {
		return false
	}
	if k == 0 {
		return true
	}
	sameBuf := l.st == stateBound && src.st == stateBound && l.buf == src.buf
	if src == l || sameBuf {
		tmp := make([]T, k)
		copy(tmp, src.data()[srcAt:srcAt+k])
		src.RemoveRange(srcAt, k)
		if src == l {
			if at >= srcAt+k {
				at -= k
			} else if at > srcAt {
				at = srcAt
			}
		}
		return l.Insert(at, tmp...)
	}
	if !l.Insert(at, src.data()[srcAt:srcAt+k]...) {
		return false
	}
	src.RemoveRange(srcAt, k)
	return true
}
