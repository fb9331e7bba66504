package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Clone then mutate: neither handle may observe the other's writes.
func TestSharingIsolation(t *testing.T) {
	a := Of(1, 2, 3)
	b := a.Clone()

	require.Equal(t, 2, a.buf.refs)

	b.Append(4)
	assert.Equal(t, []int{1, 2, 3}, a.ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4}, b.ToSlice())

	a.SetAt(0, 99)
	assert.Equal(t, []int{99, 2, 3}, a.ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4}, b.ToSlice())
}

func TestCloneChain(t *testing.T) {
	a := Of(1, 2, 3)
	b := a.Clone()
	c := b.Clone()

	require.Equal(t, 3, a.buf.refs)

	c.SetAt(2, 0)
	b.Release()

	assert.Equal(t, []int{1, 2, 3}, a.ToSlice())
	assert.Equal(t, []int{1, 2, 0}, c.ToSlice())
	assert.Equal(t, 1, a.buf.refs)
}

func TestCopy(t *testing.T) {
	a := Of(1, 2, 3)
	b := a.Copy()

	assert.Equal(t, 1, b.buf.refs, "copy is private immediately")
	assert.Equal(t, 3, b.Cap(), "copy is tight")

	b.SetAt(0, 9)
	assert.Equal(t, []int{1, 2, 3}, a.ToSlice())
}

func TestClearKeepsSpare(t *testing.T) {
	l := Of(1, 2, 3)
	capBefore := l.Cap()

	l.Clear()

	assert.True(t, l.IsEmpty())
	assert.False(t, l.IsNull())

	l.Append(7)
	assert.Equal(t, capBefore, l.Cap(), "spare buffer reused without reallocation")
	assert.Equal(t, []int{7}, l.ToSlice())
}

func TestClearSharedDropsReference(t *testing.T) {
	a := Of(1, 2, 3)
	b := a.Clone()

	b.Clear()

	assert.Equal(t, 1, a.buf.refs)
	assert.Nil(t, b.buf, "a shared buffer is released, not kept as spare")
	assert.Equal(t, []int{1, 2, 3}, a.ToSlice())
}

func TestRelease(t *testing.T) {
	l := Of(1, 2, 3)

	l.Release()

	assert.True(t, l.IsNull())
	assert.Equal(t, 0, l.Len())
}

func TestUnsliceRoundTrip(t *testing.T) {
	l := Of(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	require.True(t, l.Slice(3, 4))
	require.Equal(t, []int{3, 4, 5, 6}, l.ToSlice())

	l.Unslice()

	assert.Equal(t, []int{3, 4, 5, 6}, l.ToSlice())
	assert.Equal(t, 0, l.off)
	assert.Equal(t, l.n, len(l.buf.items), "no retained hidden items")
}

func TestUnsliceShared(t *testing.T) {
	a := Of(0, 1, 2, 3, 4)
	b := a.Clone()
	require.True(t, b.Slice(1, 2))

	b.Unslice()

	assert.Equal(t, []int{1, 2}, b.ToSlice())
	assert.Equal(t, 2, b.Cap(), "shared view detaches to a tight buffer")
	assert.Equal(t, 1, a.buf.refs)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, a.ToSlice())
}

// Hidden tail data must not leak back in after slicing to an empty range.
func TestSliceEndThenAppend(t *testing.T) {
	l := Of(1, 2, 3, 4, 5)

	require.True(t, l.Slice(5, 0))
	l.Append(8, 9)

	assert.Equal(t, []int{8, 9}, l.ToSlice())
}

func TestSliceMiddleThenAppend(t *testing.T) {
	l := Of(1, 2, 3, 4, 5)

	require.True(t, l.Slice(1, 2))
	l.Append(42)

	assert.Equal(t, []int{2, 3, 42}, l.ToSlice())
}

func TestReserve(t *testing.T) {
	l := Of(1)
	l.Reserve(100)

	capBefore := l.Cap()
	require.GreaterOrEqual(t, capBefore, 101)
	for i := 0; i < 100; i++ {
		l.Append(i)
	}
	assert.Equal(t, capBefore, l.Cap())
}

func TestSetCap(t *testing.T) {
	l := Of(1, 2, 3, 4, 5)

	l.SetCap(3)
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice(), "shrinking truncates the tail")
	assert.Equal(t, 3, l.Cap())

	l.SetCap(10)
	assert.Equal(t, 10, l.Cap())
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
}

func TestSetCapShared(t *testing.T) {
	a := Of(1, 2, 3)
	b := a.Clone()

	b.SetCap(8)

	assert.Equal(t, 1, a.buf.refs)
	assert.Equal(t, []int{1, 2, 3}, a.ToSlice())
	assert.Equal(t, []int{1, 2, 3}, b.ToSlice())
}

func TestSubList(t *testing.T) {
	l := Of(0, 1, 2, 3, 4)

	s, ok := l.SubList(1, 3)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())
	assert.Equal(t, 2, l.buf.refs)

	s.SetAt(0, 99)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, l.ToSlice())

	_, ok = l.SubList(3, 3)
	assert.False(t, ok)
}
