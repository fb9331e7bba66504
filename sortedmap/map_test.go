package sortedmap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cowgo/util"
)

func TestSetGet(t *testing.T) {
	m := New[string, int]()

	m.Set("b", 2)
	m.Set("a", 1)
	m.Set("b", 20)

	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 20, v)

	_, ok = m.Get("c")
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())
}

func TestOrderedIteration(t *testing.T) {
	m := New[int, string]()
	for _, k := range []int{5, 1, 3} {
		m.Set(k, "")
	}

	var keys []int
	for k := range m.All() {
		keys = append(keys, k)
	}

	assert.Equal(t, []int{1, 3, 5}, keys)
}

func TestStrictOrderInvariant(t *testing.T) {
	rng := util.NewRNG(7)
	m := New[int, int]()

	for _, k := range rng.Ints(2000, 500) {
		m.Set(k, k)
	}
	for _, k := range rng.Ints(500, 500) {
		m.Delete(k)
	}

	var keys []int
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.True(t, slices.IsSortedFunc(keys, func(a, b int) int { return a - b }))
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i], "duplicate or unordered key")
	}
	assert.Equal(t, len(keys), m.Len())
}

func TestGetOrInsert(t *testing.T) {
	m := New[int, string]()

	v, loaded := m.GetOrInsert(1, "one")
	assert.False(t, loaded)
	assert.Equal(t, "one", v)

	v, loaded = m.GetOrInsert(1, "uno")
	assert.True(t, loaded)
	assert.Equal(t, "one", v)
}

func TestDelete(t *testing.T) {
	m := New[int, int]()
	m.Set(1, 1)
	m.Set(2, 2)

	assert.True(t, m.Delete(1))
	assert.False(t, m.Delete(1))
	assert.Equal(t, 1, m.Len())
}

func TestAt(t *testing.T) {
	m := New[int, string]()
	m.Set(20, "b")
	m.Set(10, "a")

	k, v := m.At(0)
	assert.Equal(t, 10, k)
	assert.Equal(t, "a", v)

	k, _ = m.At(1)
	assert.Equal(t, 20, k)

	assert.Panics(t, func() { m.At(2) })

	assert.True(t, m.DeleteAt(0))
	k, _ = m.At(0)
	assert.Equal(t, 20, k)
	assert.False(t, m.DeleteAt(5))
}

func TestBounds(t *testing.T) {
	m := New[int, int]()
	for _, k := range []int{10, 20, 30} {
		m.Set(k, k)
	}

	// lower_bound returns the first element >= k, or end
	assert.Equal(t, 0, m.LowerBound(5))
	assert.Equal(t, 0, m.LowerBound(10))
	assert.Equal(t, 1, m.LowerBound(11))
	assert.Equal(t, 2, m.LowerBound(30))
	assert.Equal(t, 3, m.LowerBound(31))

	assert.Equal(t, 1, m.UpperBound(10))
	assert.Equal(t, 0, m.UpperBound(5))
	assert.Equal(t, 3, m.UpperBound(30))
}

func TestDeleteRange(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 100; i++ {
		m.Set(i, i)
	}

	removed := m.DeleteRange(10, 90)

	assert.Equal(t, 80, removed)
	assert.Equal(t, 20, m.Len())
	_, ok := m.Get(10)
	assert.False(t, ok)
	_, ok = m.Get(89)
	assert.False(t, ok)
	_, ok = m.Get(9)
	assert.True(t, ok)
	_, ok = m.Get(90)
	assert.True(t, ok)

	assert.Zero(t, m.DeleteRange(200, 300))
	assert.Zero(t, m.DeleteRange(50, 40))
}

func TestMinMax(t *testing.T) {
	m := New[int, string]()

	_, _, ok := m.Min()
	assert.False(t, ok)

	m.Set(2, "b")
	m.Set(1, "a")
	m.Set(3, "c")

	k, v, ok := m.Min()
	require.True(t, ok)
	assert.Equal(t, 1, k)
	assert.Equal(t, "a", v)

	k, _, ok = m.Max()
	require.True(t, ok)
	assert.Equal(t, 3, k)
}

func TestAscend(t *testing.T) {
	m := New[int, int]()
	for _, k := range []int{1, 3, 5, 7} {
		m.Set(k, k)
	}

	var keys []int
	for k := range m.Ascend(4) {
		keys = append(keys, k)
	}
	assert.Equal(t, []int{5, 7}, keys)
}

// Clone is O(1); the backing sequence is shared until one side writes.
func TestClone(t *testing.T) {
	m := New[int, int]()
	m.Set(1, 1)
	m.Set(2, 2)

	c := m.Clone()
	c.Set(2, 20)
	c.Set(3, 3)
	m.Delete(1)

	v, _ := c.Get(2)
	assert.Equal(t, 20, v)
	assert.Equal(t, 3, c.Len())

	v, _ = m.Get(2)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, m.Len())
	_, ok := m.Get(3)
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	m := New[int, int]()
	m.Set(1, 1)

	m.Clear()

	assert.Equal(t, 0, m.Len())
	_, ok := m.Get(1)
	assert.False(t, ok)
}
