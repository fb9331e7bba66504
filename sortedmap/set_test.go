package sortedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Ordered(t *testing.T) {
	s := NewSet[int]()

	for _, k := range []int{5, 1, 3} {
		assert.True(t, s.Add(k))
	}
	assert.False(t, s.Add(3))

	var keys []int
	for k := range s.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []int{1, 3, 5}, keys)
}

func TestSet_Bounds(t *testing.T) {
	s := NewSet[string]()
	s.Add("b")
	s.Add("d")
	s.Add("f")

	assert.Equal(t, 1, s.LowerBound("c"))
	assert.Equal(t, 1, s.LowerBound("d"))
	assert.Equal(t, 2, s.UpperBound("d"))
	assert.Equal(t, "d", s.At(1))

	min, ok := s.Min()
	require.True(t, ok)
	assert.Equal(t, "b", min)
	max, ok := s.Max()
	require.True(t, ok)
	assert.Equal(t, "f", max)
}

func TestSet_DeleteRange(t *testing.T) {
	s := NewSet[string]()
	for _, k := range []string{"app", "apple", "apricot", "banana", "cherry"} {
		s.Add(k)
	}

	// drop the whole "ap" prefix in one shift
	removed := s.DeleteRange("ap", "aq")

	assert.Equal(t, 3, removed)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("banana"))
	assert.False(t, s.Contains("apple"))
}

func TestSet_CloneAscend(t *testing.T) {
	s := NewSet[int]()
	s.Add(1)
	s.Add(2)

	c := s.Clone()
	c.Delete(1)

	assert.True(t, s.Contains(1))
	assert.False(t, c.Contains(1))

	var keys []int
	for k := range s.Ascend(2) {
		keys = append(keys, k)
	}
	assert.Equal(t, []int{2}, keys)
}
