package sortedmap

import (
	"testing"

	"github.com/hupe1980/cowgo/util"
)

func BenchmarkGet(b *testing.B) {
	const n = 1 << 14
	m := New[int, int]()
	for i := 0; i < n; i++ {
		m.Set(i, i)
	}
	keys := util.NewRNG(1).Ints(b.N, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(keys[i])
	}
}

func BenchmarkSetAscending(b *testing.B) {
	m := New[int, int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Set(i, i)
	}
}

func BenchmarkSetRandom(b *testing.B) {
	keys := util.NewRNG(1).Ints(b.N, 1<<20)
	m := New[int, int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Set(keys[i], i)
	}
}
