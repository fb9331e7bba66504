package hash

import "hash/maphash"

// Hasher hashes comparable keys with a per-instance seed.
//
// equal(a, b) implies Hash(a) == Hash(b) for the same Hasher; hashes from
// different Hasher instances are unrelated.
type Hasher[K comparable] struct {
	seed maphash.Seed
}

// New returns a Hasher with a fresh random seed.
func New[K comparable]() Hasher[K] {
	return Hasher[K]{seed: maphash.MakeSeed()}
}

// Hash returns a 64-bit hash of key, uniformly distributed across the full
// range.
func (h Hasher[K]) Hash(key K) uint64 {
	return maphash.Comparable(h.seed, key)
}
