package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Uint64s generates n random keys using the given RNG.
func (r *RNG) Uint64s(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = r.rand.Uint64()
	}

	return keys
}

// Ints generates n random ints in [0, limit) using the given RNG.
func (r *RNG) Ints(n, limit int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.rand.Intn(limit)
	}

	return keys
}

// Perm generates a random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	return r.rand.Perm(n)
}

// Strings generates n random lowercase strings of the given length.
func (r *RNG) Strings(n, length int) []string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	out := make([]string, n)
	buf := make([]byte, length)
	for i := range out {
		for j := range buf {
			buf[j] = letters[r.rand.Intn(len(letters))]
		}
		out[i] = string(buf)
	}

	return out
}
