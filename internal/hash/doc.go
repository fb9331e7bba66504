// Package hash provides the hashing primitives shared by the containers and
// the snapshot format.
//
// # Key hashing
//
// Hasher wraps hash/maphash with a per-instance random seed. Two maps never
// share a seed, so bucket distributions are not reproducible across runs and
// cannot be attacked with precomputed collisions.
//
// # Integrity checksums
//
// Snapshot streams are protected with CRC32-Castagnoli (CRC32C), which is
// hardware accelerated on x86 (SSE4.2) and ARM (CRC extension).
package hash
