// Package hashmap provides a bucketed hash map and set with amortized O(1)
// operations.
//
// Architecture:
//   - The bucket array is a seq.List of bucket pointers; nil slots are absent
//     buckets, so a sparse table costs one pointer per empty slot
//   - A bucket stores its first key inline (no extra allocation) and spills
//     collisions into a small key-sorted overflow sequence, keeping per-bucket
//     lookups at O(log k) instead of O(k)
//   - The bucket count is always a power of two; passing the load-factor
//     threshold doubles the array and rehashes every entry, the same
//     amortization argument as dynamic-array growth
//
// Iteration order is unspecified. The map is not safe for concurrent use.
package hashmap
