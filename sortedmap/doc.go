// Package sortedmap provides an ordered map and set backed by a single
// key-sorted copy-on-write sequence.
//
// Lookups are O(log n) binary searches; inserts and removals pay the O(n)
// shifting cost of an array but no per-entry allocation. Clone is O(1): both
// maps share the sequence until one of them writes.
//
// The extra over a hash map is ordered access: rank indexing, lower/upper
// bounds, ascending iteration, and bulk range removal in a single shift.
// The map is not safe for concurrent use.
package sortedmap
