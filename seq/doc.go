// Package seq provides a generic, reference-counted, copy-on-write sequence.
//
// Architecture:
//   - A List[T] is a cheap handle: a (offset, length) window plus an explicit
//     state tag {null, empty, bound, extern}
//   - Bound handles share a refcounted buffer; Clone is O(1) and never copies
//   - Every mutation passes through a single write barrier that makes the
//     buffer private before touching it, so sharers never observe each other
//   - Extern handles alias caller-owned memory; the first mutation detaches
//     them into a private buffer
//
// # Concurrency Model
//
// Refcounts are plain integers. A List and every List sharing its buffer must
// be confined to one goroutine or externally synchronized. Handles that do not
// share a buffer are independent.
//
// # Failure Model
//
// Out-of-range direct access (At, SetAt, Swap) panics. Checked variants
// (AtOK, Slice, Insert, RemoveRange, Move) report invalid positions with a
// false return and leave the list unchanged. Allocation failure is fatal.
package seq
