// Package bitset provides fixed-size packed word storage for the filter.
//
// Two backends share one interface:
//   - Plain: a []uint64 with no synchronization (single writer)
//   - Atomic: a []atomic.Uint64 updated with lock-free OR
//
// Callers address storage by (word, mask) pairs. Index arithmetic, and the
// decision of how many bits per word are addressable, lives in the caller.
// Bits are only ever set; there is no clear operation.
package bitset
