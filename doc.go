// Package bitfilter provides a single-hash probabilistic membership filter.
//
// A Filter answers "might this element have been inserted?" using a fixed
// array of 64-bit words instead of storing elements. It never reports an
// inserted element as absent (no false negatives) and may report an element
// never inserted as present (false positives).
//
// # Quick Start
//
//	f, err := bitfilter.NewString(1024)
//	if err != nil {
//	    return err
//	}
//	f.Insert("alice")
//	f.ContainsMaybe("alice") // true
//	f.ContainsMaybe("bob")   // false, or true on a collision
//
// Or size from an expected element count and target false positive rate:
//
//	f, err := bitfilter.NewWithEstimate[string](10_000, 0.01, bitfilter.StringEncoder)
//
// # Hashing
//
// Each element is turned into bytes by an Encoder and reduced to a 64-bit
// digest by a Hasher. Exactly one digest, and therefore exactly one bit, is
// used per element. The default Hasher is FNV-1a 64; XXHash and Murmur3 are
// available through WithHasher. Digests are deterministic across processes.
//
// Built-in encoders:
//
//	StringEncoder   raw bytes + 0xFF terminator
//	BytesEncoder    8-byte little-endian length + bytes
//	Uint64Encoder   8 bytes little-endian
//	Int64Encoder    8 bytes little-endian
//
// Types with their own canonical form implement Hashable and use
// HashableEncoder.
//
// # Layout
//
// The Layout decides how a digest becomes a (word, bit) position.
//
//	LayoutByte (default)  h mod (words*8);  8 addressable bits per word
//	LayoutWord            h mod (words*64); 64 addressable bits per word
//
// LayoutByte indexes each 64-bit word as if it were a byte, so only one
// eighth of the allocated memory is addressable. It is the default because
// existing filters and their regression data depend on that placement. Users
// that do not need to match existing filters should choose LayoutWord.
//
// # Concurrency
//
// By default a Filter is not synchronized: concurrent Insert calls, or an
// Insert racing a ContainsMaybe, are data races. WithConcurrent switches to
// atomic words updated with lock-free OR, making every method safe for
// concurrent use. InsertAll spreads work over WithWorkers goroutines on a
// concurrent filter.
//
// # Limits
//
// Elements cannot be removed, the filter never grows, and state lives only in
// memory.
package bitfilter
