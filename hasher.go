package bitfilter

import (
	"fmt"

	"github.com/dewaka/bitfilter/internal/hash"
)

// Hasher reduces an encoded element to a 64-bit digest.
//
// Implementations must be deterministic and safe for concurrent use. Two
// filters only agree on membership if they use the same Hasher, Encoder and
// Layout.
type Hasher interface {
	Sum64(data []byte) uint64
}

// HasherFunc adapts a plain function to the Hasher interface.
type HasherFunc func(data []byte) uint64

// Sum64 implements Hasher.
func (f HasherFunc) Sum64(data []byte) uint64 { return f(data) }

// FNV1a is the default Hasher: 64-bit FNV-1a with the standard offset basis.
type FNV1a struct{}

// Sum64 implements Hasher.
func (FNV1a) Sum64(data []byte) uint64 { return hash.FNV1a64(data) }

// String implements fmt.Stringer.
func (FNV1a) String() string { return "fnv1a" }

// XXHash hashes with xxHash64 (seed 0).
type XXHash struct{}

// Sum64 implements Hasher.
func (XXHash) Sum64(data []byte) uint64 { return hash.XXH64(data) }

// String implements fmt.Stringer.
func (XXHash) String() string { return "xxhash" }

// Murmur3 hashes with MurmurHash3 x64 using a fixed Seed.
type Murmur3 struct {
	Seed uint32
}

// Sum64 implements Hasher.
func (m Murmur3) Sum64(data []byte) uint64 { return hash.Murmur3x64(data, m.Seed) }

// String implements fmt.Stringer.
func (m Murmur3) String() string { return fmt.Sprintf("murmur3(seed=%d)", m.Seed) }

func hasherName(h Hasher) string {
	if s, ok := h.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", h)
}
