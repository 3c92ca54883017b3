package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

const (
	// FNVOffset64 is the FNV-1a 64-bit offset basis.
	FNVOffset64 uint64 = 14695981039346656037
	// FNVPrime64 is the FNV-1a 64-bit prime.
	FNVPrime64 uint64 = 1099511628211
)

// FNV1a64 computes the 64-bit FNV-1a digest of data. It does not allocate.
func FNV1a64(data []byte) uint64 {
	h := FNVOffset64
	for _, b := range data {
		h ^= uint64(b)
		h *= FNVPrime64
	}
	return h
}

// XXH64 computes the xxHash64 digest of data with seed 0.
func XXH64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Murmur3x64 computes the MurmurHash3 x64 digest of data with the given seed.
func Murmur3x64(data []byte, seed uint32) uint64 {
	return murmur3.Sum64WithSeed(data, seed)
}
