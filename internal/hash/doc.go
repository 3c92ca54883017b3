// Package hash provides the 64-bit non-cryptographic digests used to place
// elements in the filter.
//
// All functions are deterministic: no per-process seed randomization. The
// same input always yields the same digest across runs and binaries.
//
//	Function      Source
//	FNV1a64       inline FNV-1a (offset 0xcbf29ce484222325, prime 0x100000001b3)
//	XXH64         github.com/cespare/xxhash/v2
//	Murmur3x64    github.com/spaolacci/murmur3 (x64_128, first half)
//
// None of these are hardened against adversarial inputs.
package hash
