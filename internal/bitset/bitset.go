package bitset

import (
	"math/bits"
	"sync/atomic"
)

// Words is fixed-length word storage. Length never changes after creation.
type Words interface {
	// Or sets the bits of mask in word i.
	Or(i int, mask uint64)

	// Test reports whether any bit of mask is set in word i.
	Test(i int, mask uint64) bool

	// Len returns the number of words.
	Len() int

	// OnesCount returns the number of set bits across all words.
	OnesCount() int

	// Snapshot returns a copy of the words.
	Snapshot() []uint64
}

// Plain is unsynchronized word storage.
type Plain []uint64

// NewPlain creates zeroed plain storage with n words.
func NewPlain(n int) Plain {
	return make(Plain, n)
}

// Or implements Words.
func (p Plain) Or(i int, mask uint64) {
	p[i] |= mask
}

// Test implements Words.
func (p Plain) Test(i int, mask uint64) bool {
	return p[i]&mask != 0
}

// Len implements Words.
func (p Plain) Len() int { return len(p) }

// OnesCount implements Words.
func (p Plain) OnesCount() int {
	n := 0
	for _, w := range p {
		n += bits.OnesCount64(w)
	}
	return n
}

// Snapshot implements Words.
func (p Plain) Snapshot() []uint64 {
	out := make([]uint64, len(p))
	copy(out, p)
	return out
}

// Atomic is lock-free word storage safe for concurrent Or and Test.
type Atomic []atomic.Uint64

// NewAtomic creates zeroed atomic storage with n words.
func NewAtomic(n int) Atomic {
	return make(Atomic, n)
}

// Or implements Words.
func (a Atomic) Or(i int, mask uint64) {
	// Already set: no write.
	if a[i].Load()&mask == mask {
		return
	}
	a[i].Or(mask)
}

// Test implements Words.
func (a Atomic) Test(i int, mask uint64) bool {
	return a[i].Load()&mask != 0
}

// Len implements Words.
func (a Atomic) Len() int { return len(a) }

// OnesCount implements Words.
//
// Under concurrent writers the result is a point-in-time lower bound.
func (a Atomic) OnesCount() int {
	n := 0
	for i := range a {
		n += bits.OnesCount64(a[i].Load())
	}
	return n
}

// Snapshot implements Words.
func (a Atomic) Snapshot() []uint64 {
	out := make([]uint64, len(a))
	for i := range a {
		out[i] = a[i].Load()
	}
	return out
}
