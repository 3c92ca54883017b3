package testutil

import (
	"math/rand"
	"sync"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// String returns a random alphanumeric string of the given length.
func (r *RNG) String(length int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stringLocked(length)
}

func (r *RNG) stringLocked(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return string(b)
}

// UniqueStrings returns num distinct random strings of the given length.
// Locks only once per call.
func (r *RNG) UniqueStrings(num, length int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, num)
	out := make([]string, 0, num)
	for len(out) < num {
		s := r.stringLocked(length)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Disjoint splits n unique strings into two non-overlapping sets of sizes a
// and n-a. Useful for insert/probe partitions.
func (r *RNG) Disjoint(n, a, length int) (inserted, probes []string) {
	all := r.UniqueStrings(n, length)
	return all[:a], all[a:]
}

// MeasureFalsePositiveRate returns the fraction of probes for which
// contains reports true. Probes must not have been inserted.
func MeasureFalsePositiveRate[T any](probes []T, contains func(T) bool) float64 {
	if len(probes) == 0 {
		return 0
	}
	hits := 0
	for _, p := range probes {
		if contains(p) {
			hits++
		}
	}
	return float64(hits) / float64(len(probes))
}
