package bitfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashers_Deterministic(t *testing.T) {
	hashers := []Hasher{FNV1a{}, XXHash{}, Murmur3{}, Murmur3{Seed: 3}}
	data := []byte("deterministic")

	for _, h := range hashers {
		assert.Equal(t, h.Sum64(data), h.Sum64([]byte("deterministic")), hasherName(h))
	}
}

func TestFNV1a_KnownDigest(t *testing.T) {
	assert.Equal(t, uint64(0x922546e07c5a787c), FNV1a{}.Sum64(StringEncoder(nil, "Hello")))
}

func TestHasherFunc(t *testing.T) {
	constant := HasherFunc(func([]byte) uint64 { return 3 })

	f, err := NewString(1, WithHasher(constant))
	require.NoError(t, err)

	f.Insert("anything")
	// Every element maps to bit 3 of word 0.
	assert.Equal(t, []uint64{1 << 3}, f.Words())
	assert.True(t, f.ContainsMaybe("something else"))
}

func TestWithHasher_NilFallsBack(t *testing.T) {
	f, err := NewString(10, WithHasher(nil))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x922546e07c5a787c), f.Hash("Hello"))
}

func TestHasherName(t *testing.T) {
	assert.Equal(t, "fnv1a", hasherName(FNV1a{}))
	assert.Equal(t, "xxhash", hasherName(XXHash{}))
	assert.Equal(t, "murmur3(seed=7)", hasherName(Murmur3{Seed: 7}))
	assert.Equal(t, "bitfilter.HasherFunc", hasherName(HasherFunc(nil)))
}

func TestHashers_ChangePlacement(t *testing.T) {
	fnv, err := NewString(1000)
	require.NoError(t, err)
	xx, err := NewString(1000, WithHasher(XXHash{}))
	require.NoError(t, err)

	assert.NotEqual(t, fnv.Hash("Hello"), xx.Hash("Hello"))
}
