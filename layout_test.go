package bitfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout_Locate(t *testing.T) {
	const hello = uint64(0x922546e07c5a787c) // FNV-1a("Hello" + 0xFF)

	tests := []struct {
		layout Layout
		words  uint64
		word   uint64
		bit    uint64
	}{
		{LayoutByte, 10, 7, 4},
		{LayoutWord, 10, 5, 60},
		{LayoutByte, 1, 0, 4},
		{LayoutWord, 1, 0, 60},
	}

	for _, tc := range tests {
		word, bit := tc.layout.locate(hello, tc.words)
		assert.Equal(t, tc.word, word, "%s/%d word", tc.layout, tc.words)
		assert.Equal(t, tc.bit, bit, "%s/%d bit", tc.layout, tc.words)
	}
}

func TestLayout_LocateInRange(t *testing.T) {
	for _, layout := range []Layout{LayoutByte, LayoutWord} {
		for _, words := range []uint64{1, 2, 7, 1000} {
			for _, h := range []uint64{0, 1, 63, 64, 1<<63 + 5, ^uint64(0)} {
				word, bit := layout.locate(h, words)
				assert.Less(t, word, words)
				assert.Less(t, bit, layout.SlotsPerWord())
			}
		}
	}
}

func TestLayout_String(t *testing.T) {
	assert.Equal(t, "byte", LayoutByte.String())
	assert.Equal(t, "word", LayoutWord.String())
	assert.Equal(t, "Layout(9)", Layout(9).String())

	assert.Equal(t, uint64(8), LayoutByte.SlotsPerWord())
	assert.Equal(t, uint64(64), LayoutWord.SlotsPerWord())
}
