package bitfilter

import "fmt"

// Layout selects how a digest is mapped onto the word array.
type Layout uint8

const (
	// LayoutByte addresses 8 bits per 64-bit word: index = h mod (words*8),
	// word = index/8, bit = index%8. Only the low byte of every word is ever
	// touched. Kept as the default for placement compatibility.
	LayoutByte Layout = iota

	// LayoutWord addresses all 64 bits per word: index = h mod (words*64),
	// word = index/64, bit = index%64. Same memory, 8x the addressable bits.
	LayoutWord
)

// SlotsPerWord returns the number of addressable bits in each word.
func (l Layout) SlotsPerWord() uint64 {
	if l == LayoutWord {
		return 64
	}
	return 8
}

func (l Layout) shift() uint {
	if l == LayoutWord {
		return 6
	}
	return 3
}

// locate maps h onto (word, bit) for a filter of the given word count.
// words must be positive; the returned word is always < words.
func (l Layout) locate(h uint64, words uint64) (word uint64, bit uint64) {
	index := h % (words << l.shift())
	return index >> l.shift(), index & (l.SlotsPerWord() - 1)
}

func (l Layout) valid() bool {
	return l == LayoutByte || l == LayoutWord
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case LayoutByte:
		return "byte"
	case LayoutWord:
		return "word"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}
