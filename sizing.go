package bitfilter

import (
	"fmt"
	"math"
)

// ExpectedFalsePositiveRate returns the single-hash false positive
// probability after inserted distinct elements into addressableBits bits:
//
//	1 - (1 - 1/b)^m
func ExpectedFalsePositiveRate(addressableBits uint64, inserted uint64) float64 {
	if inserted == 0 {
		return 0
	}
	if addressableBits == 0 {
		return 1
	}
	return -math.Expm1(float64(inserted) * math.Log1p(-1/float64(addressableBits)))
}

// WordsFor returns the smallest word count for which
// ExpectedFalsePositiveRate stays at or below fpRate after expected inserts
// under the given layout.
//
// Solving 1 - (1 - 1/b)^m <= p for b gives b >= 1 / (1 - (1-p)^(1/m)).
func WordsFor(expected int, fpRate float64, layout Layout) (int, error) {
	if expected <= 0 {
		return 0, ErrInvalidExpectedElements
	}
	if !(fpRate > 0 && fpRate < 1) {
		return 0, ErrInvalidFalsePositiveRate
	}
	if !layout.valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidLayout, layout)
	}

	bits := math.Ceil(1 / -math.Expm1(math.Log1p(-fpRate)/float64(expected)))
	words := math.Ceil(bits / float64(layout.SlotsPerWord()))
	if words > float64(math.MaxInt32) {
		return 0, fmt.Errorf("%w: %g words needed for %d elements at rate %g",
			ErrInvalidCapacity, words, expected, fpRate)
	}

	n := max(int(words), 1)
	// Guard against rounding at the boundary.
	for ExpectedFalsePositiveRate(uint64(n)*layout.SlotsPerWord(), uint64(expected)) > fpRate {
		n++
	}
	return n, nil
}
