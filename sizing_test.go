package bitfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedFalsePositiveRate(t *testing.T) {
	assert.Zero(t, ExpectedFalsePositiveRate(64, 0))
	assert.Equal(t, 1.0, ExpectedFalsePositiveRate(0, 3))
	assert.Equal(t, 1.0, ExpectedFalsePositiveRate(1, 5))
	assert.InDelta(t, 0.125, ExpectedFalsePositiveRate(8, 1), 1e-12)
	assert.InDelta(t, 0.01, ExpectedFalsePositiveRate(100, 1), 1e-12)

	// More inserts, higher rate; more bits, lower rate.
	assert.Less(t, ExpectedFalsePositiveRate(1000, 10), ExpectedFalsePositiveRate(1000, 100))
	assert.Less(t, ExpectedFalsePositiveRate(10_000, 100), ExpectedFalsePositiveRate(1000, 100))
}

func TestWordsFor(t *testing.T) {
	tests := []struct {
		expected int
		fpRate   float64
		layout   Layout
		want     int
	}{
		{1000, 0.01, LayoutByte, 12438},
		{1000, 0.01, LayoutWord, 1555},
		{10_000, 0.001, LayoutByte, 1249375},
		{10_000, 0.001, LayoutWord, 156172},
		{1, 0.5, LayoutByte, 1},
		{1, 0.5, LayoutWord, 1},
	}

	for _, tc := range tests {
		got, err := WordsFor(tc.expected, tc.fpRate, tc.layout)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "WordsFor(%d, %g, %s)", tc.expected, tc.fpRate, tc.layout)

		slots := tc.layout.SlotsPerWord()
		assert.LessOrEqual(t, ExpectedFalsePositiveRate(uint64(got)*slots, uint64(tc.expected)), tc.fpRate)
		if got > 1 {
			assert.Greater(t, ExpectedFalsePositiveRate(uint64(got-1)*slots, uint64(tc.expected)), tc.fpRate)
		}
	}
}

func TestWordsFor_InvalidInput(t *testing.T) {
	_, err := WordsFor(0, 0.01, LayoutByte)
	require.ErrorIs(t, err, ErrInvalidExpectedElements)

	_, err = WordsFor(-5, 0.01, LayoutByte)
	require.ErrorIs(t, err, ErrInvalidExpectedElements)

	for _, p := range []float64{0, 1, -0.1, 1.5} {
		_, err = WordsFor(100, p, LayoutByte)
		require.ErrorIs(t, err, ErrInvalidFalsePositiveRate, "fpRate=%g", p)
	}

	_, err = WordsFor(100, 0.01, Layout(7))
	require.ErrorIs(t, err, ErrInvalidLayout)

	_, err = WordsFor(1<<40, 1e-9, LayoutByte)
	require.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestNewWithEstimate(t *testing.T) {
	f, err := NewWithEstimate[string](1000, 0.01, StringEncoder, WithLayout(LayoutWord))
	require.NoError(t, err)
	assert.Equal(t, 1555, f.WordCount())
	assert.Equal(t, LayoutWord, f.Layout())

	g, err := NewWithEstimate[string](1000, 0.01, StringEncoder)
	require.NoError(t, err)
	assert.Equal(t, 12438, g.WordCount())

	_, err = NewWithEstimate[string](0, 0.01, StringEncoder)
	require.ErrorIs(t, err, ErrInvalidExpectedElements)
}
