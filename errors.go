package bitfilter

import "errors"

var (
	// ErrInvalidCapacity is returned when a filter is constructed with a
	// non-positive word count, or one too large to index.
	ErrInvalidCapacity = errors.New("bitfilter: invalid capacity")

	// ErrNilEncoder is returned when New is called without an Encoder.
	ErrNilEncoder = errors.New("bitfilter: encoder must not be nil")

	// ErrInvalidLayout is returned for an unknown Layout value.
	ErrInvalidLayout = errors.New("bitfilter: invalid layout")

	// ErrInvalidExpectedElements is returned when sizing for a non-positive
	// element count.
	ErrInvalidExpectedElements = errors.New("bitfilter: expected elements must be positive")

	// ErrInvalidFalsePositiveRate is returned when sizing for a rate outside (0, 1).
	ErrInvalidFalsePositiveRate = errors.New("bitfilter: false positive rate must be in (0, 1)")
)
