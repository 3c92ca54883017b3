// Package testutil provides testing utilities for bitfilter.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Keys
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.UniqueStrings(1000, 12)
//
// # False Positive Measurement
//
//	rate := testutil.MeasureFalsePositiveRate(probes, f.ContainsMaybe)
package testutil
