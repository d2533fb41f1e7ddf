// Package testutil provides testing utilities for sievego.
//
// This package is intended for use in tests and benchmarks only.
// It provides a trusted reference sieve, a trial-division primality check,
// and a seeded RNG for randomized inputs.
package testutil
