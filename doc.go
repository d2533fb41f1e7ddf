// Package sievego computes all primes up to a bound n with a segmented,
// block-parallel Sieve of Eratosthenes.
//
// The candidate range is split into fixed-size blocks above the base-sieve
// region. Base primes up to sqrt(n) are computed once, then every block is
// sieved independently by a concurrent pipeline (bounds -> range sieve ->
// prime extraction -> slot store) and the results are joined behind a full
// barrier, so callers always see either the complete ordered prime list or
// an error.
//
// # Quick Start
//
//	ctx := context.Background()
//	primes, err := sievego.Primes(ctx, 1_000_000)
//
// Tune the run with options:
//
//	result, err := sievego.Run(ctx, 1_000_000,
//	    sievego.WithBlockSize(1<<14),
//	    sievego.WithCells(bitmap.KindBytes),
//	    sievego.WithRunner(scheduler.Pool{Workers: 8}),
//	)
//	primes := result.Primes()
//
// # Orchestration Styles
//
// The same pipeline can be driven by three interchangeable schedulers:
// one goroutine per block (scheduler.Direct), a fixed worker pool
// (scheduler.Pool), or an errgroup (scheduler.Group). All produce identical
// results; they exist to compare orchestration overhead, see the
// benchmark_test directory.
//
// # Cell Representations
//
// Bitmap cells can be packed bits, one byte per cell, or a compressed
// roaring bitmap (package bitmap). Representation is a memory/cache
// trade-off and never changes results.
package sievego
