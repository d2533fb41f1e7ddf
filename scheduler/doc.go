// Package scheduler provides the block-parallel execution harness for the
// segmented sieve.
//
// A Plan partitions the candidate range above the base-sieve region into
// fixed-size blocks. A Runner fans one unit of work out per block and joins
// on completion; the join is a full barrier, so callers never observe
// partial results.
//
// Three interchangeable runners express the same scatter/gather in different
// orchestration styles, which is the axis the benchmarks compare:
//
//   - Direct: one goroutine per block (the natural Go rendition of a
//     fire-and-forget async fan-out)
//   - Pool: a fixed pool of worker goroutines fed from a channel
//   - Group: errgroup with an optional concurrency limit
//
// Any error inside a single block is fatal to the whole run: remaining
// blocks are cancelled and the first error is returned from the barrier.
package scheduler
