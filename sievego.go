package sievego

import (
	"context"
	"io"
	"time"

	"github.com/hupe1980/sievego/bitmap"
	"github.com/hupe1980/sievego/codec"
	"github.com/hupe1980/sievego/scheduler"
	"github.com/hupe1980/sievego/sieve"
)

// Result holds the outcome of a sieve run as ordered slots: slot 0 is the
// base primes, slot i+1 the primes of block i. Concatenating the slots in
// order yields the full ordered prime list up to n.
//
// A Result is immutable once returned.
type Result struct {
	n         uint64
	blockSize uint64
	slots     [][]uint64
}

// N returns the upper bound of the run.
func (r *Result) N() uint64 { return r.n }

// BlockSize returns the block size the run was partitioned with.
func (r *Result) BlockSize() uint64 { return r.blockSize }

// NumBlocks returns the number of blocks above the base-sieve region.
func (r *Result) NumBlocks() uint64 { return uint64(len(r.slots)) - 1 }

// Slot returns the primes of a single slot. Slot 0 holds the base primes.
// The returned slice is shared; callers must not modify it.
func (r *Result) Slot(i uint64) []uint64 { return r.slots[i] }

// Count returns the total number of primes found.
func (r *Result) Count() int {
	total := 0
	for _, s := range r.slots {
		total += len(s)
	}
	return total
}

// Primes concatenates all slots into the ordered, duplicate-free list of
// primes up to n.
func (r *Result) Primes() []uint64 {
	out := make([]uint64, 0, r.Count())
	for _, s := range r.slots {
		out = append(out, s...)
	}
	return out
}

// WriteSnapshot encodes the full prime list to w. A nil compressor selects
// codec.Default.
func (r *Result) WriteSnapshot(w io.Writer, c codec.Compressor) error {
	return codec.EncodeSnapshot(w, r.Primes(), c)
}

// ReadSnapshot decodes a prime list previously written with WriteSnapshot.
func ReadSnapshot(r io.Reader) ([]uint64, error) {
	return codec.DecodeSnapshot(r)
}

// Run computes all primes up to n and returns them as per-block slots.
//
// The computation is all-or-nothing: on any error (bad input, allocation
// failure, cancelled context) no partial result is returned. n < 2 is valid
// and yields an empty result.
func Run(ctx context.Context, n uint64, optFns ...Option) (*Result, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}

	start := time.Now()

	res, err := run(ctx, n, o)

	numBlocks := uint64(0)
	primes := 0
	if res != nil {
		numBlocks = res.NumBlocks()
		primes = res.Count()
	}
	o.metrics.RecordRun(n, numBlocks, primes, time.Since(start), err)
	o.logger.LogRun(ctx, n, numBlocks, primes, err)

	if err != nil {
		return nil, translateError(err)
	}
	return res, nil
}

func run(ctx context.Context, n uint64, o *options) (*Result, error) {
	plan, err := scheduler.NewPlan(n, o.blockSize)
	if err != nil {
		return nil, err
	}

	// Base primes must be complete before any block starts: they are the
	// read-only factor set every range sieve depends on.
	base, err := sieve.BasePrimes(n, o.cells)
	if err != nil {
		return nil, err
	}

	// One slot per block plus slot 0 for the base primes. Each block
	// pipeline owns exactly one slot, so slot writes need no locking; the
	// runner's barrier publishes them to this goroutine.
	slots := make([][]uint64, plan.NumBlocks+1)
	slots[0] = base

	err = o.runner.Run(ctx, plan.NumBlocks, func(ctx context.Context, block uint64) error {
		if err := o.controller.WaitLaunch(ctx); err != nil {
			return err
		}
		if err := o.controller.AcquireWorker(ctx); err != nil {
			return err
		}
		defer o.controller.ReleaseWorker()

		blockStart := time.Now()

		lo, hi, err := sieve.BlockBounds(block, plan.BlockSize, plan.SqrtN, plan.N)
		if err != nil {
			return err
		}

		var cells uint64
		if hi > lo {
			cells = hi - lo
		}

		memBytes := int64(bitmap.SizeBytes(o.cells, cells))
		if err := o.controller.AcquireMemory(ctx, memBytes); err != nil {
			return err
		}
		defer o.controller.ReleaseMemory(memBytes)

		bm, err := sieve.SieveRange(lo, hi, base, o.cells)
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		primes := sieve.ExtractPrimes(bm, lo)
		slots[block+1] = primes

		o.logger.LogBlock(ctx, block, lo, hi, len(primes))
		o.metrics.RecordBlock(block, len(primes), time.Since(blockStart))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		n:         n,
		blockSize: o.blockSize,
		slots:     slots,
	}, nil
}

// Primes computes all primes up to n and returns them as a single ordered
// list. Convenience wrapper around Run.
func Primes(ctx context.Context, n uint64, optFns ...Option) ([]uint64, error) {
	res, err := Run(ctx, n, optFns...)
	if err != nil {
		return nil, err
	}
	return res.Primes(), nil
}
