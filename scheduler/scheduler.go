package scheduler

import (
	"context"
	"errors"

	"github.com/hupe1980/sievego/sieve"
)

var (
	// ErrInvalidBlockSize is returned when a plan is requested with a zero
	// block size.
	ErrInvalidBlockSize = errors.New("block size must be positive")

	// ErrPoolClosed is returned when work is submitted to a closed pool.
	ErrPoolClosed = errors.New("worker pool is closed")
)

// Plan describes the block partition of a sieve run: every block i covers
// the half-open range returned by sieve.BlockBounds(i, BlockSize, SqrtN, N),
// and the union of all blocks with [2, SqrtN] is exactly [2, N].
type Plan struct {
	N         uint64
	BlockSize uint64
	SqrtN     uint64
	NumBlocks uint64
}

// NewPlan validates the inputs and computes the block partition.
//
// Degenerate inputs are resolved here, before any work is scheduled: a zero
// block size is rejected, and n < 2 produces a plan with zero blocks.
func NewPlan(n, blockSize uint64) (Plan, error) {
	if blockSize == 0 {
		return Plan{}, ErrInvalidBlockSize
	}

	sqrtN := sieve.CeilSqrt(n)

	var numBlocks uint64
	if n > sqrtN {
		numBlocks = (n - sqrtN + blockSize - 1) / blockSize
	}

	return Plan{
		N:         n,
		BlockSize: blockSize,
		SqrtN:     sqrtN,
		NumBlocks: numBlocks,
	}, nil
}

// BlockFunc runs the full pipeline for one block. It must be safe to call
// concurrently for distinct blocks.
type BlockFunc func(ctx context.Context, block uint64) error

// Runner launches one unit of work per block and blocks until every unit
// has finished. Block completion order is unspecified; correctness must not
// depend on it.
type Runner interface {
	// Name returns a stable identifier for benchmarks and logs.
	Name() string

	// Run executes fn for every block in [0, numBlocks) and joins. The
	// first error cancels the remaining blocks and is returned after the
	// barrier.
	Run(ctx context.Context, numBlocks uint64, fn BlockFunc) error
}
