package scheduler

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group runs blocks on an errgroup. The group owns error propagation and
// cancellation: the first failing block cancels the group context seen by
// every other block.
type Group struct {
	// Limit caps the number of blocks in flight. <= 0 means unlimited.
	Limit int
}

// Name returns "errgroup".
func (Group) Name() string { return "errgroup" }

// Run implements Runner.
func (g Group) Run(ctx context.Context, numBlocks uint64, fn BlockFunc) error {
	eg, ctx := errgroup.WithContext(ctx)
	if g.Limit > 0 {
		eg.SetLimit(g.Limit)
	}

	for block := uint64(0); block < numBlocks; block++ {
		block := block
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, block)
		})
	}

	return eg.Wait()
}
