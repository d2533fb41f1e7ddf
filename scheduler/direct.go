package scheduler

import (
	"context"
	"sync"
)

// Direct launches one goroutine per block and joins with a WaitGroup. This
// is the goroutine rendition of a direct async fan-out: no queueing, no
// worker reuse, scheduling left entirely to the runtime.
type Direct struct{}

// Name returns "direct".
func (Direct) Name() string { return "direct" }

// Run implements Runner.
func (Direct) Run(ctx context.Context, numBlocks uint64, fn BlockFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for block := uint64(0); block < numBlocks; block++ {
		if err := ctx.Err(); err != nil {
			fail(err)
			break
		}

		wg.Add(1)
		go func(block uint64) {
			defer wg.Done()
			if err := fn(ctx, block); err != nil {
				fail(err)
			}
		}(block)
	}

	wg.Wait()
	return firstErr
}
