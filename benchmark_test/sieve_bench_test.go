package benchmark_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/sievego"
	"github.com/hupe1980/sievego/bitmap"
	"github.com/hupe1980/sievego/scheduler"
)

const benchN = 10_000_000

func benchRunners() []scheduler.Runner {
	return []scheduler.Runner{
		scheduler.Direct{},
		scheduler.Pool{},
		scheduler.Group{},
	}
}

// BenchmarkOrchestrationStyles compares the same block pipeline driven by
// the three runners: goroutine-per-block, fixed worker pool, errgroup.
func BenchmarkOrchestrationStyles(b *testing.B) {
	ctx := context.Background()

	for _, r := range benchRunners() {
		b.Run(r.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				res, err := sievego.Run(ctx, benchN,
					sievego.WithRunner(r),
				)
				if err != nil {
					b.Fatal(err)
				}
				if res.Count() == 0 {
					b.Fatal("no primes")
				}
			}
		})
	}
}

// BenchmarkCellKinds compares the bitmap cell encodings under the default
// runner. The byte-per-cell form trades memory for branch-free stores;
// roaring trades CPU for compression.
func BenchmarkCellKinds(b *testing.B) {
	ctx := context.Background()

	for _, kind := range []bitmap.Kind{bitmap.KindPacked, bitmap.KindBytes, bitmap.KindRoaring} {
		b.Run(kind.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := sievego.Run(ctx, benchN,
					sievego.WithCells(kind),
				); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkBlockSize sweeps block granularity: small blocks stress the
// orchestration harness, large blocks stress cache behavior.
func BenchmarkBlockSize(b *testing.B) {
	ctx := context.Background()

	for _, blockSize := range []uint64{1 << 12, 1 << 16, 1 << 20} {
		b.Run(fmt.Sprintf("block_%d", blockSize), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := sievego.Run(ctx, benchN,
					sievego.WithBlockSize(blockSize),
				); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkStyleByKind is the full matrix the original benchmark program
// ran: every orchestration style against every cell encoding.
func BenchmarkStyleByKind(b *testing.B) {
	ctx := context.Background()

	for _, r := range benchRunners() {
		for _, kind := range []bitmap.Kind{bitmap.KindPacked, bitmap.KindBytes} {
			b.Run(fmt.Sprintf("%s/%s", r.Name(), kind), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := sievego.Run(ctx, benchN,
						sievego.WithRunner(r),
						sievego.WithCells(kind),
					); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkPoolWorkers sweeps pool sizes against GOMAXPROCS-default.
func BenchmarkPoolWorkers(b *testing.B) {
	ctx := context.Background()

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers_%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := sievego.Run(ctx, benchN,
					sievego.WithRunner(scheduler.Pool{Workers: workers}),
				); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
