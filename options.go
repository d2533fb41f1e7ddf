package sievego

import (
	"github.com/hupe1980/sievego/bitmap"
	"github.com/hupe1980/sievego/resource"
	"github.com/hupe1980/sievego/scheduler"
)

// DefaultBlockSize is the block size used when none is configured. Small
// enough that a packed block bitmap stays L2-resident, large enough that
// per-block orchestration overhead is noise.
const DefaultBlockSize = 1 << 16

type options struct {
	blockSize  uint64
	cells      bitmap.Kind
	runner     scheduler.Runner
	logger     *Logger
	metrics    MetricsCollector
	controller *resource.Controller
}

func defaultOptions() *options {
	return &options{
		blockSize: DefaultBlockSize,
		cells:     bitmap.KindPacked,
		runner:    scheduler.Direct{},
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
	}
}

// Option configures a sieve run.
type Option func(*options)

// WithBlockSize sets the number of candidates per block. Zero is rejected
// with ErrInvalidArgument at run time.
//
// Block size is a pure performance knob: any positive value yields the same
// primes.
func WithBlockSize(blockSize uint64) Option {
	return func(o *options) {
		o.blockSize = blockSize
	}
}

// WithCells selects the bitmap cell representation used for the base and
// range bitmaps.
func WithCells(kind bitmap.Kind) Option {
	return func(o *options) {
		o.cells = kind
	}
}

// WithRunner selects the orchestration style used to fan block pipelines
// out. If nil is passed, scheduler.Direct is used.
func WithRunner(r scheduler.Runner) Option {
	return func(o *options) {
		if r == nil {
			r = scheduler.Direct{}
		}
		o.runner = r
	}
}

// WithLogger configures structured logging for the run. If nil is passed,
// logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics configures a metrics collector. Pass nil to disable metrics
// collection.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithController attaches a resource controller that bounds bitmap memory,
// concurrent workers, and launch rate. A nil controller enforces nothing.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}
