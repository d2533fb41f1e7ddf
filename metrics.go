package sievego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordRun is called after each full sieve run. primes is the total
	// number of primes found, err is nil if successful.
	RecordRun(n, numBlocks uint64, primes int, duration time.Duration, err error)

	// RecordBlock is called after each block pipeline completes.
	RecordBlock(block uint64, primes int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(uint64, uint64, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBlock(uint64, int, time.Duration)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and benchmarks without external dependencies.
type BasicMetricsCollector struct {
	RunCount      atomic.Int64
	RunErrors     atomic.Int64
	RunTotalNanos atomic.Int64
	PrimesFound   atomic.Int64

	BlockCount      atomic.Int64
	BlockTotalNanos atomic.Int64
}

// RecordRun implements MetricsCollector.
func (c *BasicMetricsCollector) RecordRun(n, numBlocks uint64, primes int, duration time.Duration, err error) {
	c.RunCount.Add(1)
	c.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.RunErrors.Add(1)
		return
	}
	c.PrimesFound.Add(int64(primes))
}

// RecordBlock implements MetricsCollector.
func (c *BasicMetricsCollector) RecordBlock(block uint64, primes int, duration time.Duration) {
	c.BlockCount.Add(1)
	c.BlockTotalNanos.Add(duration.Nanoseconds())
}

// AvgRunDuration returns the mean duration across recorded runs.
func (c *BasicMetricsCollector) AvgRunDuration() time.Duration {
	runs := c.RunCount.Load()
	if runs == 0 {
		return 0
	}
	return time.Duration(c.RunTotalNanos.Load() / runs)
}
