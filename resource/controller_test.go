package resource

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_NilIsNoop(t *testing.T) {
	var c *Controller

	require.NoError(t, c.AcquireMemory(context.Background(), 1<<30))
	assert.True(t, c.TryAcquireMemory(1<<30))
	c.ReleaseMemory(1 << 30)
	assert.Zero(t, c.MemoryUsage())

	require.NoError(t, c.AcquireWorker(context.Background()))
	c.ReleaseWorker()
	require.NoError(t, c.WaitLaunch(context.Background()))
}

func TestController_MemoryTracking(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.AcquireMemory(context.Background(), 100))
	assert.Equal(t, int64(100), c.MemoryUsage())

	c.ReleaseMemory(100)
	assert.Zero(t, c.MemoryUsage())
}

func TestController_MemoryLimit(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 128})

	assert.True(t, c.TryAcquireMemory(100))
	assert.False(t, c.TryAcquireMemory(100))

	c.ReleaseMemory(100)
	assert.True(t, c.TryAcquireMemory(100))
	c.ReleaseMemory(100)
}

func TestController_MemoryLimitBlocksUntilCancel(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 64})
	require.NoError(t, c.AcquireMemory(context.Background(), 64))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.AcquireMemory(ctx, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	c.ReleaseMemory(64)
}

func TestController_WorkerLimit(t *testing.T) {
	c := NewController(Config{MaxWorkers: 1})

	require.NoError(t, c.AcquireWorker(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, c.AcquireWorker(ctx), context.DeadlineExceeded)

	c.ReleaseWorker()
	require.NoError(t, c.AcquireWorker(context.Background()))
	c.ReleaseWorker()
}

func TestRateLimitedWriter(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})

	var buf bytes.Buffer
	w := NewRateLimitedWriter(context.Background(), &buf, c)

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", buf.String())
}

func TestRateLimitedReader(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})

	r := NewRateLimitedReader(context.Background(), bytes.NewReader([]byte("hello")), c)

	out := make([]byte, 5)
	n, err := r.Read(out)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(out))
}

func TestController_LaunchPacing(t *testing.T) {
	c := NewController(Config{LaunchesPerSec: 1000})

	start := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, c.WaitLaunch(context.Background()))
	}
	// 5 launches at 1000/s with burst 1 needs about 4ms.
	assert.GreaterOrEqual(t, time.Since(start), 3*time.Millisecond)
}
