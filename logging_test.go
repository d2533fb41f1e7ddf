package sievego_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sievego"
)

func TestRun_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := sievego.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	_, err := sievego.Run(context.Background(), 1000,
		sievego.WithBlockSize(100),
		sievego.WithLogger(logger),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "sieve run completed")
	assert.Contains(t, out, "block sieved")
	assert.Contains(t, out, "n=1000")
}

func TestRun_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := sievego.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	_, err := sievego.Run(context.Background(), 1000,
		sievego.WithBlockSize(0),
		sievego.WithLogger(logger),
	)
	require.Error(t, err)

	assert.Contains(t, buf.String(), "sieve run failed")
}

func TestNoopLogger_Silent(t *testing.T) {
	// NoopLogger writes to stderr with an unreachable level; nothing to
	// capture, just exercise the path.
	_, err := sievego.Run(context.Background(), 100,
		sievego.WithLogger(sievego.NoopLogger()),
	)
	require.NoError(t, err)
}
