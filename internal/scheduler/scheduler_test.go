//go:build unit

package scheduler_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"booking-calculator/internal/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunsSweeps(t *testing.T) {
	var calls atomic.Int32
	s, err := scheduler.New("@every 1s", discardLogger(), scheduler.SweepJob{
		Name: "counter",
		Sweep: func() int {
			calls.Add(1)
			return 1
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Entries())

	s.Start()
	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}

func TestScheduler_RecoversFromPanickingJob(t *testing.T) {
	var calls atomic.Int32
	s, err := scheduler.New("@every 1s", discardLogger(), scheduler.SweepJob{
		Name: "panics",
		Sweep: func() int {
			calls.Add(1)
			panic("boom")
		},
	})
	require.NoError(t, err)

	s.Start()
	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, 5*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}

func TestScheduler_InvalidSpec(t *testing.T) {
	_, err := scheduler.New("every five minutes", discardLogger(), scheduler.SweepJob{Name: "x", Sweep: func() int { return 0 }})
	assert.Error(t, err)
}
