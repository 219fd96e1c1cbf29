// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srejith/namemybaby/internal/config"
	"github.com/Srejith/namemybaby/internal/logger"
)

func newTestCacheWriter(writers, queue int, timeout time.Duration) *CacheWriter {
	return NewCacheWriter(config.Workers{
		CacheWriters:      writers,
		CacheQueueSize:    queue,
		CacheWriteTimeout: timeout,
	}, logger.Nop())
}

// ─────────────────────────────────────────────────────────────────────────────
// Schedule / Stop
// ─────────────────────────────────────────────────────────────────────────────

func TestCacheWriter_RunsScheduledTasks(t *testing.T) {
	// Arrange
	w := newTestCacheWriter(2, 10, time.Second)
	w.Run()

	var done atomic.Int32
	baseWritten := testutil.ToFloat64(cacheWrites.WithLabelValues(resultWritten))

	// Act
	for i := 0; i < 5; i++ {
		require.True(t, w.Schedule("write", func(ctx context.Context) error {
			done.Add(1)
			return nil
		}))
	}
	w.Stop()

	// Assert
	assert.Equal(t, int32(5), done.Load())
	assert.Equal(t, baseWritten+5, testutil.ToFloat64(cacheWrites.WithLabelValues(resultWritten)))
}

func TestCacheWriter_TaskContextIsDetachedWithTimeout(t *testing.T) {
	w := newTestCacheWriter(1, 1, 50*time.Millisecond)
	w.Run()

	var (
		hasDeadline bool
		ctxErr      error
	)
	requestCtx, cancel := context.WithCancel(context.Background())
	cancel()

	w.Schedule("write", func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		ctxErr = ctx.Err()
		return requestCtx.Err()
	})
	w.Stop()

	assert.True(t, hasDeadline)
	assert.NoError(t, ctxErr)
}

func TestCacheWriter_DropsWhenQueueIsFull(t *testing.T) {
	// Arrange: one writer blocked on the first task, queue of one.
	w := newTestCacheWriter(1, 1, time.Second)
	w.Run()

	release := make(chan struct{})
	started := make(chan struct{})
	require.True(t, w.Schedule("blocking", func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	}))
	<-started
	require.True(t, w.Schedule("queued", func(ctx context.Context) error { return nil }))
	baseDropped := testutil.ToFloat64(cacheWrites.WithLabelValues(resultDropped))

	// Act
	accepted := w.Schedule("dropped", func(ctx context.Context) error { return nil })

	// Assert
	assert.False(t, accepted)
	assert.Equal(t, baseDropped+1, testutil.ToFloat64(cacheWrites.WithLabelValues(resultDropped)))

	close(release)
	w.Stop()
}

func TestCacheWriter_StopDrainsQueue(t *testing.T) {
	w := newTestCacheWriter(1, 10, time.Second)

	var mu sync.Mutex
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		require.True(t, w.Schedule(name, func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
			return nil
		}))
	}

	// Never started: Stop runs the queued tasks itself.
	w.Stop()

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestCacheWriter_ScheduleAfterStop(t *testing.T) {
	w := newTestCacheWriter(1, 1, time.Second)
	w.Run()
	w.Stop()

	assert.False(t, w.Schedule("late", func(ctx context.Context) error { return nil }))
	// A second Stop is a no-op.
	w.Stop()
}

func TestCacheWriter_FailuresAreCounted(t *testing.T) {
	w := newTestCacheWriter(1, 2, time.Second)
	w.Run()
	baseFailed := testutil.ToFloat64(cacheWrites.WithLabelValues(resultFailed))

	w.Schedule("error", func(ctx context.Context) error { return errors.New("db down") })
	w.Schedule("panic", func(ctx context.Context) error { panic("boom") })
	w.Stop()

	assert.Equal(t, baseFailed+2, testutil.ToFloat64(cacheWrites.WithLabelValues(resultFailed)))
}

func TestNewCacheWriter_Defaults(t *testing.T) {
	w := newTestCacheWriter(0, 0, 0)

	assert.Equal(t, 1, w.writers)
	assert.Equal(t, 1, cap(w.queue))
}
