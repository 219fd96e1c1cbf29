// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Srejith/namemybaby/internal/config"
	"github.com/Srejith/namemybaby/internal/logger"
)

var cacheWrites = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "audio_cache_writes_total",
		Help: "Background audio cache writes by outcome.",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(cacheWrites)
}

// Cache write outcomes.
const (
	resultWritten = "written"
	resultFailed  = "failed"
	resultDropped = "dropped"
)

type job struct {
	name string
	task Task
}

// CacheWriter executes tasks on a fixed number of goroutines reading from a
// bounded queue. Every task gets its own timeout context derived from
// context.Background, so it survives the cancellation of the request that
// scheduled it. Failures are logged and counted, never returned.
type CacheWriter struct {
	queue   chan job
	writers int
	timeout time.Duration

	mu      sync.RWMutex
	started bool
	stopped bool
	wg      sync.WaitGroup

	logger *logger.Logger
}

// NewCacheWriter builds a writer from cfg. Non-positive sizes fall back to one
// writer and a queue of one.
func NewCacheWriter(cfg config.Workers, log *logger.Logger) *CacheWriter {
	writers := max(cfg.CacheWriters, 1)
	queueSize := max(cfg.CacheQueueSize, 1)

	return &CacheWriter{
		queue:   make(chan job, queueSize),
		writers: writers,
		timeout: cfg.CacheWriteTimeout,
		logger:  log,
	}
}

// Run implements [Worker]. Calling it more than once has no effect.
func (w *CacheWriter) Run() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started || w.stopped {
		return
	}
	w.started = true

	w.wg.Add(w.writers)
	for i := 0; i < w.writers; i++ {
		go w.loop()
	}
}

// Schedule implements [Scheduler].
func (w *CacheWriter) Schedule(name string, task Task) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.stopped {
		w.logger.Warn().Str("func", "*CacheWriter.Schedule").Str("task", name).Msg("cache writer stopped, task dropped")
		cacheWrites.WithLabelValues(resultDropped).Inc()
		return false
	}

	select {
	case w.queue <- job{name: name, task: task}:
		return true
	default:
		w.logger.Warn().Str("func", "*CacheWriter.Schedule").Str("task", name).Msg("cache write queue is full, task dropped")
		cacheWrites.WithLabelValues(resultDropped).Inc()
		return false
	}
}

// Stop implements [Worker]. It rejects new tasks, waits for the queued ones to
// finish and returns. If the writer was never started the queued tasks are
// run on the calling goroutine.
func (w *CacheWriter) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	started := w.started
	close(w.queue)
	w.mu.Unlock()

	if !started {
		w.wg.Add(1)
		w.loop()
	}
	w.wg.Wait()
}

func (w *CacheWriter) loop() {
	defer w.wg.Done()

	for j := range w.queue {
		w.execute(j)
	}
}

func (w *CacheWriter) execute(j job) {
	ctx := w.logger.WithContext(context.Background())
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			w.logger.Error().Str("func", "*CacheWriter.execute").Str("task", j.name).Interface("panic", r).Msg("cache write panicked")
			cacheWrites.WithLabelValues(resultFailed).Inc()
		}
	}()

	if err := j.task(ctx); err != nil {
		w.logger.Err(err).Str("func", "*CacheWriter.execute").Str("task", j.name).Msg("cache write failed")
		cacheWrites.WithLabelValues(resultFailed).Inc()
		return
	}

	w.logger.Debug().Str("func", "*CacheWriter.execute").Str("task", j.name).Msg("cache write finished")
	cacheWrites.WithLabelValues(resultWritten).Inc()
}
