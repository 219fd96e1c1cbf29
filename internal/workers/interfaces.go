// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs background work that must outlive the HTTP request
// that produced it.
//
// [CacheWriter] persists synthesized audio after the audio was already
// returned to the client. [Workers] starts and stops a set of workers as one
// unit.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is a background component with an explicit lifecycle.
//
// Run starts the worker and must not block. Stop finishes the work that was
// already accepted and blocks until it is done.
type Worker interface {
	Run()
	Stop()
}

// Task is a unit of background work. ctx carries the per-task timeout and is
// detached from the request that scheduled the task.
type Task func(ctx context.Context) error

// Scheduler accepts tasks for asynchronous execution.
type Scheduler interface {
	// Schedule enqueues task without blocking. It reports false when the task
	// was dropped because the queue is full or the scheduler is stopped.
	Schedule(name string, task Task) bool
}
