// Package queue runs report-generation jobs on a bounded in-memory queue.
package queue

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=mocks/mock_queue.go -package=mocks bizsuite/internal/queue Queue

// Queue errors. The report service maps ErrQueueFull to a retryable 503.
var (
	ErrQueueFull   = errors.New("report queue is at capacity")
	ErrQueueClosed = errors.New("report queue is closed")
)

// Queue holds pending report jobs.
type Queue interface {
	// Enqueue adds a job without blocking. It fails with ErrQueueFull at capacity.
	Enqueue(job ReportJob) error
	// Dequeue blocks until a job is available, the queue closes or ctx ends.
	Dequeue(ctx context.Context) (ReportJob, error)
	Close()
	Len() int
	Capacity() int
}

var _ Queue = (*MemoryQueue)(nil)
