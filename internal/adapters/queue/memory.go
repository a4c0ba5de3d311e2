// Package queue provides follow-up work queues implementing ports.TaskHandler
// (the producer side used by task actions) and ports.TaskSource (the consumer
// side used by the worker).
package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TaskHandler   = (*Memory)(nil)
	_ ports.TaskSource    = (*Memory)(nil)
	_ ports.HealthChecker = (*Memory)(nil)
)

var (
	// ErrQueueFull is returned by Submit when a bounded queue has no room.
	ErrQueueFull = fmt.Errorf("queue full: %w", domain.ErrUnavailable)

	// ErrClosed is returned by Submit after Close, and by Receive once a
	// closed queue is empty.
	ErrClosed = fmt.Errorf("queue: %w", ports.ErrSourceClosed)
)

// Memory is a bounded in-process queue. Submit never blocks.
type Memory struct {
	mu     sync.RWMutex
	items  chan domain.UserActionRequest
	closed bool
}

// NewMemory creates a queue holding at most capacity items. A capacity below
// 1 is raised to 1.
func NewMemory(capacity int) *Memory {
	if capacity < 1 {
		capacity = 1
	}
	return &Memory{items: make(chan domain.UserActionRequest, capacity)}
}

// Submit enqueues req, failing fast with ErrQueueFull when the queue is at
// capacity.
func (q *Memory) Submit(ctx context.Context, req domain.UserActionRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrClosed
	}
	select {
	case q.items <- req:
		return nil
	default:
		return ErrQueueFull
	}
}

// Receive blocks until an item is available, ctx is done, or the queue is
// closed and empty.
func (q *Memory) Receive(ctx context.Context) (domain.UserActionRequest, error) {
	select {
	case req, ok := <-q.items:
		if !ok {
			return domain.UserActionRequest{}, ErrClosed
		}
		return req, nil
	case <-ctx.Done():
		return domain.UserActionRequest{}, ctx.Err()
	}
}

// Len returns the number of queued items.
func (q *Memory) Len() int { return len(q.items) }

// Close stops accepting items. Items already queued can still be received.
func (q *Memory) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	q.closed = true
	close(q.items)
	return nil
}

// Name implements ports.HealthChecker.
func (q *Memory) Name() string { return "task-queue" }

// HealthCheck reports an error once the queue is closed.
func (q *Memory) HealthCheck(context.Context) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return errors.New("queue closed")
	}
	return nil
}
