package queue_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/action-pipeline/internal/adapters/queue"
	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

func TestMemory_FIFO(t *testing.T) {
	t.Parallel()
	q := queue.NewMemory(4)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		if err := q.Submit(ctx, domain.UserActionRequest{ID: id, Action: "a"}); err != nil {
			t.Fatalf("Submit(%s) error = %v", id, err)
		}
	}
	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	for _, want := range []string{"1", "2", "3"} {
		got, err := q.Receive(ctx)
		if err != nil {
			t.Fatalf("Receive() error = %v", err)
		}
		if got.ID != want {
			t.Fatalf("Receive().ID = %s, want %s", got.ID, want)
		}
	}
}

func TestMemory_FullFailsFast(t *testing.T) {
	t.Parallel()
	q := queue.NewMemory(1)
	ctx := context.Background()

	if err := q.Submit(ctx, domain.UserActionRequest{ID: "1"}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	err := q.Submit(ctx, domain.UserActionRequest{ID: "2"})
	if !errors.Is(err, queue.ErrQueueFull) {
		t.Fatalf("Submit() error = %v, want ErrQueueFull", err)
	}
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("ErrQueueFull should wrap domain.ErrUnavailable")
	}
}

func TestMemory_ReceiveHonorsContext(t *testing.T) {
	t.Parallel()
	q := queue.NewMemory(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := q.Receive(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Receive() error = %v, want DeadlineExceeded", err)
	}
}

func TestMemory_CloseDrainsThenReportsClosed(t *testing.T) {
	t.Parallel()
	q := queue.NewMemory(2)
	ctx := context.Background()

	if err := q.Submit(ctx, domain.UserActionRequest{ID: "1"}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if err := q.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := q.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}

	if err := q.Submit(ctx, domain.UserActionRequest{ID: "2"}); !errors.Is(err, queue.ErrClosed) {
		t.Fatalf("Submit() after Close error = %v, want ErrClosed", err)
	}
	if got, err := q.Receive(ctx); err != nil || got.ID != "1" {
		t.Fatalf("Receive() = (%+v, %v), want queued item", got, err)
	}
	if _, err := q.Receive(ctx); !errors.Is(err, ports.ErrSourceClosed) {
		t.Fatalf("Receive() on drained queue error = %v, want ErrSourceClosed", err)
	}
	if err := q.HealthCheck(ctx); err == nil {
		t.Fatal("HealthCheck() after Close = nil, want error")
	}
}

func TestMemory_SubmitCanceledContext(t *testing.T) {
	t.Parallel()
	q := queue.NewMemory(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := q.Submit(ctx, domain.UserActionRequest{ID: "1"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Submit() error = %v, want context.Canceled", err)
	}
}
