package queue_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/action-pipeline/internal/adapters/queue"
	"github.com/jsamuelsen11/action-pipeline/internal/domain"
)

// newRedisQueue connects to the redis named by APP_TEST_REDIS_URL and returns
// a queue on a fresh key. The test is skipped when the variable is unset.
func newRedisQueue(t *testing.T) (*queue.Redis, *redis.Client, string) {
	t.Helper()

	url := os.Getenv("APP_TEST_REDIS_URL")
	if url == "" {
		t.Skip("APP_TEST_REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("ParseURL(%q) error = %v", url, err)
	}
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	key := "test:tasks:" + uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), key) })

	return queue.NewRedis(client, key, 100*time.Millisecond), client, key
}

func TestRedis_SubmitReceiveRoundTrip(t *testing.T) {
	t.Parallel()
	q, _, _ := newRedisQueue(t)
	ctx := context.Background()

	want := domain.UserActionRequest{
		ID:        uuid.NewString(),
		Action:    "refreshFollowerCount",
		AccountID: "jane",
		Params:    json.RawMessage(`{"personId":2}`),
	}
	if err := q.Submit(ctx, want); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	got, err := q.Receive(ctx)
	if err != nil {
		t.Fatalf("Receive() error = %v", err)
	}
	if got.ID != want.ID || got.Action != want.Action || string(got.Params) != string(want.Params) {
		t.Fatalf("Receive() = %+v, want %+v", got, want)
	}
}

func TestRedis_ReceiveHonorsContext(t *testing.T) {
	t.Parallel()
	q, _, _ := newRedisQueue(t)

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()

	if _, err := q.Receive(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Receive() error = %v, want DeadlineExceeded", err)
	}
}

func TestRedis_MalformedItem(t *testing.T) {
	t.Parallel()
	q, client, key := newRedisQueue(t)
	ctx := context.Background()

	if err := client.RPush(ctx, key, "not json").Err(); err != nil {
		t.Fatalf("RPush() error = %v", err)
	}
	if _, err := q.Receive(ctx); err == nil {
		t.Fatal("Receive() error = nil, want decode error")
	}
}

func TestRedis_HealthCheck(t *testing.T) {
	t.Parallel()
	q, _, _ := newRedisQueue(t)

	if err := q.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck() error = %v", err)
	}
}
