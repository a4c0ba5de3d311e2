package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TaskHandler   = (*Redis)(nil)
	_ ports.TaskSource    = (*Redis)(nil)
	_ ports.HealthChecker = (*Redis)(nil)
)

const connectTimeout = 5 * time.Second

// Redis is a queue backed by a redis list. Submit appends with RPUSH and
// Receive pops with BLPOP, so items are delivered first in, first out and at
// most once.
type Redis struct {
	client      redis.UniversalClient
	key         string
	pollTimeout time.Duration
}

// Connect creates a redis client from cfg and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewRedis creates a queue on the list named key. pollTimeout bounds each
// BLPOP so Receive notices cancellation.
func NewRedis(client redis.UniversalClient, key string, pollTimeout time.Duration) *Redis {
	if pollTimeout <= 0 {
		pollTimeout = time.Second
	}
	return &Redis{client: client, key: key, pollTimeout: pollTimeout}
}

// Submit appends req to the list as JSON.
func (q *Redis) Submit(ctx context.Context, req domain.UserActionRequest) error {
	b, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encoding task %s: %w", req.ID, err)
	}
	if err := q.client.RPush(ctx, q.key, b).Err(); err != nil {
		return fmt.Errorf("pushing task %s: %w", req.ID, err)
	}
	return nil
}

// Receive blocks until an item is available or ctx is done.
func (q *Redis) Receive(ctx context.Context) (domain.UserActionRequest, error) {
	for {
		res, err := q.client.BLPop(ctx, q.pollTimeout, q.key).Result()
		switch {
		case errors.Is(err, redis.Nil):
			if ctx.Err() != nil {
				return domain.UserActionRequest{}, ctx.Err()
			}
			continue
		case errors.Is(err, redis.ErrClosed):
			return domain.UserActionRequest{}, ErrClosed
		case err != nil:
			if ctx.Err() != nil {
				return domain.UserActionRequest{}, ctx.Err()
			}
			return domain.UserActionRequest{}, fmt.Errorf("popping task: %w", err)
		}

		// BLPOP replies with [key, value].
		if len(res) != 2 {
			return domain.UserActionRequest{}, fmt.Errorf("popping task: unexpected reply of %d elements", len(res))
		}
		var req domain.UserActionRequest
		if err := json.Unmarshal([]byte(res[1]), &req); err != nil {
			return domain.UserActionRequest{}, fmt.Errorf("decoding task: %w", err)
		}
		return req, nil
	}
}

// Len returns the list length.
func (q *Redis) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}

// Name implements ports.HealthChecker.
func (q *Redis) Name() string { return "redis" }

// HealthCheck pings redis.
func (q *Redis) HealthCheck(ctx context.Context) error {
	if err := q.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}
	return nil
}
