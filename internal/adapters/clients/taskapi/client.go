// Package taskapi submits follow-up work items to a remote task service over
// HTTP. It is the queue adapter used when this process only accepts requests
// and another deployment runs the worker.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/httpclient"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// ServiceName identifies the task API in traces, metrics and health checks.
const ServiceName = "task-api"

const tasksPath = "/api/v1/tasks"

var (
	_ ports.TaskHandler   = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client implements ports.TaskHandler against the task API.
type Client struct {
	hc     *httpclient.Client
	logger *slog.Logger
}

// NewClient creates a Client. hc should be built with ServiceName.
func NewClient(hc *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{hc: hc, logger: logger}
}

// Submit posts item to the task API and returns once it is accepted (202).
// The item id doubles as the idempotency key, so the post may be retried
// without queuing the item twice.
func (c *Client) Submit(ctx context.Context, item domain.UserActionRequest) error {
	if err := c.post(ctx, item); err != nil {
		return fmt.Errorf("submitting task %s (%s): %w", item.ID, item.Action, err)
	}

	c.logger.DebugContext(ctx, "task submitted",
		slog.String("request_id", item.ID),
		slog.String("action", item.Action),
	)
	return nil
}

func (c *Client) post(ctx context.Context, item domain.UserActionRequest) error {
	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshalling task: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.hc.BaseURL()+tasksPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(httpclient.IdempotencyKeyHeader, item.ID)

	resp, err := c.hc.Do(ctx, req)
	if resp == nil {
		c.logger.ErrorContext(ctx, "task submission failed",
			slog.String("request_id", item.ID),
			slog.Any("error", err),
		)
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", cerr))
		}
	}()

	// Exhausted retries return the last response alongside err; the
	// response says more than the retry error does.
	if resp.StatusCode == http.StatusAccepted {
		return nil
	}
	terr := translateResponse(resp)
	c.logger.ErrorContext(ctx, "task rejected",
		slog.String("request_id", item.ID),
		slog.Int("status", resp.StatusCode),
		slog.Any("error", errors.Join(terr, err)),
	)
	return terr
}

// Name returns ServiceName.
func (c *Client) Name() string {
	return ServiceName
}

// HealthCheck reports the task API as the circuit breaker sees it. No call
// is made.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.hc.HealthCheck(ctx)
}
