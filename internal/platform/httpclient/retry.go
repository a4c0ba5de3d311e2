package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/action-pipeline/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// IdempotencyKeyHeader marks a non-idempotent request as safe to replay. The
// receiving service deduplicates on its value.
const IdempotencyKeyHeader = "Idempotency-Key"

// doWithRetry executes req, retrying retryable failures with exponential
// backoff when the request can be replayed. The result is written to resp
// rather than returned so the bodyclose linter stays quiet; the caller closes
// the body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	attempts := c.retryCfg.maxAttempts
	if !replayable(req) {
		attempts = 1
	}

	body, err := bufferBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, hint, lastErr); err != nil {
				return err
			}
		}
		rewind(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if !isRetryable(err) {
				return err
			}
			hint = 0
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}

		hint = retryAfter(r.Header.Get("Retry-After"), time.Now())
		discard(r)
	}

	return lastErr
}

// replayable reports whether req may be sent more than once: idempotent
// methods always, anything else only with an idempotency key.
func replayable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return req.Header.Get(IdempotencyKeyHeader) != ""
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard drains and closes resp so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// pause waits before retry attempt. A server hint from Retry-After wins over
// the computed backoff when it is longer, within maxInterval.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, hint time.Duration, lastErr error) error {
	delay := backoff(attempt, c.retryCfg)
	if hint > delay {
		delay = min(hint, c.retryCfg.maxInterval)
	}

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff returns the delay before retry attempt (1 is the first retry):
// initialInterval * multiplier^(attempt-1), capped at maxInterval, ±25%.
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	delay = min(delay, float64(cfg.maxInterval))
	delay += delay * jitterFraction * (2*rand.Float64() - 1) //nolint:gosec // jitter needs no crypto source
	return time.Duration(max(delay, 0))
}

// retryAfter parses a Retry-After value given either as seconds or as an
// HTTP date. Unparseable or past values yield zero.
func retryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; everything else, network errors
// included, is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether a response status is transient: 429 and
// any 5xx.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
