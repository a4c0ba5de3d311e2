package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/logging"
)

// Timeout bounds each request to timeout. A handler still running at the
// deadline is answered with a 504 problem response, and its context is
// canceled so an open transaction rolls back rather than committing behind
// the client's back. A timeout of zero or less disables the middleware.
//
// The handler writes into a buffer; only one of the handler and the deadline
// reaches the client. A handler panic resurfaces on the serving goroutine.
func Timeout(timeout time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			buf := &bufferedResponse{header: make(http.Header)}
			finished := serveAsync(next, buf, r.WithContext(ctx))

			select {
			case p, panicked := <-finished:
				if panicked {
					panic(p)
				}
				buf.copyTo(w)
			case <-ctx.Done():
				buf.abandon()
				logging.FromContext(r.Context()).WarnContext(r.Context(), "request timed out",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", timeout),
				)
				dto.WriteErrorResponse(w, r, ctx.Err())
			}
		})
	}
}

// serveAsync runs h in its own goroutine. The returned channel yields the
// panic value if h panicked and is closed once h returns.
func serveAsync(h http.Handler, w http.ResponseWriter, r *http.Request) <-chan any {
	finished := make(chan any, 1)
	go func() {
		defer close(finished)
		defer func() {
			if p := recover(); p != nil {
				finished <- p
			}
		}()
		h.ServeHTTP(w, r)
	}()
	return finished
}

// bufferedResponse holds a handler's response until Timeout decides who
// answers. Once abandoned, writes fail with http.ErrHandlerTimeout.
type bufferedResponse struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	status    int
	abandoned bool
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 && !b.abandoned {
		b.status = code
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedResponse) abandon() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.abandoned = true
}

func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	_, _ = b.body.WriteTo(w)
}
