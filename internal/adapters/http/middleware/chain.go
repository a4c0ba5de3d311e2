package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/action-pipeline/internal/platform/telemetry"
)

// Middleware wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler

// Chain composes middleware into one. The first argument is the outermost:
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to:
//
//	Recovery(RequestID(Logging(handler)))
func Chain(middlewares ...Middleware) Middleware {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Standard is the stack every API route runs behind:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → CallerIdentity → Timeout
//
// Ids are assigned before telemetry and logging so both see them, and the
// caller is read after the request logger exists so the account id can be
// added to it. Timeout is innermost so that only the handler, and the action
// transaction inside it, runs on the deadline. metrics may be nil.
func Standard(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) Middleware {
	return Chain(
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		CallerIdentity(),
		Timeout(timeout),
	)
}
