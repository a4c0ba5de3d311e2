package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/action-pipeline/internal/platform/logging"
)

// Logging returns middleware that logs the start and end of each request. It
// stores a child logger carrying request_id and correlation_id via
// logging.WithLogger, so the action pipeline logs under the same ids.
//
// Completion is logged at INFO, at WARN for 4xx and at ERROR for 5xx. The
// pipeline already logged the cause of a failed action; this line ties it
// to the request.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				attrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(attrs))
				for _, a := range attrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			sr := record(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sr.Status()),
				slog.Int64("bytes", sr.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if rctx := chi.RouteContext(ctx); rctx != nil {
				if action := rctx.URLParam("action"); action != "" {
					attrs = append(attrs, slog.String("action", action))
				}
			}
			child.Log(ctx, completionLevel(sr.Status()), "request completed", attrs...)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
