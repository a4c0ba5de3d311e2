// Package logging builds the service's slog logger and carries
// request-scoped loggers through context.Context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	ctx = logging.With(ctx, slog.String("account_id", id))
//	logging.FromContext(ctx).InfoContext(ctx, "action committed")
//
// Error logs name the operation, the entity involved and the full error
// chain:
//
//	logger.ErrorContext(ctx, "error occurred performing transaction",
//	    slog.String("operation", "Controller.Execute"),
//	    slog.String("action", name),
//	    slog.Any("error", err),
//	)
//
// Behind the HTTP middleware the context logger already carries request_id
// and correlation_id, and account_id once the caller is known.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New creates a logger writing to w. level is any slog level name ("debug",
// "info", "warn", "error", optionally with an offset such as "warn+2");
// unrecognized values mean info. format "text" selects the text handler and
// anything else JSON. Debug level adds source locations. Sensitive
// attributes are redacted.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// With returns a copy of ctx whose logger is the current one extended with
// args.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
