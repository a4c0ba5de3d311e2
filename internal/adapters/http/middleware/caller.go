package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/action-pipeline/internal/platform/logging"
)

const (
	headerAccountID = "X-Account-ID"
	headerClientID  = "X-Client-ID"
)

// Caller identifies who sent a request. Both fields are taken verbatim from
// headers; the account is resolved to a principal by the application layer.
type Caller struct {
	AccountID string
	ClientID  string
}

type callerKey struct{}

// WithCaller returns a new context carrying c.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFromContext returns the caller stored by the Caller middleware, or a
// zero Caller.
func CallerFromContext(ctx context.Context) Caller {
	if c, ok := ctx.Value(callerKey{}).(Caller); ok {
		return c
	}
	return Caller{}
}

// CallerIdentity returns middleware that reads X-Account-ID and X-Client-ID
// into the request context. When a request-scoped logger is present it is
// enriched with the account id.
//
// Register it after Logging so the enriched logger replaces the one Logging
// stored.
func CallerIdentity() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := Caller{
				AccountID: strings.TrimSpace(r.Header.Get(headerAccountID)),
				ClientID:  strings.TrimSpace(r.Header.Get(headerClientID)),
			}
			ctx := WithCaller(r.Context(), c)
			if c.AccountID != "" {
				ctx = logging.With(ctx, slog.String("account_id", c.AccountID))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
