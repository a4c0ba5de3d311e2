package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/action-pipeline/internal/domain"
)

// Recovery returns middleware that turns a handler panic into a 500 problem
// response of the general kind, logging the value and stack. Clients never
// see the panic value. A panic after headers went out is only logged.
// http.ErrAbortHandler passes through so net/http can drop the connection.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := record(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				if !sr.Committed() {
					dto.WriteErrorResponse(sr, r, domain.NewGeneralError("internal server error", nil))
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
