package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/action-pipeline/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders turns headers into log attributes sorted by name, with the
// values of logging.SensitiveHeaders replaced by "[REDACTED]". Multiple values are
// joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(key)] {
			value = strings.Join(headers[key], ",")
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
