package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders holds the lowercase names of HTTP headers that carry
// credentials. Log attributes with these names are redacted, and the HTTP
// middleware masks the same headers when it logs a request.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

var (
	// sensitiveFields covers secrets from config and connection handling.
	sensitiveFields = []string{"password", "secret", "token", "dsn"}

	// sensitivePrefixes catches variants such as secret_key or api_key_v2.
	sensitivePrefixes = []string{"secret_", "api_key"}

	// sensitiveValues match secrets inside otherwise harmless attributes.
	sensitiveValues = []*regexp.Regexp{
		// Bearer tokens.
		regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
		// JWTs; ten characters per segment skips version strings.
		regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
		// Inline api_key=... or apikey: ...
		regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
		// URLs with credentials, such as postgres://app:pw@db or redis://:pw@cache.
		regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+\-.]*://[^:/\s@]*:[^@\s]+@`),
	}
)

// newRedactAttr returns the masq ReplaceAttr used by every handler New
// builds.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(sensitiveValues))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
