// Package middleware provides the inbound HTTP middleware. Standard assembles
// the stack the API runs behind; Chain composes any other selection.
package middleware

import "net/http"

// statusRecorder remembers what a handler sent.
type statusRecorder struct {
	http.ResponseWriter
	status int // 0 until the handler writes
	bytes  int64
}

func record(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

// Status reports the status sent, 200 when the handler wrote nothing.
func (r *statusRecorder) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// Committed reports whether headers have gone out.
func (r *statusRecorder) Committed() bool {
	return r.status != 0
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status != 0 {
		return
	}
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the wrapped writer.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
