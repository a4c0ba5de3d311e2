package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// defaultReadinessTimeout bounds one readiness probe. A check still running
// at the deadline reports the context error.
const defaultReadinessTimeout = 3 * time.Second

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
	timeout  time.Duration
}

// NewHealthHandler creates a HealthHandler over registry. A timeout of zero
// or less uses the default of three seconds.
func NewHealthHandler(registry ports.HealthRegistry, timeout time.Duration) *HealthHandler {
	if timeout <= 0 {
		timeout = defaultReadinessTimeout
	}
	return &HealthHandler{registry: registry, timeout: timeout}
}

// Liveness handles GET /health/live. The process answering is the check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready: 200 when the database, the task
// queue, the worker and any remote task API all report healthy, 503 with
// each failure's message otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	results := h.registry.CheckAll(ctx)

	checks := make(map[string]string, len(results))
	code, status := http.StatusOK, statusReady
	for name, err := range results {
		if err == nil {
			checks[name] = statusOK
			continue
		}
		checks[name] = err.Error()
		code, status = http.StatusServiceUnavailable, statusNotReady
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
