// Package http is the inbound HTTP adapter: routes, handlers and the server
// lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/action-pipeline/internal/domain"
)

// Routes are the handlers the router mounts. Tasks is nil on instances
// without a local queue, and the intake route is then left out.
type Routes struct {
	Actions *handlers.ActionHandler
	Tasks   *handlers.TaskIntakeHandler
	Health  *handlers.HealthHandler
}

// NewRouter mounts routes behind mws, outermost first:
//
//	GET  /health/live
//	GET  /health/ready
//	GET  /api/v1/actions
//	POST /api/v1/actions/{action}
//	POST /api/v1/tasks
//
// Unknown paths get a problem+json 404.
func NewRouter(routes Routes, mws ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(mws...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, domain.ErrNotFound)
	})

	r.Get("/health/live", routes.Health.Liveness)
	r.Get("/health/ready", routes.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/actions", routes.Actions.ListActions)
		r.Post("/actions/{action}", routes.Actions.Execute)
		if routes.Tasks != nil {
			r.Post("/tasks", routes.Tasks.Submit)
		}
	})
	return r
}
