// Package http provides the host shell: the inbound HTTP adapter through
// which a remote renderer reads state, posts messages and follows the
// engine's event streams.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/delivery-core/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all host shell routes registered.
// middlewares apply to every route, in the order given. Request/response
// routes are additionally bounded by requestTimeout; event streams are not.
// A zero requestTimeout disables the bound.
func NewRouter(
	engineHandler *handlers.EngineHandler,
	healthHandler *handlers.HealthHandler,
	requestTimeout time.Duration,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	bounded := func(r chi.Router) {
		if requestTimeout > 0 {
			r.Use(middleware.Timeout(requestTimeout))
		}
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Group(func(r chi.Router) {
		bounded(r)
		r.Get("/health/live", healthHandler.Liveness)
		r.Get("/health/ready", healthHandler.Readiness)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			bounded(r)
			r.Get("/state", engineHandler.State)
			r.Post("/messages", engineHandler.PostMessage)
		})

		// Event streams.
		r.Get("/state/stream", engineHandler.StateStream)
		r.Get("/notifications", engineHandler.Notifications)
		r.Get("/commands", engineHandler.Commands)
	})

	return r
}
