// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Base middleware is applied globally in the order given. The timeout
// middleware is applied to the JSON endpoints only: the board stream holds
// its connection open for the lifetime of the subscriber, so it must not run
// under a request deadline.
func NewRouter(
	boardHandler *handlers.BoardHandler,
	healthHandler *handlers.HealthHandler,
	streamHandler http.Handler,
	timeout func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Group(func(r chi.Router) {
		r.Use(timeout)
		r.Get("/health/live", healthHandler.Liveness)
		r.Get("/health/ready", healthHandler.Readiness)
	})

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Method(http.MethodGet, "/board/stream", streamHandler)

		r.Group(func(r chi.Router) {
			r.Use(timeout)

			r.Get("/board", boardHandler.GetBoard)

			r.Post("/projects", boardHandler.CreateProject)
			r.Get("/projects/{id}", boardHandler.GetProject)
			r.Post("/projects/{id}/move", boardHandler.MoveProject)
		})
	})

	return r
}
