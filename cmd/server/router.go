package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mzaikin/wakecall/internal/handler"
	"github.com/mzaikin/wakecall/internal/middleware"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		// Everything the form touches needs an authenticated user.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Identity)

			r.Post("/calls", h.SubmitCall)
			r.Get("/calls", h.ListCalls)
			r.Delete("/calls/{id}", h.CancelCall)

			r.Get("/stats", h.GetStats)

			r.Get("/draft", h.GetDraft)
			r.Put("/draft", h.SaveDraft)
			r.Delete("/draft", h.DeleteDraft)
		})

		// Operational controls, reachable by probes and tooling.
		r.Post("/refresher/start", h.StartRefresher)
		r.Post("/refresher/stop", h.StopRefresher)
	})

	return r
}
