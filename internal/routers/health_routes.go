package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/Marwanegoudani/nextgenfut/internal/handlers"
	"github.com/Marwanegoudani/nextgenfut/internal/metrics"
)

func HealthRoutes(r *chi.Mux, healthHandler *handlers.HealthHandler) {
	r.Get("/healthz", healthHandler.LivenessHandler)
	r.Get("/readyz", healthHandler.ReadinessHandler)
	r.Handle("/metrics", metrics.Handler())
}
