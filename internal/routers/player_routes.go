package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Marwanegoudani/nextgenfut/internal/handlers"
)

func PlayerRoutes(r *chi.Mux, availabilityHandler *handlers.AvailabilityHandler, auth func(http.Handler) http.Handler) {
	r.Route("/api/v1/players", func(r chi.Router) {
		r.Use(auth)
		r.Get("/available", availabilityHandler.AvailablePlayersHandler) // Proximity search
		r.Get("/{id}/availability", availabilityHandler.GetHandler)      // Own availability record
		r.Put("/{id}/availability", availabilityHandler.UpdateHandler)   // Update own availability
	})
}
