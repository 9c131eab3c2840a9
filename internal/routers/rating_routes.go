package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Marwanegoudani/nextgenfut/internal/handlers"
)

func RatingRoutes(r *chi.Mux, ratingHandler *handlers.RatingHandler, auth func(http.Handler) http.Handler) {
	r.Route("/api/v1/ratings", func(r chi.Router) {
		r.Use(auth)
		r.Post("/", ratingHandler.CreateHandler)                            // Rate a player's match performance
		r.Get("/player/{playerId}", ratingHandler.ListByPlayerHandler)      // Player's received ratings
		r.Get("/player/{playerId}/averages", ratingHandler.AveragesHandler) // Per-skill averages
		r.Get("/match/{matchId}", ratingHandler.ListByMatchHandler)         // All ratings for a match
		r.Patch("/{id}", ratingHandler.UpdateHandler)                       // Amend a rating
		r.Delete("/{id}", ratingHandler.DeleteHandler)                      // Remove a rating
	})
}
