package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Marwanegoudani/nextgenfut/internal/handlers"
)

func MatchRoutes(r *chi.Mux, matchHandler *handlers.MatchHandler, auth func(http.Handler) http.Handler) {
	r.Route("/api/v1/matches", func(r chi.Router) {
		r.Use(auth)
		r.Post("/", matchHandler.CreateHandler)            // Create match
		r.Get("/", matchHandler.ListHandler)               // List matches with filters
		r.Get("/{id}", matchHandler.GetHandler)            // Match with resolved rosters
		r.Patch("/{id}", matchHandler.UpdateHandler)       // Update status and scores
		r.Delete("/{id}", matchHandler.DeleteHandler)      // Delete match
		r.Post("/{id}/join", matchHandler.JoinHandler)     // Join a team
		r.Post("/{id}/invite", matchHandler.InviteHandler) // Creator invites a player
	})
}
