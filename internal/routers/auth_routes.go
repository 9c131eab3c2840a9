package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/Marwanegoudani/nextgenfut/internal/handlers"
)

func AuthRoutes(r *chi.Mux, authHandler *handlers.AuthHandler) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", authHandler.RegisterHandler) // User registration
		r.Post("/login", authHandler.LoginHandler)       // User login
		r.Post("/logout", authHandler.LogoutHandler)     // Revoke current token
		r.Get("/me", authHandler.MeHandler)              // Current user
	})
}
