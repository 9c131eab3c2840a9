// Package middleware holds the HTTP middleware shared by all routes.
package middleware

import (
	"context"
	"net/http"

	"github.com/Marwanegoudani/nextgenfut/internal/utils"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userNameKey contextKey = "userName"
	userRoleKey contextKey = "userRole"
)

// TokenChecker reports whether a token id has been revoked by logout.
type TokenChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// RequireAuth validates the bearer token, rejects revoked tokens, and injects
// the caller's identity into the request context.
func RequireAuth(secret string, tokens TokenChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := utils.VerifyToken(r, secret)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "authentication_required", "authentication required")
				return
			}

			if tokens != nil {
				if jti, err := utils.StringClaim(claims, "jti"); err == nil {
					revoked, err := tokens.IsRevoked(r.Context(), jti)
					if err != nil {
						utils.JSONError(w, http.StatusInternalServerError, "internal_error", "unexpected error")
						return
					}
					if revoked {
						utils.JSONError(w, http.StatusUnauthorized, "token_revoked", "token has been revoked")
						return
					}
				}
			}

			sub, err := utils.StringClaim(claims, "sub")
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, sub)
			if name, err := utils.StringClaim(claims, "name"); err == nil {
				ctx = context.WithValue(ctx, userNameKey, name)
			}
			if role, err := utils.StringClaim(claims, "role"); err == nil {
				ctx = context.WithValue(ctx, userRoleKey, role)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated caller's id, empty when unauthenticated.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// UserName returns the authenticated caller's display name.
func UserName(ctx context.Context) string {
	name, _ := ctx.Value(userNameKey).(string)
	return name
}

// UserRole returns the authenticated caller's role.
func UserRole(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}

// WithUser injects an identity into a context, used by tests.
func WithUser(ctx context.Context, id, name, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, id)
	ctx = context.WithValue(ctx, userNameKey, name)
	return context.WithValue(ctx, userRoleKey, role)
}
