package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Marwanegoudani/nextgenfut/internal/errs"
	"github.com/Marwanegoudani/nextgenfut/internal/models"
	"github.com/Marwanegoudani/nextgenfut/internal/utils"
)

// AuthHandler manages authentication endpoints.
type AuthHandler struct {
	Repo      UserRepository
	Tokens    TokenRevoker
	JWTSecret string
}

func NewAuthHandler(repo UserRepository, tokens TokenRevoker, secret string) *AuthHandler {
	return &AuthHandler{Repo: repo, Tokens: tokens, JWTSecret: secret}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "invalid request payload")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if len(req.Name) < 2 {
		utils.JSONError(w, http.StatusBadRequest, "invalid_name", "name must be at least 2 characters")
		return
	}
	if !utils.IsEmailValid(req.Email) {
		utils.JSONError(w, http.StatusBadRequest, "invalid_email", "invalid email address")
		return
	}
	if !utils.IsPasswordValid(req.Password) {
		utils.JSONError(w, http.StatusBadRequest, "invalid_password", "password must be at least 6 characters")
		return
	}
	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RolePlayer
	}
	if !role.Valid() {
		utils.JSONError(w, http.StatusBadRequest, "invalid_role", "role must be player, team or scout")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "failed to hash password")
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	switch role {
	case models.RolePlayer:
		user.Player = &models.PlayerProfile{}
	case models.RoleTeam:
		user.Team = &models.TeamProfile{}
	case models.RoleScout:
		user.Scout = &models.ScoutProfile{}
	}

	if err := h.Repo.Create(r.Context(), user); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]any{"user": user.Public()})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "invalid request payload")
		return
	}

	user, err := h.Repo.GetByEmail(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
		return
	}

	signed, err := utils.SignToken(user.ID, user.Name, string(user.Role), h.JWTSecret)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "failed to sign token")
		return
	}
	utils.JSON(w, http.StatusOK, authResponse{Token: signed, User: user.Public()})
}

// LogoutHandler revokes the presented token for its remaining lifetime.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := utils.VerifyToken(r, h.JWTSecret)
	if err != nil {
		utils.WriteError(w, errs.Authentication("authentication required"))
		return
	}
	jti, err := utils.StringClaim(claims, "jti")
	if err != nil {
		// Tokens without a jti cannot be revoked early; they simply expire.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	ttl := time.Until(utils.ClaimExpiry(claims))
	if err := h.Tokens.Revoke(r.Context(), jti, ttl); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "failed to revoke token")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler returns the authenticated user's own record.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := utils.VerifyToken(r, h.JWTSecret)
	if err != nil {
		utils.WriteError(w, errs.Authentication("authentication required"))
		return
	}
	sub, err := utils.StringClaim(claims, "sub")
	if err != nil {
		utils.WriteError(w, errs.Authentication("invalid token"))
		return
	}
	user, err := h.Repo.GetByID(r.Context(), sub)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"user": user})
}
