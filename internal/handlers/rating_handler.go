package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Marwanegoudani/nextgenfut/internal/middleware"
	"github.com/Marwanegoudani/nextgenfut/internal/models"
	"github.com/Marwanegoudani/nextgenfut/internal/utils"
)

// RatingHandler adapts HTTP requests to the rating service.
type RatingHandler struct {
	svc RatingService
}

func NewRatingHandler(svc RatingService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

type createRatingRequest struct {
	MatchID  string        `json:"matchId"`
	PlayerID string        `json:"playerId"`
	Skills   models.Skills `json:"skills"`
	Comments string        `json:"comments"`
}

type updateRatingRequest struct {
	Skills   models.SkillsPatch `json:"skills"`
	Comments *string            `json:"comments"`
}

func (h *RatingHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req createRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "invalid request payload")
		return
	}
	if req.MatchID == "" || req.PlayerID == "" {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "matchId and playerId are required")
		return
	}

	rating, err := h.svc.CreateRating(r.Context(), req.MatchID, req.PlayerID, middleware.UserID(r.Context()), req.Skills, req.Comments)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, rating)
}

func (h *RatingHandler) ListByPlayerHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := models.RatingListOptions{
		Limit:  10,
		SortBy: "date",
		Order:  "desc",
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 || n > 100 {
			utils.JSONError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer up to 100")
			return
		}
		opts.Limit = n
	}
	if v := q.Get("skip"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			utils.JSONError(w, http.StatusBadRequest, "invalid_skip", "skip must be a non-negative integer")
			return
		}
		opts.Skip = n
	}
	if v := q.Get("sortBy"); v != "" {
		if v != "date" && v != "rating" {
			utils.JSONError(w, http.StatusBadRequest, "invalid_sort", "sortBy must be date or rating")
			return
		}
		opts.SortBy = v
	}
	if v := q.Get("order"); v != "" {
		if v != "asc" && v != "desc" {
			utils.JSONError(w, http.StatusBadRequest, "invalid_order", "order must be asc or desc")
			return
		}
		opts.Order = v
	}

	ratings, total, err := h.svc.GetPlayerRatings(r.Context(), chi.URLParam(r, "playerId"), opts)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	totalPages := total / opts.Limit
	if total%opts.Limit != 0 {
		totalPages++
	}
	utils.JSON(w, http.StatusOK, models.RatingsResponse{
		Ratings:    ratings,
		Total:      total,
		Page:       opts.Skip/opts.Limit + 1,
		TotalPages: totalPages,
	})
}

func (h *RatingHandler) ListByMatchHandler(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.svc.GetMatchRatings(r.Context(), chi.URLParam(r, "matchId"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"ratings": ratings})
}

func (h *RatingHandler) AveragesHandler(w http.ResponseWriter, r *http.Request) {
	avg, err := h.svc.GetPlayerAverageRatings(r.Context(), chi.URLParam(r, "playerId"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, avg)
}

func (h *RatingHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var req updateRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "invalid request payload")
		return
	}

	rating, err := h.svc.UpdateRating(r.Context(), chi.URLParam(r, "id"), req.Skills, req.Comments)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, rating)
}

func (h *RatingHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteRating(r.Context(), chi.URLParam(r, "id")); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
