package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Marwanegoudani/nextgenfut/internal/middleware"
	"github.com/Marwanegoudani/nextgenfut/internal/models"
	"github.com/Marwanegoudani/nextgenfut/internal/utils"
)

// MatchHandler adapts HTTP requests to the match service.
type MatchHandler struct {
	svc MatchService
}

func NewMatchHandler(svc MatchService) *MatchHandler {
	return &MatchHandler{svc: svc}
}

type createMatchRequest struct {
	Date     string           `json:"date"`
	Location *models.Location `json:"location"`
}

type joinMatchRequest struct {
	Team string `json:"team"`
}

type inviteRequest struct {
	PlayerID string `json:"playerId"`
}

type updateMatchRequest struct {
	Status string         `json:"status"`
	Scores *models.Scores `json:"scores"`
}

func (h *MatchHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "invalid request payload")
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_date", "date must be an RFC 3339 timestamp")
		return
	}
	if req.Location == nil || req.Location.Name == "" || req.Location.Address == "" || req.Location.City == "" {
		utils.JSONError(w, http.StatusBadRequest, "invalid_location", "location name, address and city are required")
		return
	}

	match, err := h.svc.CreateMatch(r.Context(), date, *req.Location, middleware.UserID(r.Context()))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, match)
}

func (h *MatchHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.MatchFilter{
		City:  q.Get("city"),
		Limit: 10,
	}
	if status := q.Get("status"); status != "" {
		ms := models.MatchStatus(status)
		if !ms.Valid() {
			utils.JSONError(w, http.StatusBadRequest, "invalid_status", "status must be scheduled, in-progress or completed")
			return
		}
		filter.Status = ms
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 || n > 100 {
			utils.JSONError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer up to 100")
			return
		}
		filter.Limit = n
	}
	if v := q.Get("skip"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			utils.JSONError(w, http.StatusBadRequest, "invalid_skip", "skip must be a non-negative integer")
			return
		}
		filter.Skip = n
	}
	if start, end := q.Get("startDate"), q.Get("endDate"); start != "" && end != "" {
		from, err1 := time.Parse(time.RFC3339, start)
		to, err2 := time.Parse(time.RFC3339, end)
		if err1 != nil || err2 != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid_date_range", "startDate and endDate must be RFC 3339 timestamps")
			return
		}
		filter.DateFrom, filter.DateTo = &from, &to
	}

	matches, total, err := h.svc.ListMatches(r.Context(), filter)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	totalPages := total / filter.Limit
	if total%filter.Limit != 0 {
		totalPages++
	}
	utils.JSON(w, http.StatusOK, models.MatchesResponse{
		Matches:    matches,
		Total:      total,
		Page:       filter.Skip/filter.Limit + 1,
		TotalPages: totalPages,
	})
}

func (h *MatchHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	match, err := h.svc.GetMatchByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, match)
}

func (h *MatchHandler) JoinHandler(w http.ResponseWriter, r *http.Request) {
	var req joinMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "invalid request payload")
		return
	}
	side := models.TeamSide(req.Team)
	if !side.Valid() {
		utils.JSONError(w, http.StatusBadRequest, "invalid_team", "team must be home or away")
		return
	}

	match, err := h.svc.JoinMatch(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()), side)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, match)
}

func (h *MatchHandler) InviteHandler(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == "" {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "playerId is required")
		return
	}

	match, err := h.svc.InvitePlayer(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()), req.PlayerID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "player invited successfully",
		"match":   match,
	})
}

func (h *MatchHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var req updateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "invalid request payload")
		return
	}
	status := models.MatchStatus(req.Status)
	if !status.Valid() {
		utils.JSONError(w, http.StatusBadRequest, "invalid_status", "status must be scheduled, in-progress or completed")
		return
	}
	if req.Scores != nil && (req.Scores.Home < 0 || req.Scores.Away < 0) {
		utils.JSONError(w, http.StatusBadRequest, "invalid_scores", "scores cannot be negative")
		return
	}

	match, err := h.svc.UpdateMatchStatus(r.Context(), chi.URLParam(r, "id"), status, req.Scores)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, match)
}

func (h *MatchHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteMatch(r.Context(), chi.URLParam(r, "id")); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
