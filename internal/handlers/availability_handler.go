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

// AvailabilityHandler adapts HTTP requests to the availability service.
type AvailabilityHandler struct {
	svc AvailabilityService
}

func NewAvailabilityHandler(svc AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

func (h *AvailabilityHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "id")
	if playerID != middleware.UserID(r.Context()) {
		utils.JSONError(w, http.StatusForbidden, "forbidden", "players can only read their own availability")
		return
	}

	availability, err := h.svc.GetAvailability(r.Context(), playerID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, models.AvailabilityResponse{Availability: availability})
}

func (h *AvailabilityHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "id")
	if playerID != middleware.UserID(r.Context()) {
		utils.JSONError(w, http.StatusForbidden, "forbidden", "players can only update their own availability")
		return
	}

	var req models.Availability
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "invalid request payload")
		return
	}
	if req.MaxDistance < 0 {
		utils.JSONError(w, http.StatusBadRequest, "invalid_distance", "maxDistance cannot be negative")
		return
	}

	availability, err := h.svc.SetAvailability(r.Context(), playerID, req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, models.AvailabilityResponse{Availability: availability})
}

func (h *AvailabilityHandler) AvailablePlayersHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err1 := strconv.ParseFloat(q.Get("latitude"), 64)
	lng, err2 := strconv.ParseFloat(q.Get("longitude"), 64)
	if err1 != nil || err2 != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_coordinates", "latitude and longitude are required")
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		utils.JSONError(w, http.StatusBadRequest, "invalid_coordinates", "coordinates out of range")
		return
	}

	radius := 10.0
	if v := q.Get("distance"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || d <= 0 {
			utils.JSONError(w, http.StatusBadRequest, "invalid_distance", "distance must be a positive number of kilometres")
			return
		}
		radius = d
	}

	players, err := h.svc.FindAvailablePlayers(r.Context(), middleware.UserID(r.Context()),
		models.Coordinates{Latitude: lat, Longitude: lng}, radius, q.Get("position"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, models.PlayersResponse{Players: players})
}
