package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Marwanegoudani/nextgenfut/internal/handlers"
	"github.com/Marwanegoudani/nextgenfut/internal/models"
)

func availabilityRouter(svc *fakeAvailabilityService, userID string) *chi.Mux {
	h := handlers.NewAvailabilityHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/v1/players/{id}/availability", asUser(userID, h.GetHandler))
	r.Put("/api/v1/players/{id}/availability", asUser(userID, h.UpdateHandler))
	r.Get("/api/v1/players/available", asUser(userID, h.AvailablePlayersHandler))
	return r
}

func TestGetAvailability_OK(t *testing.T) {
	until := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)
	svc := &fakeAvailabilityService{
		getFn: func(ctx context.Context, playerID string) (*models.Availability, error) {
			if playerID != "p1" {
				t.Fatalf("wrong player: %s", playerID)
			}
			return &models.Availability{IsAvailable: true, AvailableUntil: &until, MaxDistance: 15}, nil
		},
	}
	r := availabilityRouter(svc, "p1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/p1/availability", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var got models.AvailabilityResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if got.Availability == nil || !got.Availability.IsAvailable || got.Availability.MaxDistance != 15 {
		t.Fatalf("wrong availability: %+v", got.Availability)
	}
}

func TestGetAvailability_SelfOnly(t *testing.T) {
	r := availabilityRouter(&fakeAvailabilityService{}, "p2")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/p1/availability", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestUpdateAvailability_SelfOnly(t *testing.T) {
	r := availabilityRouter(&fakeAvailabilityService{}, "p2")

	body := `{"isAvailable":true}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/players/p1/availability", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestUpdateAvailability_OK(t *testing.T) {
	svc := &fakeAvailabilityService{
		setFn: func(ctx context.Context, playerID string, a models.Availability) (*models.Availability, error) {
			if playerID != "p1" || !a.IsAvailable || a.MaxDistance != 8 {
				t.Fatalf("wrong args: %s %+v", playerID, a)
			}
			return &a, nil
		},
	}
	r := availabilityRouter(svc, "p1")

	body := `{"isAvailable":true,"maxDistance":8,"preferredPositions":["midfielder"],"location":{"latitude":48.85,"longitude":2.35}}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/players/p1/availability", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestAvailablePlayers_ParamsForwarded(t *testing.T) {
	svc := &fakeAvailabilityService{
		findFn: func(ctx context.Context, requesterID string, center models.Coordinates, radiusKm float64, position string) ([]models.AvailablePlayer, error) {
			if requesterID != "p1" {
				t.Fatalf("wrong requester: %s", requesterID)
			}
			if center.Latitude != 48.8566 || center.Longitude != 2.3522 || radiusKm != 3 || position != "striker" {
				t.Fatalf("query not forwarded: %+v radius=%v pos=%s", center, radiusKm, position)
			}
			return []models.AvailablePlayer{{ID: "p2", Name: "Ousmane", DistanceKm: 1.2}}, nil
		},
	}
	r := availabilityRouter(svc, "p1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/available?latitude=48.8566&longitude=2.3522&distance=3&position=striker", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var got models.PlayersResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(got.Players) != 1 || got.Players[0].ID != "p2" {
		t.Fatalf("wrong players: %+v", got.Players)
	}
}

func TestAvailablePlayers_DefaultRadius(t *testing.T) {
	svc := &fakeAvailabilityService{
		findFn: func(ctx context.Context, requesterID string, center models.Coordinates, radiusKm float64, position string) ([]models.AvailablePlayer, error) {
			if radiusKm != 10 {
				t.Fatalf("expected default radius 10, got %v", radiusKm)
			}
			return nil, nil
		},
	}
	r := availabilityRouter(svc, "p1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/available?latitude=48.85&longitude=2.35", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestAvailablePlayers_MissingCoordinates(t *testing.T) {
	r := availabilityRouter(&fakeAvailabilityService{}, "p1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/available?latitude=48.85", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestAvailablePlayers_CoordinatesOutOfRange(t *testing.T) {
	r := availabilityRouter(&fakeAvailabilityService{}, "p1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/available?latitude=123&longitude=2.35", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
