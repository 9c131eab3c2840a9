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

	"github.com/Marwanegoudani/nextgenfut/internal/errs"
	"github.com/Marwanegoudani/nextgenfut/internal/handlers"
	"github.com/Marwanegoudani/nextgenfut/internal/models"
)

func matchRouter(svc *fakeMatchService, userID string) *chi.Mux {
	h := handlers.NewMatchHandler(svc)
	r := chi.NewRouter()
	r.Post("/api/v1/matches", asUser(userID, h.CreateHandler))
	r.Get("/api/v1/matches", h.ListHandler)
	r.Get("/api/v1/matches/{id}", h.GetHandler)
	r.Post("/api/v1/matches/{id}/join", asUser(userID, h.JoinHandler))
	r.Post("/api/v1/matches/{id}/invite", asUser(userID, h.InviteHandler))
	r.Patch("/api/v1/matches/{id}", asUser(userID, h.UpdateHandler))
	r.Delete("/api/v1/matches/{id}", asUser(userID, h.DeleteHandler))
	return r
}

func TestCreateMatch_Valid(t *testing.T) {
	svc := &fakeMatchService{
		createFn: func(ctx context.Context, date time.Time, loc models.Location, createdBy string) (*models.Match, error) {
			if createdBy != "u1" {
				t.Fatalf("wrong creator: %s", createdBy)
			}
			return &models.Match{ID: "m1", Date: date, Location: loc, Status: models.StatusScheduled, CreatedBy: createdBy}, nil
		},
	}
	r := matchRouter(svc, "u1")

	body := `{"date":"2026-09-15T18:00:00Z","location":{"name":"Stade Jean Bouin","address":"26 Av. du General Sarrail","city":"Paris","coordinates":{"latitude":48.843,"longitude":2.253}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/matches", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var got models.Match
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if got.ID != "m1" || got.Status != models.StatusScheduled {
		t.Fatalf("unexpected match: %+v", got)
	}
}

func TestCreateMatch_MissingLocationFields(t *testing.T) {
	r := matchRouter(&fakeMatchService{}, "u1")

	body := `{"date":"2026-09-15T18:00:00Z","location":{"name":"Pitch"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/matches", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var got models.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if got.Code != "invalid_location" {
		t.Fatalf("wrong code: %s", got.Code)
	}
}

func TestCreateMatch_BadDate(t *testing.T) {
	r := matchRouter(&fakeMatchService{}, "u1")

	body := `{"date":"next tuesday","location":{"name":"n","address":"a","city":"c"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/matches", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestListMatches_Pagination(t *testing.T) {
	svc := &fakeMatchService{
		listFn: func(ctx context.Context, f models.MatchFilter) ([]models.MatchDetail, int64, error) {
			if f.Status != models.StatusScheduled || f.City != "Paris" {
				t.Fatalf("filter not forwarded: %+v", f)
			}
			if f.Limit != 5 || f.Skip != 10 {
				t.Fatalf("paging not forwarded: %+v", f)
			}
			return []models.MatchDetail{{Match: models.Match{ID: "m1"}}}, 12, nil
		},
	}
	r := matchRouter(svc, "u1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches?status=scheduled&city=Paris&limit=5&skip=10", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var got models.MatchesResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if got.Total != 12 || got.Page != 3 || got.TotalPages != 3 {
		t.Fatalf("wrong paging: %+v", got)
	}
}

func TestListMatches_BadStatus(t *testing.T) {
	r := matchRouter(&fakeMatchService{}, "u1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches?status=postponed", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGetMatch_NotFound(t *testing.T) {
	svc := &fakeMatchService{
		getFn: func(ctx context.Context, id string) (*models.MatchDetail, error) {
			return nil, errs.NotFound("match_not_found", "match not found")
		},
	}
	r := matchRouter(svc, "u1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches/missing", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestJoinMatch_Valid(t *testing.T) {
	svc := &fakeMatchService{
		joinFn: func(ctx context.Context, matchID, playerID string, side models.TeamSide) (*models.Match, error) {
			if matchID != "m1" || playerID != "u1" || side != models.SideAway {
				t.Fatalf("wrong join args: %s %s %s", matchID, playerID, side)
			}
			return &models.Match{ID: "m1", Teams: models.Teams{Away: []string{"u1"}}}, nil
		},
	}
	r := matchRouter(svc, "u1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/matches/m1/join", bytes.NewBufferString(`{"team":"away"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestJoinMatch_BadTeam(t *testing.T) {
	r := matchRouter(&fakeMatchService{}, "u1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/matches/m1/join", bytes.NewBufferString(`{"team":"blue"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestJoinMatch_AlreadyJoined(t *testing.T) {
	svc := &fakeMatchService{
		joinFn: func(ctx context.Context, matchID, playerID string, side models.TeamSide) (*models.Match, error) {
			return nil, errs.Conflict("player_already_joined", "player already in this match")
		},
	}
	r := matchRouter(svc, "u1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/matches/m1/join", bytes.NewBufferString(`{"team":"home"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}
}

func TestInvitePlayer_CreatorOnly(t *testing.T) {
	svc := &fakeMatchService{
		inviteFn: func(ctx context.Context, matchID, callerID, playerID string) (*models.Match, error) {
			return nil, errs.Authorization("only the match creator can invite players")
		},
	}
	r := matchRouter(svc, "u2")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/matches/m1/invite", bytes.NewBufferString(`{"playerId":"u3"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestInvitePlayer_MissingPlayerID(t *testing.T) {
	r := matchRouter(&fakeMatchService{}, "u1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/matches/m1/invite", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestUpdateMatch_CompletedWithScores(t *testing.T) {
	svc := &fakeMatchService{
		updateFn: func(ctx context.Context, id string, status models.MatchStatus, scores *models.Scores) (*models.Match, error) {
			if status != models.StatusCompleted || scores == nil || scores.Home != 3 || scores.Away != 1 {
				t.Fatalf("wrong update args: %s %+v", status, scores)
			}
			return &models.Match{ID: id, Status: status, Scores: *scores}, nil
		},
	}
	r := matchRouter(svc, "u1")

	body := `{"status":"completed","scores":{"home":3,"away":1}}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/matches/m1", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestUpdateMatch_NegativeScores(t *testing.T) {
	r := matchRouter(&fakeMatchService{}, "u1")

	body := `{"status":"completed","scores":{"home":-1,"away":0}}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/matches/m1", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestDeleteMatch_NoContent(t *testing.T) {
	svc := &fakeMatchService{
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	r := matchRouter(svc, "u1")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/matches/m1", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
}
