package services

import (
	"context"
	"time"

	"github.com/Marwanegoudani/nextgenfut/internal/models"
)

type mockMatchRepo struct {
	insertFn       func(*models.Match) error
	getByIDFn      func(string) (*models.Match, error)
	findFn         func(models.MatchFilter) ([]models.Match, int64, error)
	pushPlayerFn   func(string, string, models.TeamSide) (bool, error)
	updateStatusFn func(string, models.MatchStatus, *models.Scores) (*models.Match, error)
	deleteFn       func(string) error
}

func (m *mockMatchRepo) Insert(_ context.Context, match *models.Match) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(match)
}

func (m *mockMatchRepo) GetByID(_ context.Context, id string) (*models.Match, error) {
	if m.getByIDFn == nil {
		panic("unexpected call to GetByID")
	}
	return m.getByIDFn(id)
}

func (m *mockMatchRepo) Find(_ context.Context, f models.MatchFilter) ([]models.Match, int64, error) {
	if m.findFn == nil {
		panic("unexpected call to Find")
	}
	return m.findFn(f)
}

func (m *mockMatchRepo) PushPlayer(_ context.Context, matchID, playerID string, side models.TeamSide) (bool, error) {
	if m.pushPlayerFn == nil {
		panic("unexpected call to PushPlayer")
	}
	return m.pushPlayerFn(matchID, playerID, side)
}

func (m *mockMatchRepo) UpdateStatus(_ context.Context, id string, status models.MatchStatus, scores *models.Scores) (*models.Match, error) {
	if m.updateStatusFn == nil {
		panic("unexpected call to UpdateStatus")
	}
	return m.updateStatusFn(id, status, scores)
}

func (m *mockMatchRepo) Delete(_ context.Context, id string) error {
	if m.deleteFn == nil {
		panic("unexpected call to Delete")
	}
	return m.deleteFn(id)
}

type mockRatingRepo struct {
	insertFn       func(*models.Rating) error
	getByIDFn      func(string) (*models.Rating, error)
	listByPlayerFn func(string, models.RatingListOptions) ([]models.Rating, int64, error)
	allByPlayerFn  func(string) ([]models.Rating, error)
	listByMatchFn  func(string) ([]models.Rating, error)
	updateFn       func(string, models.Skills, float64, *string) (*models.Rating, error)
	deleteFn       func(string) error
}

func (m *mockRatingRepo) Insert(_ context.Context, rt *models.Rating) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(rt)
}

func (m *mockRatingRepo) GetByID(_ context.Context, id string) (*models.Rating, error) {
	if m.getByIDFn == nil {
		panic("unexpected call to GetByID")
	}
	return m.getByIDFn(id)
}

func (m *mockRatingRepo) ListByPlayer(_ context.Context, playerID string, opts models.RatingListOptions) ([]models.Rating, int64, error) {
	if m.listByPlayerFn == nil {
		panic("unexpected call to ListByPlayer")
	}
	return m.listByPlayerFn(playerID, opts)
}

func (m *mockRatingRepo) AllByPlayer(_ context.Context, playerID string) ([]models.Rating, error) {
	if m.allByPlayerFn == nil {
		panic("unexpected call to AllByPlayer")
	}
	return m.allByPlayerFn(playerID)
}

func (m *mockRatingRepo) ListByMatch(_ context.Context, matchID string) ([]models.Rating, error) {
	if m.listByMatchFn == nil {
		panic("unexpected call to ListByMatch")
	}
	return m.listByMatchFn(matchID)
}

func (m *mockRatingRepo) Update(_ context.Context, id string, skills models.Skills, overall float64, comments *string) (*models.Rating, error) {
	if m.updateFn == nil {
		panic("unexpected call to Update")
	}
	return m.updateFn(id, skills, overall, comments)
}

func (m *mockRatingRepo) Delete(_ context.Context, id string) error {
	if m.deleteFn == nil {
		panic("unexpected call to Delete")
	}
	return m.deleteFn(id)
}

type mockUserDirectory struct {
	getByIDFn    func(string) (*models.User, error)
	namesByIDsFn func([]string) (map[string]string, error)
}

func (m *mockUserDirectory) GetByID(_ context.Context, id string) (*models.User, error) {
	if m.getByIDFn == nil {
		panic("unexpected call to GetByID")
	}
	return m.getByIDFn(id)
}

func (m *mockUserDirectory) NamesByIDs(_ context.Context, ids []string) (map[string]string, error) {
	if m.namesByIDsFn == nil {
		return map[string]string{}, nil
	}
	return m.namesByIDsFn(ids)
}

type mockAvailabilityStore struct {
	getFn  func(string) (*models.Availability, error)
	setFn  func(string, models.Availability) (*models.Availability, error)
	findFn func(time.Time, string) ([]models.User, error)
}

func (m *mockAvailabilityStore) GetAvailability(_ context.Context, playerID string) (*models.Availability, error) {
	if m.getFn == nil {
		panic("unexpected call to GetAvailability")
	}
	return m.getFn(playerID)
}

func (m *mockAvailabilityStore) SetAvailability(_ context.Context, playerID string, a models.Availability) (*models.Availability, error) {
	if m.setFn == nil {
		panic("unexpected call to SetAvailability")
	}
	return m.setFn(playerID, a)
}

func (m *mockAvailabilityStore) FindAvailablePlayers(_ context.Context, now time.Time, position string) ([]models.User, error) {
	if m.findFn == nil {
		panic("unexpected call to FindAvailablePlayers")
	}
	return m.findFn(now, position)
}
