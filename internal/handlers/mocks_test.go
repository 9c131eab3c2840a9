package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Marwanegoudani/nextgenfut/internal/middleware"
	"github.com/Marwanegoudani/nextgenfut/internal/models"
)

var errNotImplemented = errors.New("not implemented")

type fakeMatchService struct {
	createFn func(ctx context.Context, date time.Time, loc models.Location, createdBy string) (*models.Match, error)
	getFn    func(ctx context.Context, id string) (*models.MatchDetail, error)
	listFn   func(ctx context.Context, f models.MatchFilter) ([]models.MatchDetail, int64, error)
	joinFn   func(ctx context.Context, matchID, playerID string, side models.TeamSide) (*models.Match, error)
	inviteFn func(ctx context.Context, matchID, callerID, playerID string) (*models.Match, error)
	updateFn func(ctx context.Context, id string, status models.MatchStatus, scores *models.Scores) (*models.Match, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeMatchService) CreateMatch(ctx context.Context, date time.Time, loc models.Location, createdBy string) (*models.Match, error) {
	if f.createFn != nil {
		return f.createFn(ctx, date, loc, createdBy)
	}
	return nil, errNotImplemented
}
func (f *fakeMatchService) GetMatchByID(ctx context.Context, id string) (*models.MatchDetail, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return nil, errNotImplemented
}
func (f *fakeMatchService) ListMatches(ctx context.Context, fl models.MatchFilter) ([]models.MatchDetail, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, fl)
	}
	return nil, 0, errNotImplemented
}
func (f *fakeMatchService) JoinMatch(ctx context.Context, matchID, playerID string, side models.TeamSide) (*models.Match, error) {
	if f.joinFn != nil {
		return f.joinFn(ctx, matchID, playerID, side)
	}
	return nil, errNotImplemented
}
func (f *fakeMatchService) InvitePlayer(ctx context.Context, matchID, callerID, playerID string) (*models.Match, error) {
	if f.inviteFn != nil {
		return f.inviteFn(ctx, matchID, callerID, playerID)
	}
	return nil, errNotImplemented
}
func (f *fakeMatchService) UpdateMatchStatus(ctx context.Context, id string, status models.MatchStatus, scores *models.Scores) (*models.Match, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, status, scores)
	}
	return nil, errNotImplemented
}
func (f *fakeMatchService) DeleteMatch(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return errNotImplemented
}

type fakeRatingService struct {
	createFn   func(ctx context.Context, matchID, playerID, raterID string, skills models.Skills, comments string) (*models.Rating, error)
	byPlayerFn func(ctx context.Context, playerID string, opts models.RatingListOptions) ([]models.RatingDetail, int64, error)
	byMatchFn  func(ctx context.Context, matchID string) ([]models.RatingDetail, error)
	averagesFn func(ctx context.Context, playerID string) (*models.AverageRatings, error)
	updateFn   func(ctx context.Context, id string, patch models.SkillsPatch, comments *string) (*models.Rating, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRatingService) CreateRating(ctx context.Context, matchID, playerID, raterID string, skills models.Skills, comments string) (*models.Rating, error) {
	if f.createFn != nil {
		return f.createFn(ctx, matchID, playerID, raterID, skills, comments)
	}
	return nil, errNotImplemented
}
func (f *fakeRatingService) GetPlayerRatings(ctx context.Context, playerID string, opts models.RatingListOptions) ([]models.RatingDetail, int64, error) {
	if f.byPlayerFn != nil {
		return f.byPlayerFn(ctx, playerID, opts)
	}
	return nil, 0, errNotImplemented
}
func (f *fakeRatingService) GetMatchRatings(ctx context.Context, matchID string) ([]models.RatingDetail, error) {
	if f.byMatchFn != nil {
		return f.byMatchFn(ctx, matchID)
	}
	return nil, errNotImplemented
}
func (f *fakeRatingService) GetPlayerAverageRatings(ctx context.Context, playerID string) (*models.AverageRatings, error) {
	if f.averagesFn != nil {
		return f.averagesFn(ctx, playerID)
	}
	return nil, errNotImplemented
}
func (f *fakeRatingService) UpdateRating(ctx context.Context, id string, patch models.SkillsPatch, comments *string) (*models.Rating, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, patch, comments)
	}
	return nil, errNotImplemented
}
func (f *fakeRatingService) DeleteRating(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return errNotImplemented
}

type fakeAvailabilityService struct {
	getFn  func(ctx context.Context, playerID string) (*models.Availability, error)
	setFn  func(ctx context.Context, playerID string, a models.Availability) (*models.Availability, error)
	findFn func(ctx context.Context, requesterID string, center models.Coordinates, radiusKm float64, position string) ([]models.AvailablePlayer, error)
}

func (f *fakeAvailabilityService) GetAvailability(ctx context.Context, playerID string) (*models.Availability, error) {
	if f.getFn != nil {
		return f.getFn(ctx, playerID)
	}
	return nil, errNotImplemented
}
func (f *fakeAvailabilityService) SetAvailability(ctx context.Context, playerID string, a models.Availability) (*models.Availability, error) {
	if f.setFn != nil {
		return f.setFn(ctx, playerID, a)
	}
	return nil, errNotImplemented
}
func (f *fakeAvailabilityService) FindAvailablePlayers(ctx context.Context, requesterID string, center models.Coordinates, radiusKm float64, position string) ([]models.AvailablePlayer, error) {
	if f.findFn != nil {
		return f.findFn(ctx, requesterID, center, radiusKm, position)
	}
	return nil, errNotImplemented
}

type fakeUserRepo struct {
	createFn     func(ctx context.Context, u *models.User) error
	getByIDFn    func(ctx context.Context, id string) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return errNotImplemented
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, errNotImplemented
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, errNotImplemented
}

type fakeTokenRevoker struct {
	revokeFn func(ctx context.Context, jti string, ttl time.Duration) error
}

func (f *fakeTokenRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if f.revokeFn != nil {
		return f.revokeFn(ctx, jti, ttl)
	}
	return nil
}

// asUser injects an authenticated identity the way the auth middleware would.
func asUser(id string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next(w, r.WithContext(middleware.WithUser(r.Context(), id, "Test User", "player")))
	}
}
