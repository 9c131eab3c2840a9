package handlers

import (
	"context"
	"time"

	"github.com/Marwanegoudani/nextgenfut/internal/models"
)

// UserRepository captures the persistence operations required by handlers.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenRevoker records revoked token ids until their natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// MatchService captures the match operations required by handlers.
type MatchService interface {
	CreateMatch(ctx context.Context, date time.Time, loc models.Location, createdBy string) (*models.Match, error)
	GetMatchByID(ctx context.Context, id string) (*models.MatchDetail, error)
	ListMatches(ctx context.Context, f models.MatchFilter) ([]models.MatchDetail, int64, error)
	JoinMatch(ctx context.Context, matchID, playerID string, side models.TeamSide) (*models.Match, error)
	InvitePlayer(ctx context.Context, matchID, callerID, playerID string) (*models.Match, error)
	UpdateMatchStatus(ctx context.Context, id string, status models.MatchStatus, scores *models.Scores) (*models.Match, error)
	DeleteMatch(ctx context.Context, id string) error
}

// RatingService captures the rating operations required by handlers.
type RatingService interface {
	CreateRating(ctx context.Context, matchID, playerID, raterID string, skills models.Skills, comments string) (*models.Rating, error)
	GetPlayerRatings(ctx context.Context, playerID string, opts models.RatingListOptions) ([]models.RatingDetail, int64, error)
	GetMatchRatings(ctx context.Context, matchID string) ([]models.RatingDetail, error)
	GetPlayerAverageRatings(ctx context.Context, playerID string) (*models.AverageRatings, error)
	UpdateRating(ctx context.Context, id string, patch models.SkillsPatch, comments *string) (*models.Rating, error)
	DeleteRating(ctx context.Context, id string) error
}

// AvailabilityService captures the availability operations required by handlers.
type AvailabilityService interface {
	GetAvailability(ctx context.Context, playerID string) (*models.Availability, error)
	SetAvailability(ctx context.Context, playerID string, a models.Availability) (*models.Availability, error)
	FindAvailablePlayers(ctx context.Context, requesterID string, center models.Coordinates, radiusKm float64, position string) ([]models.AvailablePlayer, error)
}
