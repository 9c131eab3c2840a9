package services

import (
	"context"
	"time"

	"github.com/Marwanegoudani/nextgenfut/internal/models"
)

// opTimeout bounds every data-layer call so a request can never hang on the
// database indefinitely.
const opTimeout = 15 * time.Second

// MatchRepository captures the match persistence operations required by services.
type MatchRepository interface {
	Insert(ctx context.Context, m *models.Match) error
	GetByID(ctx context.Context, id string) (*models.Match, error)
	Find(ctx context.Context, f models.MatchFilter) ([]models.Match, int64, error)
	PushPlayer(ctx context.Context, matchID, playerID string, side models.TeamSide) (bool, error)
	UpdateStatus(ctx context.Context, id string, status models.MatchStatus, scores *models.Scores) (*models.Match, error)
	Delete(ctx context.Context, id string) error
}

// RatingRepository captures the rating persistence operations required by services.
type RatingRepository interface {
	Insert(ctx context.Context, rt *models.Rating) error
	GetByID(ctx context.Context, id string) (*models.Rating, error)
	ListByPlayer(ctx context.Context, playerID string, opts models.RatingListOptions) ([]models.Rating, int64, error)
	AllByPlayer(ctx context.Context, playerID string) ([]models.Rating, error)
	ListByMatch(ctx context.Context, matchID string) ([]models.Rating, error)
	Update(ctx context.Context, id string, skills models.Skills, overall float64, comments *string) (*models.Rating, error)
	Delete(ctx context.Context, id string) error
}

// UserDirectory resolves user ids to users and display names.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

// AvailabilityStore captures the availability operations on the users collection.
type AvailabilityStore interface {
	GetAvailability(ctx context.Context, playerID string) (*models.Availability, error)
	SetAvailability(ctx context.Context, playerID string, a models.Availability) (*models.Availability, error)
	FindAvailablePlayers(ctx context.Context, now time.Time, position string) ([]models.User, error)
}

func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}
