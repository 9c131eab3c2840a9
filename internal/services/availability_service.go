package services

import (
	"context"
	"time"

	"github.com/Marwanegoudani/nextgenfut/internal/geo"
	"github.com/Marwanegoudani/nextgenfut/internal/models"
)

// AvailabilityService manages the player availability sub-record and the
// proximity query behind the available-players listing.
type AvailabilityService struct {
	store AvailabilityStore
	now   func() time.Time
}

func NewAvailabilityService(store AvailabilityStore) *AvailabilityService {
	return &AvailabilityService{store: store, now: time.Now}
}

// GetAvailability reads a player's availability sub-record. Self-only access
// is enforced at the handler boundary.
func (s *AvailabilityService) GetAvailability(ctx context.Context, playerID string) (*models.Availability, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	return s.store.GetAvailability(ctx, playerID)
}

// SetAvailability upserts the sub-record. LastUpdated is stamped server-side
// when the client leaves it unset.
func (s *AvailabilityService) SetAvailability(ctx context.Context, playerID string, a models.Availability) (*models.Availability, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	if a.LastUpdated.IsZero() {
		a.LastUpdated = s.now().UTC()
	}
	return s.store.SetAvailability(ctx, playerID, a)
}

// FindAvailablePlayers returns players whose availability flag is on, whose
// expiry is in the future, and who sit within radiusKm of center, optionally
// restricted to one preferred position. The requester is never returned.
func (s *AvailabilityService) FindAvailablePlayers(ctx context.Context, requesterID string, center models.Coordinates, radiusKm float64, position string) ([]models.AvailablePlayer, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	now := s.now().UTC()
	candidates, err := s.store.FindAvailablePlayers(ctx, now, position)
	if err != nil {
		return nil, err
	}

	players := make([]models.AvailablePlayer, 0, len(candidates))
	for _, u := range candidates {
		if u.ID == requesterID || u.Player == nil {
			continue
		}
		a := u.Player.Availability
		if a == nil || !a.IsAvailable || a.Location == nil {
			continue
		}
		// The store prefilters on expiry; re-check so a stale read can
		// never surface an expired player.
		if a.AvailableUntil == nil || !a.AvailableUntil.After(now) {
			continue
		}
		d := geo.Distance(center.Latitude, center.Longitude, a.Location.Latitude, a.Location.Longitude)
		if d > radiusKm {
			continue
		}
		maxDistance := a.MaxDistance
		if maxDistance == 0 {
			maxDistance = 10
		}
		players = append(players, models.AvailablePlayer{
			ID:             u.ID,
			Name:           u.Name,
			Positions:      a.PreferredPositions,
			MaxDistance:    maxDistance,
			AvailableUntil: a.AvailableUntil,
			DistanceKm:     d,
		})
	}
	return players, nil
}
