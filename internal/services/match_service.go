package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Marwanegoudani/nextgenfut/internal/errs"
	"github.com/Marwanegoudani/nextgenfut/internal/models"
	"github.com/Marwanegoudani/nextgenfut/internal/retry"
)

// MatchService implements match CRUD and lifecycle transitions. Data-layer
// calls are wrapped with bounded retry; domain errors pass through untouched.
type MatchService struct {
	repo   MatchRepository
	users  UserDirectory
	logger *zap.Logger
}

func NewMatchService(repo MatchRepository, users UserDirectory, logger *zap.Logger) *MatchService {
	return &MatchService{repo: repo, users: users, logger: logger}
}

// CreateMatch creates a scheduled match with empty rosters and a 0-0 score.
// Field presence is validated at the handler boundary.
func (s *MatchService) CreateMatch(ctx context.Context, date time.Time, loc models.Location, createdBy string) (*models.Match, error) {
	m := &models.Match{
		Date:      date,
		Location:  loc,
		Teams:     models.Teams{Home: []string{}, Away: []string{}},
		Status:    models.StatusScheduled,
		Scores:    models.Scores{Home: 0, Away: 0},
		CreatedBy: createdBy,
	}
	return retry.Do(ctx, func(ctx context.Context) (*models.Match, error) {
		ctx, cancel := opCtx(ctx)
		defer cancel()
		if err := s.repo.Insert(ctx, m); err != nil {
			return nil, err
		}
		return m, nil
	})
}

// GetMatchByID returns a match with rosters and creator resolved to names.
func (s *MatchService) GetMatchByID(ctx context.Context, id string) (*models.MatchDetail, error) {
	return retry.Do(ctx, func(ctx context.Context) (*models.MatchDetail, error) {
		ctx, cancel := opCtx(ctx)
		defer cancel()
		m, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		details, err := s.resolve(ctx, []models.Match{*m})
		if err != nil {
			return nil, err
		}
		return &details[0], nil
	})
}

// ListMatches returns a page of matches sorted by date ascending plus the
// total count for pagination.
func (s *MatchService) ListMatches(ctx context.Context, f models.MatchFilter) ([]models.MatchDetail, int64, error) {
	type page struct {
		matches []models.MatchDetail
		total   int64
	}
	p, err := retry.Do(ctx, func(ctx context.Context) (page, error) {
		ctx, cancel := opCtx(ctx)
		defer cancel()
		matches, total, err := s.repo.Find(ctx, f)
		if err != nil {
			return page{}, err
		}
		details, err := s.resolve(ctx, matches)
		if err != nil {
			return page{}, err
		}
		return page{matches: details, total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return p.matches, p.total, nil
}

// JoinMatch appends the player to the chosen roster. The underlying update is
// a single conditional write, so two racing joins cannot both succeed. When
// the write matches nothing the match is re-read to report the precise cause.
func (s *MatchService) JoinMatch(ctx context.Context, matchID, playerID string, side models.TeamSide) (*models.Match, error) {
	return retry.Do(ctx, func(ctx context.Context) (*models.Match, error) {
		ctx, cancel := opCtx(ctx)
		defer cancel()

		pushed, err := s.repo.PushPlayer(ctx, matchID, playerID, side)
		if err != nil {
			return nil, err
		}
		if !pushed {
			m, err := s.repo.GetByID(ctx, matchID)
			if err != nil {
				return nil, err
			}
			if m.Status != models.StatusScheduled {
				return nil, errs.InvalidState("match_not_joinable", "cannot join a match that is not in scheduled status")
			}
			if m.Teams.Contains(playerID) {
				return nil, errs.Conflict("player_already_joined", "player is already in a team")
			}
			return nil, errs.Conflict("join_rejected", "join was rejected by a concurrent update")
		}
		return s.repo.GetByID(ctx, matchID)
	})
}

// InvitePlayer lets the creator add a specific player to whichever roster is
// currently shorter.
func (s *MatchService) InvitePlayer(ctx context.Context, matchID, callerID, playerID string) (*models.Match, error) {
	return retry.Do(ctx, func(ctx context.Context) (*models.Match, error) {
		ctx, cancel := opCtx(ctx)
		defer cancel()

		m, err := s.repo.GetByID(ctx, matchID)
		if err != nil {
			return nil, err
		}
		if m.CreatedBy != callerID {
			return nil, errs.Authorization("only the match creator can invite players")
		}
		if m.Status != models.StatusScheduled {
			return nil, errs.Validation("match_not_scheduled", "can only invite players to scheduled matches")
		}
		if _, err := s.users.GetByID(ctx, playerID); err != nil {
			return nil, err
		}
		if m.Teams.Contains(playerID) {
			return nil, errs.Validation("player_already_in_match", "player is already in the match")
		}

		side := models.SideHome
		if len(m.Teams.Home) > len(m.Teams.Away) {
			side = models.SideAway
		}
		pushed, err := s.repo.PushPlayer(ctx, matchID, playerID, side)
		if err != nil {
			return nil, err
		}
		if !pushed {
			return nil, errs.Validation("player_already_in_match", "player is already in the match")
		}
		return s.repo.GetByID(ctx, matchID)
	})
}

// UpdateMatchStatus sets the lifecycle status and optional score pair. Any
// transition is permitted; backwards transitions are logged as warnings.
func (s *MatchService) UpdateMatchStatus(ctx context.Context, id string, status models.MatchStatus, scores *models.Scores) (*models.Match, error) {
	return retry.Do(ctx, func(ctx context.Context) (*models.Match, error) {
		ctx, cancel := opCtx(ctx)
		defer cancel()

		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if status.Rank() < current.Status.Rank() {
			s.logger.Warn("out-of-order match status transition",
				zap.String("matchId", id),
				zap.String("from", string(current.Status)),
				zap.String("to", string(status)))
		}
		return s.repo.UpdateStatus(ctx, id, status, scores)
	})
}

// DeleteMatch removes the match.
func (s *MatchService) DeleteMatch(ctx context.Context, id string) error {
	_, err := retry.Do(ctx, func(ctx context.Context) (struct{}, error) {
		ctx, cancel := opCtx(ctx)
		defer cancel()
		return struct{}{}, s.repo.Delete(ctx, id)
	})
	return err
}

// resolve turns matches into details with player and creator names attached.
func (s *MatchService) resolve(ctx context.Context, matches []models.Match) ([]models.MatchDetail, error) {
	idSet := map[string]struct{}{}
	for _, m := range matches {
		for _, id := range m.Teams.Home {
			idSet[id] = struct{}{}
		}
		for _, id := range m.Teams.Away {
			idSet[id] = struct{}{}
		}
		idSet[m.CreatedBy] = struct{}{}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	names, err := s.users.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	details := make([]models.MatchDetail, 0, len(matches))
	for _, m := range matches {
		d := models.MatchDetail{
			Match:         m,
			HomePlayers:   publicUsers(m.Teams.Home, names),
			AwayPlayers:   publicUsers(m.Teams.Away, names),
			CreatedByName: names[m.CreatedBy],
		}
		details = append(details, d)
	}
	return details, nil
}

func publicUsers(ids []string, names map[string]string) []models.PublicUser {
	out := make([]models.PublicUser, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.PublicUser{ID: id, Name: names[id], Role: models.RolePlayer})
	}
	return out
}
