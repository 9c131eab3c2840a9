package services

import (
	"context"
	"math"

	"github.com/Marwanegoudani/nextgenfut/internal/errs"
	"github.com/Marwanegoudani/nextgenfut/internal/models"
)

// RatingService implements rating CRUD with the match-completion and
// match-membership preconditions.
type RatingService struct {
	repo    RatingRepository
	matches MatchRepository
	users   UserDirectory
}

func NewRatingService(repo RatingRepository, matches MatchRepository, users UserDirectory) *RatingService {
	return &RatingService{repo: repo, matches: matches, users: users}
}

// CreateRating validates that the match is completed and the rated player
// actually took part, then persists the rating. The unique (match, player,
// rater) index turns duplicates into a conflict.
func (s *RatingService) CreateRating(ctx context.Context, matchID, playerID, raterID string, skills models.Skills, comments string) (*models.Rating, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	if !skills.Valid() {
		return nil, errs.Validation("invalid_skills", "every skill must be between 1 and 10")
	}
	if len(comments) > 500 {
		return nil, errs.Validation("comments_too_long", "comments cannot exceed 500 characters")
	}

	m, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.Status != models.StatusCompleted {
		return nil, errs.InvalidState("match_not_completed", "can only rate players after match is completed")
	}
	if !m.Teams.Contains(playerID) {
		return nil, errs.Validation("player_not_in_match", "player was not in this match")
	}

	rt := &models.Rating{
		MatchID:  matchID,
		PlayerID: playerID,
		RaterID:  raterID,
		Skills:   skills,
		Comments: comments,
		Overall:  round1(skills.Overall()),
	}
	if err := s.repo.Insert(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

// GetPlayerRatings returns a page of a player's ratings with rater names
// resolved, sortable by date or overall score.
func (s *RatingService) GetPlayerRatings(ctx context.Context, playerID string, opts models.RatingListOptions) ([]models.RatingDetail, int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	ratings, total, err := s.repo.ListByPlayer(ctx, playerID, opts)
	if err != nil {
		return nil, 0, err
	}
	details, err := s.resolve(ctx, ratings)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

// GetMatchRatings returns every rating for a match with names resolved.
func (s *RatingService) GetMatchRatings(ctx context.Context, matchID string) ([]models.RatingDetail, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	ratings, err := s.repo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, ratings)
}

// GetPlayerAverageRatings computes the mean of each skill dimension plus an
// overall mean-of-means. A player with no ratings gets zeros, not an error.
func (s *RatingService) GetPlayerAverageRatings(ctx context.Context, playerID string) (*models.AverageRatings, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	ratings, err := s.repo.AllByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	avg := &models.AverageRatings{TotalRatings: len(ratings)}
	if len(ratings) == 0 {
		return avg, nil
	}

	var pace, shooting, passing, dribbling, defending, physical int
	for _, rt := range ratings {
		pace += rt.Skills.Pace
		shooting += rt.Skills.Shooting
		passing += rt.Skills.Passing
		dribbling += rt.Skills.Dribbling
		defending += rt.Skills.Defending
		physical += rt.Skills.Physical
	}

	n := float64(len(ratings))
	avg.Skills.Pace = round1(float64(pace) / n)
	avg.Skills.Shooting = round1(float64(shooting) / n)
	avg.Skills.Passing = round1(float64(passing) / n)
	avg.Skills.Dribbling = round1(float64(dribbling) / n)
	avg.Skills.Defending = round1(float64(defending) / n)
	avg.Skills.Physical = round1(float64(physical) / n)
	avg.Overall = round1((avg.Skills.Pace + avg.Skills.Shooting + avg.Skills.Passing +
		avg.Skills.Dribbling + avg.Skills.Defending + avg.Skills.Physical) / 6)
	return avg, nil
}

// UpdateRating merges the supplied skill fields into the stored vector,
// leaving unset ones untouched.
func (s *RatingService) UpdateRating(ctx context.Context, id string, patch models.SkillsPatch, comments *string) (*models.Rating, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	merged := patch.Apply(existing.Skills)
	if !merged.Valid() {
		return nil, errs.Validation("invalid_skills", "every skill must be between 1 and 10")
	}
	if comments != nil && len(*comments) > 500 {
		return nil, errs.Validation("comments_too_long", "comments cannot exceed 500 characters")
	}
	return s.repo.Update(ctx, id, merged, round1(merged.Overall()), comments)
}

// DeleteRating removes a rating.
func (s *RatingService) DeleteRating(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	return s.repo.Delete(ctx, id)
}

func (s *RatingService) resolve(ctx context.Context, ratings []models.Rating) ([]models.RatingDetail, error) {
	idSet := map[string]struct{}{}
	for _, rt := range ratings {
		idSet[rt.PlayerID] = struct{}{}
		idSet[rt.RaterID] = struct{}{}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	names, err := s.users.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	details := make([]models.RatingDetail, 0, len(ratings))
	for _, rt := range ratings {
		details = append(details, models.RatingDetail{
			Rating:     rt,
			PlayerName: names[rt.PlayerID],
			RaterName:  names[rt.RaterID],
		})
	}
	return details, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
