package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Marwanegoudani/nextgenfut/internal/errs"
	"github.com/Marwanegoudani/nextgenfut/internal/models"
)

// MatchRepo wraps the matches collection.
type MatchRepo struct{ col *mongo.Collection }

// NewMatchRepo ensures the query indexes and returns the repository.
func NewMatchRepo(c *Client) (*MatchRepo, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}
	col := db.Collection("matches")

	_, err = col.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "location.city", Value: 1}}},
		{Keys: bson.D{{Key: "createdBy", Value: 1}}},
	})
	if err != nil {
		return nil, err
	}
	return &MatchRepo{col: col}, nil
}

// Insert stores a new match.
func (r *MatchRepo) Insert(ctx context.Context, m *models.Match) error {
	now := time.Now().UTC()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt, m.UpdatedAt = now, now
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return errs.Internal("failed to create match", err)
	}
	return nil
}

// GetByID fetches a single match.
func (r *MatchRepo) GetByID(ctx context.Context, id string) (*models.Match, error) {
	var m models.Match
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("match_not_found", "match not found")
	}
	if err != nil {
		return nil, errs.Internal("failed to get match", err)
	}
	return &m, nil
}

// Find returns a page of matches sorted by date ascending plus the total
// count for the same filter.
func (r *MatchRepo) Find(ctx context.Context, f models.MatchFilter) ([]models.Match, int64, error) {
	query := bson.M{}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.City != "" {
		query["location.city"] = f.City
	}
	if f.DateFrom != nil && f.DateTo != nil {
		query["date"] = bson.M{"$gte": *f.DateFrom, "$lte": *f.DateTo}
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}

	cur, err := r.col.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetSkip(f.Skip).
		SetLimit(limit))
	if err != nil {
		return nil, 0, errs.Internal("failed to list matches", err)
	}
	defer cur.Close(ctx)

	var matches []models.Match
	if err := cur.All(ctx, &matches); err != nil {
		return nil, 0, errs.Internal("failed to decode matches", err)
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errs.Internal("failed to count matches", err)
	}
	return matches, total, nil
}

// PushPlayer appends a player to one roster with a single conditional update.
// The filter requires scheduled status and absence from both rosters, so two
// racing joins can never both commit; the loser simply matches no document.
func (r *MatchRepo) PushPlayer(ctx context.Context, matchID, playerID string, side models.TeamSide) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{
			"_id":        matchID,
			"status":     models.StatusScheduled,
			"teams.home": bson.M{"$ne": playerID},
			"teams.away": bson.M{"$ne": playerID},
		},
		bson.M{
			"$push": bson.M{"teams." + string(side): playerID},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		})
	if err != nil {
		return false, errs.Internal("failed to join match", err)
	}
	return res.ModifiedCount == 1, nil
}

// UpdateStatus sets the lifecycle status and, when supplied, the score pair.
func (r *MatchRepo) UpdateStatus(ctx context.Context, id string, status models.MatchStatus, scores *models.Scores) (*models.Match, error) {
	set := bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}
	if scores != nil {
		set["scores"] = *scores
	}

	var m models.Match
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("match_not_found", "match not found")
	}
	if err != nil {
		return nil, errs.Internal("failed to update match status", err)
	}
	return &m, nil
}

// Delete removes a match.
func (r *MatchRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errs.Internal("failed to delete match", err)
	}
	if res.DeletedCount == 0 {
		return errs.NotFound("match_not_found", "match not found")
	}
	return nil
}
