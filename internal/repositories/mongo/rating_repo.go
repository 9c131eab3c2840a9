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

// RatingRepo wraps the ratings collection.
type RatingRepo struct{ col *mongo.Collection }

// NewRatingRepo ensures the per-field and unique compound indexes.
func NewRatingRepo(c *Client) (*RatingRepo, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}
	col := db.Collection("ratings")

	_, err = col.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "matchId", Value: 1}}},
		{Keys: bson.D{{Key: "playerId", Value: 1}}},
		{Keys: bson.D{{Key: "raterId", Value: 1}}},
		{
			Keys: bson.D{
				{Key: "matchId", Value: 1},
				{Key: "playerId", Value: 1},
				{Key: "raterId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return nil, err
	}
	return &RatingRepo{col: col}, nil
}

// Insert stores a rating. The unique compound index surfaces duplicate
// (match, player, rater) triples as a conflict.
func (r *RatingRepo) Insert(ctx context.Context, rt *models.Rating) error {
	now := time.Now().UTC()
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	rt.CreatedAt, rt.UpdatedAt = now, now
	if _, err := r.col.InsertOne(ctx, rt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.Conflict("rating_exists", "this rater has already rated this player for this match")
		}
		return errs.Internal("failed to create rating", err)
	}
	return nil
}

// GetByID fetches a single rating.
func (r *RatingRepo) GetByID(ctx context.Context, id string) (*models.Rating, error) {
	var rt models.Rating
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("rating_not_found", "rating not found")
	}
	if err != nil {
		return nil, errs.Internal("failed to get rating", err)
	}
	return &rt, nil
}

// ListByPlayer returns a page of a player's ratings plus the total count.
// Sortable by creation date or by the stored overall score.
func (r *RatingRepo) ListByPlayer(ctx context.Context, playerID string, opts models.RatingListOptions) ([]models.Rating, int64, error) {
	sortField := "createdAt"
	if opts.SortBy == "rating" {
		sortField = "overall"
	}
	dir := -1
	if opts.Order == "asc" {
		dir = 1
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}

	query := bson.M{"playerId": playerID}
	cur, err := r.col.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: sortField, Value: dir}}).
		SetSkip(opts.Skip).
		SetLimit(limit))
	if err != nil {
		return nil, 0, errs.Internal("failed to list ratings", err)
	}
	defer cur.Close(ctx)

	var ratings []models.Rating
	if err := cur.All(ctx, &ratings); err != nil {
		return nil, 0, errs.Internal("failed to decode ratings", err)
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errs.Internal("failed to count ratings", err)
	}
	return ratings, total, nil
}

// AllByPlayer returns every rating for a player, used for averaging.
func (r *RatingRepo) AllByPlayer(ctx context.Context, playerID string) ([]models.Rating, error) {
	cur, err := r.col.Find(ctx, bson.M{"playerId": playerID})
	if err != nil {
		return nil, errs.Internal("failed to list ratings", err)
	}
	defer cur.Close(ctx)

	var ratings []models.Rating
	if err := cur.All(ctx, &ratings); err != nil {
		return nil, errs.Internal("failed to decode ratings", err)
	}
	return ratings, nil
}

// ListByMatch returns every rating recorded for a match.
func (r *RatingRepo) ListByMatch(ctx context.Context, matchID string) ([]models.Rating, error) {
	cur, err := r.col.Find(ctx, bson.M{"matchId": matchID})
	if err != nil {
		return nil, errs.Internal("failed to list match ratings", err)
	}
	defer cur.Close(ctx)

	var ratings []models.Rating
	if err := cur.All(ctx, &ratings); err != nil {
		return nil, errs.Internal("failed to decode match ratings", err)
	}
	return ratings, nil
}

// Update replaces the skill vector, overall score and comments of a rating.
func (r *RatingRepo) Update(ctx context.Context, id string, skills models.Skills, overall float64, comments *string) (*models.Rating, error) {
	set := bson.M{
		"skills":    skills,
		"overall":   overall,
		"updatedAt": time.Now().UTC(),
	}
	if comments != nil {
		set["comments"] = *comments
	}

	var rt models.Rating
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&rt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("rating_not_found", "rating not found")
	}
	if err != nil {
		return nil, errs.Internal("failed to update rating", err)
	}
	return &rt, nil
}

// Delete removes a rating.
func (r *RatingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errs.Internal("failed to delete rating", err)
	}
	if res.DeletedCount == 0 {
		return errs.NotFound("rating_not_found", "rating not found")
	}
	return nil
}
