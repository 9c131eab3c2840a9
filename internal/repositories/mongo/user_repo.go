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

// UserRepo wraps the users collection.
type UserRepo struct{ col *mongo.Collection }

// NewUserRepo ensures the unique email index and returns the repository.
func NewUserRepo(c *Client) (*UserRepo, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}
	col := db.Collection("users")

	_, err = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return &UserRepo{col: col}, nil
}

// Create inserts a new user. A duplicate email surfaces as a conflict.
func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	now := time.Now().UTC()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt, u.UpdatedAt = now, now

	if _, err := r.col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.Conflict("email_taken", "a user with this email already exists")
		}
		return errs.Internal("failed to create user", err)
	}
	return nil
}

// GetByID fetches a single user.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("user_not_found", "user not found")
	}
	if err != nil {
		return nil, errs.Internal("failed to get user", err)
	}
	return &u, nil
}

// GetByEmail fetches a user by their lowercased email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("user_not_found", "user not found")
	}
	if err != nil {
		return nil, errs.Internal("failed to get user", err)
	}
	return &u, nil
}

// NamesByIDs resolves user ids to display names in a single query. Unknown
// ids are simply absent from the result.
func (r *UserRepo) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, errs.Internal("failed to resolve user names", err)
	}
	defer cur.Close(ctx)

	type row struct {
		ID   string `bson:"_id"`
		Name string `bson:"name"`
	}
	names := make(map[string]string, len(ids))
	for cur.Next(ctx) {
		var rw row
		if err := cur.Decode(&rw); err != nil {
			return nil, errs.Internal("failed to decode user name", err)
		}
		names[rw.ID] = rw.Name
	}
	if err := cur.Err(); err != nil {
		return nil, errs.Internal("failed to resolve user names", err)
	}
	return names, nil
}

// GetAvailability reads a player's availability sub-record. Non-player roles
// are reported as not found, matching the route contract.
func (r *UserRepo) GetAvailability(ctx context.Context, playerID string) (*models.Availability, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{"_id": playerID, "role": models.RolePlayer},
		options.FindOne().SetProjection(bson.M{"player.availability": 1})).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("player_not_found", "player not found")
	}
	if err != nil {
		return nil, errs.Internal("failed to get availability", err)
	}
	if u.Player == nil {
		return nil, nil
	}
	return u.Player.Availability, nil
}

// SetAvailability upserts the availability sub-record on a player document.
func (r *UserRepo) SetAvailability(ctx context.Context, playerID string, a models.Availability) (*models.Availability, error) {
	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": playerID, "role": models.RolePlayer},
		bson.M{"$set": bson.M{
			"player.availability": a,
			"updatedAt":           time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	var u models.User
	if err := res.Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound("player_not_found", "player not found")
		}
		return nil, errs.Internal("failed to set availability", err)
	}
	if u.Player == nil {
		return &a, nil
	}
	return u.Player.Availability, nil
}

// FindAvailablePlayers returns players whose availability flag is set and has
// not expired, optionally restricted to a preferred position. Distance
// filtering happens in the service, where the requester's location lives.
func (r *UserRepo) FindAvailablePlayers(ctx context.Context, now time.Time, position string) ([]models.User, error) {
	filter := bson.M{
		"role":                               models.RolePlayer,
		"player.availability.isAvailable":    true,
		"player.availability.availableUntil": bson.M{"$gt": now},
	}
	if position != "" {
		filter["player.availability.preferredPositions"] = position
	}

	cur, err := r.col.Find(ctx, filter,
		options.Find().SetProjection(bson.M{"name": 1, "role": 1, "player.availability": 1}))
	if err != nil {
		return nil, errs.Internal("failed to find available players", err)
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, errs.Internal("failed to decode available players", err)
	}
	return out, nil
}

// ClearExpiredAvailability flips the availability flag off for every player
// whose availableUntil has passed. Returns the number of documents touched.
func (r *UserRepo) ClearExpiredAvailability(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{
			"player.availability.isAvailable":    true,
			"player.availability.availableUntil": bson.M{"$lte": now},
		},
		bson.M{"$set": bson.M{
			"player.availability.isAvailable": false,
			"player.availability.lastUpdated": now,
		}})
	if err != nil {
		return 0, errs.Internal("failed to clear expired availability", err)
	}
	return res.ModifiedCount, nil
}
