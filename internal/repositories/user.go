package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/models"
)

// ErrDuplicateUser is returned when a username or email is already taken.
var ErrDuplicateUser = errors.New("user already exists")

const usersCollection = "users"

// EnsureUserIndexes creates the unique username index the write path relies on.
func EnsureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

type UserReadRepository struct {
	coll *mongo.Collection
}

func NewUserReadRepository(db *mongo.Database) *UserReadRepository {
	return &UserReadRepository{coll: db.Collection(usersCollection)}
}

func (r *UserReadRepository) getOne(ctx context.Context, filter bson.M) (*models.UserDB, error) {
	var user models.UserDB
	err := r.coll.FindOne(ctx, filter).Decode(&user)

	logger.Log.Debugw("users query",
		"filter", filter,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the user with the given username, or nil when absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	return r.getOne(ctx, bson.M{"username": username})
}

// GetByEmail returns the user with the given email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.getOne(ctx, bson.M{"email": email})
}

// GetByID returns the user with the given hex object ID, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.UserDB, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.getOne(ctx, bson.M{"_id": oid})
}

type UserWriteRepository struct {
	coll *mongo.Collection
}

func NewUserWriteRepository(db *mongo.Database) *UserWriteRepository {
	return &UserWriteRepository{coll: db.Collection(usersCollection)}
}

// Save inserts a new user document and returns its hex object ID.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) (string, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, user)

	logger.Log.Debugw("users insert",
		"username", user.Username,
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return "", ErrDuplicateUser
	}
	if err != nil {
		return "", err
	}

	oid, _ := res.InsertedID.(bson.ObjectID)
	return oid.Hex(), nil
}

// UpdatePasswordHash replaces the stored password hash for the given user.
func (r *UserWriteRepository) UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"password_hash": passwordHash,
			"updated_at":    time.Now().UTC(),
		}},
	)

	logger.Log.Debugw("users password update",
		"user_id", id,
		"error", err,
	)

	return err
}
