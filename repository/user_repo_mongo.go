package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rajat290/fitpro-connect/models"
)

const (
	mongoDatabase   = "fitproconnect"
	usersCollection = "users"
)

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) users() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection(usersCollection)
}

func (r *MongoUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	// No unique index is assumed here, so duplicates are checked first.
	existing, err := r.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateEmail
	}

	if _, err := r.users().InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (r *MongoUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	user := &models.User{}
	err := r.users().FindOne(ctx, bson.M{"email": models.NormalizeEmail(email)}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return user, nil
}

func (r *MongoUserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	user := &models.User{}
	err := r.users().FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return user, nil
}

func (r *MongoUserRepo) ListMembers(ctx context.Context) ([]*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.users().Find(ctx, bson.M{"role": models.RoleMember})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var members []*models.User
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return members, nil
}
