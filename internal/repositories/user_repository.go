package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	AdminExists(ctx context.Context) (bool, error)
}

type userRepository struct {
	c *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{c: db.Collection("users")}
}

// Create inserts a new user. The email is lower-cased before insert so the
// unique index rejects case-differing duplicates.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Touch()

	if _, err := r.c.InsertOne(ctx, user); err != nil {
		if isDup(err) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var u models.User
	if err := r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail looks up a user by case-insensitive email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.c.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": user.ID}, user, options.Replace())
	if err != nil {
		if isDup(err) {
			return ErrUserAlreadyExists
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AdminExists reports whether any admin account is present.
func (r *userRepository) AdminExists(ctx context.Context) (bool, error) {
	count, err := r.c.CountDocuments(ctx, bson.M{"role": models.UserRoleAdmin})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
