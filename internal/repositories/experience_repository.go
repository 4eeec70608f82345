package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio_backend/internal/models"
)

var ErrExperienceNotFound = errors.New("experience not found")

type ExperienceRepository interface {
	Create(ctx context.Context, exp *models.Experience) error
	FindAll(ctx context.Context) ([]models.Experience, error)
	Update(ctx context.Context, id string, upd *models.Experience) (*models.Experience, error)
	Delete(ctx context.Context, id string) error
}

type experienceRepository struct {
	c *mongo.Collection
}

func NewExperienceRepository(db *mongo.Database) ExperienceRepository {
	return &experienceRepository{c: db.Collection("experiences")}
}

func (r *experienceRepository) Create(ctx context.Context, exp *models.Experience) error {
	exp.ID = primitive.NewObjectID()
	exp.Touch()

	_, err := r.c.InsertOne(ctx, exp)
	return err
}

// FindAll returns experiences newest first.
func (r *experienceRepository) FindAll(ctx context.Context) ([]models.Experience, error) {
	cur, err := r.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	experiences := []models.Experience{}
	if err := cur.All(ctx, &experiences); err != nil {
		return nil, err
	}
	return experiences, nil
}

// Update overwrites the editable fields and returns the updated document.
func (r *experienceRepository) Update(ctx context.Context, id string, upd *models.Experience) (*models.Experience, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrExperienceNotFound
	}

	set := bson.M{
		"title":        upd.Title,
		"company":      upd.Company,
		"location":     upd.Location,
		"current":      upd.Current,
		"description":  upd.Description,
		"technologies": upd.Technologies,
		"updatedAt":    time.Now(),
	}

	var exp models.Experience
	err = r.c.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&exp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return &exp, nil
}

func (r *experienceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrExperienceNotFound
	}

	res, err := r.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrExperienceNotFound
	}
	return nil
}
