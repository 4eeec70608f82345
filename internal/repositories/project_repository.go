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

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id string) (*models.Project, error)
	FindPage(ctx context.Context, page, limit int) ([]models.Project, int64, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id string) error
}

type projectRepository struct {
	c *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepository{c: db.Collection("projects")}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()
	project.Touch()

	_, err := r.c.InsertOne(ctx, project)
	return err
}

func (r *projectRepository) FindByID(ctx context.Context, id string) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	var p models.Project
	if err := r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindPage returns one page of projects, newest first, plus the total count.
func (r *projectRepository) FindPage(ctx context.Context, page, limit int) ([]models.Project, int64, error) {
	total, err := r.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	skip := int64((page - 1) * limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit))

	cur, err := r.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// Update persists the full document; the caller loads it first, so
// createdAt carries over.
func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	project.UpdatedAt = time.Now()

	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": project.ID}, project)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProjectNotFound
	}

	res, err := r.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}
