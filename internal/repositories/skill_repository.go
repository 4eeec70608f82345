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

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	FindAll(ctx context.Context) ([]models.Skill, error)
	Update(ctx context.Context, id string, upd *models.Skill) (*models.Skill, error)
	Delete(ctx context.Context, id string) error
}

type skillRepository struct {
	c *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) SkillRepository {
	return &skillRepository{c: db.Collection("skills")}
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	skill.ID = primitive.NewObjectID()
	skill.Touch()

	_, err := r.c.InsertOne(ctx, skill)
	return err
}

func (r *skillRepository) FindAll(ctx context.Context) ([]models.Skill, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	skills := []models.Skill{}
	if err := cur.All(ctx, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// Update overwrites the editable fields and returns the updated document.
func (r *skillRepository) Update(ctx context.Context, id string, upd *models.Skill) (*models.Skill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrSkillNotFound
	}

	set := bson.M{
		"name":       upd.Name,
		"percentage": upd.Percentage,
		"category":   upd.Category,
		"icon":       upd.Icon,
		"updatedAt":  time.Now(),
	}

	var skill models.Skill
	err = r.c.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&skill)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrSkillNotFound
	}

	res, err := r.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrSkillNotFound
	}
	return nil
}
