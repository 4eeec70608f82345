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

var ErrContactNotFound = errors.New("contact not found")

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	FindByID(ctx context.Context, id string) (*models.Contact, error)
	FindAll(ctx context.Context) ([]models.Contact, error)
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error)
}

type contactRepository struct {
	c *mongo.Collection
}

func NewContactRepository(db *mongo.Database) ContactRepository {
	return &contactRepository{c: db.Collection("contacts")}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	contact.ID = primitive.NewObjectID()
	if contact.Status == "" {
		contact.Status = models.ContactStatusUnread
	}
	contact.Touch()

	_, err := r.c.InsertOne(ctx, contact)
	return err
}

func (r *contactRepository) FindByID(ctx context.Context, id string) (*models.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrContactNotFound
	}

	var contact models.Contact
	if err := r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&contact); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// FindAll returns contact messages newest first.
func (r *contactRepository) FindAll(ctx context.Context) ([]models.Contact, error) {
	cur, err := r.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	contacts := []models.Contact{}
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// UpdateStatus sets the status and returns the updated document.
func (r *contactRepository) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrContactNotFound
	}

	var contact models.Contact
	err = r.c.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&contact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}
