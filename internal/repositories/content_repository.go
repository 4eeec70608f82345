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

var ErrContentNotFound = errors.New("content not found")

// ContentRepository manages the three singleton documents. Writes go through
// atomic upserts on an empty filter, so two concurrent first writes cannot
// create two documents.
type ContentRepository interface {
	GetHome(ctx context.Context) (*models.HomeData, error)
	UpsertHome(ctx context.Context, set bson.M) (*models.HomeData, error)

	GetAbout(ctx context.Context) (*models.About, error)
	UpsertAbout(ctx context.Context, set bson.M) (*models.About, error)

	GetOrCreateSettings(ctx context.Context) (*models.WebsiteSettings, error)
	UpsertSettings(ctx context.Context, set bson.M) (*models.WebsiteSettings, error)
}

type contentRepository struct {
	home     *mongo.Collection
	about    *mongo.Collection
	settings *mongo.Collection
}

func NewContentRepository(db *mongo.Database) ContentRepository {
	return &contentRepository{
		home:     db.Collection("homedata"),
		about:    db.Collection("abouts"),
		settings: db.Collection("websitesettings"),
	}
}

func upsertOpts() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
}

func upsertUpdate(set bson.M) bson.M {
	set["updatedAt"] = time.Now()
	return bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID(), "createdAt": time.Now()},
	}
}

func (r *contentRepository) GetHome(ctx context.Context) (*models.HomeData, error) {
	var home models.HomeData
	if err := r.home.FindOne(ctx, bson.M{}).Decode(&home); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return &home, nil
}

func (r *contentRepository) UpsertHome(ctx context.Context, set bson.M) (*models.HomeData, error) {
	var home models.HomeData
	err := r.home.FindOneAndUpdate(ctx, bson.M{}, upsertUpdate(set), upsertOpts()).Decode(&home)
	if err != nil {
		return nil, err
	}
	return &home, nil
}

func (r *contentRepository) GetAbout(ctx context.Context) (*models.About, error) {
	var about models.About
	if err := r.about.FindOne(ctx, bson.M{}).Decode(&about); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return &about, nil
}

func (r *contentRepository) UpsertAbout(ctx context.Context, set bson.M) (*models.About, error) {
	var about models.About
	err := r.about.FindOneAndUpdate(ctx, bson.M{}, upsertUpdate(set), upsertOpts()).Decode(&about)
	if err != nil {
		return nil, err
	}
	return &about, nil
}

// GetOrCreateSettings returns the settings singleton, creating it with
// defaults when absent.
func (r *contentRepository) GetOrCreateSettings(ctx context.Context) (*models.WebsiteSettings, error) {
	defaults := models.DefaultWebsiteSettings()
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":            primitive.NewObjectID(),
			"websiteName":    defaults.WebsiteName,
			"primaryColor":   defaults.PrimaryColor,
			"secondaryColor": defaults.SecondaryColor,
			"footerText":     defaults.FooterText,
			"createdAt":      time.Now(),
			"updatedAt":      time.Now(),
		},
	}

	var settings models.WebsiteSettings
	err := r.settings.FindOneAndUpdate(ctx, bson.M{}, update, upsertOpts()).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *contentRepository) UpsertSettings(ctx context.Context, set bson.M) (*models.WebsiteSettings, error) {
	var settings models.WebsiteSettings
	err := r.settings.FindOneAndUpdate(ctx, bson.M{}, upsertUpdate(set), upsertOpts()).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
