package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is the object-storage abstraction used by the asset pipeline.
type Storage interface {
	// Save stores an object under the given key
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves an object by key
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes an object by key
	Delete(ctx context.Context, key string) error

	// Exists checks whether an object is present
	Exists(ctx context.Context, key string) (bool, error)

	// URL returns the canonical public URL for the key
	URL(key string) string
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3
	BasePath  string // local storage root
	BaseURL   string // public URL base
	Bucket    string // S3/R2 bucket
	Region    string // S3 region
	AccessKey string // S3/R2 credentials
	SecretKey string
	Endpoint  string // custom endpoint for R2 or S3-compatible providers
}

// New creates a storage backend from configuration.
func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
