package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/storage"
)

// assetFolder is the logical prefix all portfolio images are stored under.
const assetFolder = "portfolio"

// AssetService implements the upload-new/delete-old sequence applied
// whenever an image-bearing document changes.
type AssetService interface {
	// Upload stores one file and returns its canonical URL.
	Upload(ctx context.Context, file *dto.File) (string, error)

	// Replace handles a single-image field: a nil file keeps oldURL
	// untouched and returns ("", nil); otherwise the old object is
	// best-effort deleted and the new file uploaded.
	Replace(ctx context.Context, file *dto.File, oldURL string) (string, error)

	// Reconcile handles a multi-image field: stored is what the document
	// currently references, retained what the client kept, newFiles what it
	// added. Stored URLs absent from retained are best-effort deleted; the
	// result is retained + newly uploaded, in order.
	Reconcile(ctx context.Context, stored, retained []string, newFiles []*dto.File) ([]string, error)

	// DeleteAll best-effort deletes every referenced object.
	DeleteAll(ctx context.Context, urls []string)
}

type assetService struct {
	storage storage.Storage
}

func NewAssetService(st storage.Storage) AssetService {
	return &assetService{storage: st}
}

// keyFromURL extracts the storage key from a canonical asset URL by locating
// the folder segment. Returns "" for foreign or malformed URLs.
func keyFromURL(url string) string {
	marker := assetFolder + "/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return ""
	}
	key := url[idx:]
	if q := strings.IndexAny(key, "?#"); q >= 0 {
		key = key[:q]
	}
	if key == marker {
		return ""
	}
	return key
}

func objectKey(file *dto.File) string {
	ext := path.Ext(file.Name)
	if ext == "" {
		switch file.ContentType {
		case "image/png":
			ext = ".png"
		case "image/gif":
			ext = ".gif"
		case "image/webp":
			ext = ".webp"
		case "image/svg+xml":
			ext = ".svg"
		case "image/x-icon", "image/vnd.microsoft.icon":
			ext = ".ico"
		default:
			ext = ".jpg"
		}
	}
	return fmt.Sprintf("%s/%s%s", assetFolder, uuid.NewString(), ext)
}

func (s *assetService) Upload(ctx context.Context, file *dto.File) (string, error) {
	key := objectKey(file)

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.storage.Save(ctx, key, bytes.NewReader(file.Data), contentType); err != nil {
		return "", fmt.Errorf("asset upload failed: %w", err)
	}
	return s.storage.URL(key), nil
}

// deleteByURL removes the object behind url. Failures are logged and
// swallowed: a stale object is preferable to a failed content update.
func (s *assetService) deleteByURL(ctx context.Context, url string) {
	key := keyFromURL(url)
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		logger.CtxWarn(ctx, "failed to delete old asset", "key", key, "error", err.Error())
	}
}

func (s *assetService) Replace(ctx context.Context, file *dto.File, oldURL string) (string, error) {
	if file == nil {
		return "", nil
	}

	if oldURL != "" {
		s.deleteByURL(ctx, oldURL)
	}

	return s.Upload(ctx, file)
}

func (s *assetService) Reconcile(ctx context.Context, stored, retained []string, newFiles []*dto.File) ([]string, error) {
	kept := make(map[string]bool, len(retained))
	for _, url := range retained {
		kept[url] = true
	}

	for _, url := range stored {
		if !kept[url] {
			s.deleteByURL(ctx, url)
		}
	}

	final := make([]string, 0, len(retained)+len(newFiles))
	final = append(final, retained...)

	for _, file := range newFiles {
		url, err := s.Upload(ctx, file)
		if err != nil {
			return nil, err
		}
		final = append(final, url)
	}
	return final, nil
}

func (s *assetService) DeleteAll(ctx context.Context, urls []string) {
	for _, url := range urls {
		s.deleteByURL(ctx, url)
	}
}
