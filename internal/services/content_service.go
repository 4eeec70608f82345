package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

// ContentService serves the three singleton sections: hero, about and
// site settings. Reads never 404; missing documents yield defaults.
type ContentService interface {
	GetHome(ctx context.Context) (*models.HomeData, error)
	UpdateHome(ctx context.Context, input *dto.HomeUpdateInput) (*models.HomeData, error)

	GetAbout(ctx context.Context) (*models.About, error)
	UpdateAbout(ctx context.Context, input *dto.AboutUpdateInput) (*models.About, error)

	GetSettings(ctx context.Context) (*models.WebsiteSettings, error)
	UpdateSettings(ctx context.Context, input *dto.SettingsUpdateInput) (*models.WebsiteSettings, error)
}

type contentService struct {
	content repositories.ContentRepository
	assets  AssetService
}

func NewContentService(content repositories.ContentRepository, assets AssetService) ContentService {
	return &contentService{content: content, assets: assets}
}

func (s *contentService) GetHome(ctx context.Context) (*models.HomeData, error) {
	home, err := s.content.GetHome(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrContentNotFound) {
			defaults := models.DefaultHomeData()
			return &defaults, nil
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "content", "Failed to load home data", http.StatusInternalServerError)
	}
	return home, nil
}

func (s *contentService) UpdateHome(ctx context.Context, input *dto.HomeUpdateInput) (*models.HomeData, error) {
	set := bson.M{
		"name":        input.Name,
		"title":       input.Title,
		"description": input.Description,
		"cvUrl":       input.CvURL,
		"githubUrl":   input.GithubURL,
		"linkedinUrl": input.LinkedinURL,
	}

	if input.ProfileImage != nil {
		url, err := s.assets.Replace(ctx, input.ProfileImage, input.OldProfileImage)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "content", "Failed to upload profile image", http.StatusInternalServerError)
		}
		set["profileImage"] = url
	}

	home, err := s.content.UpsertHome(ctx, set)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "content", "Failed to update home data", http.StatusInternalServerError)
	}
	return home, nil
}

func (s *contentService) GetAbout(ctx context.Context) (*models.About, error) {
	about, err := s.content.GetAbout(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrContentNotFound) {
			return &models.About{}, nil
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "content", "Failed to load about data", http.StatusInternalServerError)
	}
	return about, nil
}

func (s *contentService) UpdateAbout(ctx context.Context, input *dto.AboutUpdateInput) (*models.About, error) {
	set := bson.M{
		"title":        input.Title,
		"description":  input.Description,
		"details":      input.Details,
		"bulletPoints": input.BulletPoints,
	}

	if input.ImageFile != nil {
		current, err := s.content.GetAbout(ctx)
		oldURL := ""
		if err == nil {
			oldURL = current.Image
		} else if !errors.Is(err, repositories.ErrContentNotFound) {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "content", "Failed to load about data", http.StatusInternalServerError)
		}

		url, err := s.assets.Replace(ctx, input.ImageFile, oldURL)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "content", "Failed to upload about image", http.StatusInternalServerError)
		}
		set["image"] = url
	} else if input.ImageURL != "" {
		set["image"] = input.ImageURL
	}

	about, err := s.content.UpsertAbout(ctx, set)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "content", "Failed to update about data", http.StatusInternalServerError)
	}
	return about, nil
}

func (s *contentService) GetSettings(ctx context.Context) (*models.WebsiteSettings, error) {
	settings, err := s.content.GetOrCreateSettings(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "content", "Failed to load settings", http.StatusInternalServerError)
	}
	return settings, nil
}

// UpdateSettings applies a partial update: only submitted fields are
// written, so the dashboard can post individual sections.
func (s *contentService) UpdateSettings(ctx context.Context, input *dto.SettingsUpdateInput) (*models.WebsiteSettings, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	setIf := func(field, value string) {
		if value != "" {
			set[field] = value
		}
	}
	setIf("websiteName", input.WebsiteName)
	setIf("websiteDescription", input.WebsiteDescription)
	setIf("primaryColor", input.PrimaryColor)
	setIf("secondaryColor", input.SecondaryColor)
	setIf("email", input.Email)
	setIf("contactNumber", input.Phone)
	setIf("address", input.Address)
	setIf("footerText", input.FooterText)

	if input.SocialLinksJSON != "" {
		var links models.SocialLinks
		if err := json.Unmarshal([]byte(input.SocialLinksJSON), &links); err != nil {
			return nil, apperrors.NewBadRequestError("content", "Invalid socialLinks payload")
		}
		set["socialLinks"] = links
	}
	if input.SEOJSON != "" {
		var seo models.SEO
		if err := json.Unmarshal([]byte(input.SEOJSON), &seo); err != nil {
			return nil, apperrors.NewBadRequestError("content", "Invalid seo payload")
		}
		set["seo"] = seo
	}

	if input.Logo != nil {
		url, err := s.assets.Replace(ctx, input.Logo, current.Logo)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "content", "Failed to upload logo", http.StatusInternalServerError)
		}
		set["logo"] = url
	}
	if input.Favicon != nil {
		url, err := s.assets.Replace(ctx, input.Favicon, current.Favicon)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "content", "Failed to upload favicon", http.StatusInternalServerError)
		}
		set["favicon"] = url
	}

	if len(set) == 0 {
		return current, nil
	}

	settings, err := s.content.UpsertSettings(ctx, set)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "content", "Failed to update settings", http.StatusInternalServerError)
	}
	return settings, nil
}
