package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

// fakeContentRepo applies $set documents onto in-memory singletons the same
// way the upsert pipeline does.
type fakeContentRepo struct {
	home     *models.HomeData
	about    *models.About
	settings *models.WebsiteSettings
}

func (f *fakeContentRepo) GetHome(ctx context.Context) (*models.HomeData, error) {
	if f.home == nil {
		return nil, repositories.ErrContentNotFound
	}
	return f.home, nil
}

func (f *fakeContentRepo) UpsertHome(ctx context.Context, set bson.M) (*models.HomeData, error) {
	if f.home == nil {
		f.home = &models.HomeData{}
	}
	for key, val := range set {
		s, _ := val.(string)
		switch key {
		case "name":
			f.home.Name = s
		case "title":
			f.home.Title = s
		case "description":
			f.home.Description = s
		case "cvUrl":
			f.home.CvURL = s
		case "githubUrl":
			f.home.GithubURL = s
		case "linkedinUrl":
			f.home.LinkedinURL = s
		case "profileImage":
			f.home.ProfileImage = s
		}
	}
	return f.home, nil
}

func (f *fakeContentRepo) GetAbout(ctx context.Context) (*models.About, error) {
	if f.about == nil {
		return nil, repositories.ErrContentNotFound
	}
	return f.about, nil
}

func (f *fakeContentRepo) UpsertAbout(ctx context.Context, set bson.M) (*models.About, error) {
	if f.about == nil {
		f.about = &models.About{}
	}
	for key, val := range set {
		switch key {
		case "title":
			f.about.Title, _ = val.(string)
		case "description":
			f.about.Description, _ = val.(string)
		case "details":
			f.about.Details, _ = val.(string)
		case "image":
			f.about.Image, _ = val.(string)
		case "bulletPoints":
			f.about.BulletPoints, _ = val.([]string)
		}
	}
	return f.about, nil
}

func (f *fakeContentRepo) GetOrCreateSettings(ctx context.Context) (*models.WebsiteSettings, error) {
	if f.settings == nil {
		defaults := models.DefaultWebsiteSettings()
		f.settings = &defaults
	}
	return f.settings, nil
}

func (f *fakeContentRepo) UpsertSettings(ctx context.Context, set bson.M) (*models.WebsiteSettings, error) {
	if f.settings == nil {
		defaults := models.DefaultWebsiteSettings()
		f.settings = &defaults
	}
	for key, val := range set {
		switch key {
		case "websiteName":
			f.settings.WebsiteName, _ = val.(string)
		case "websiteDescription":
			f.settings.WebsiteDescription, _ = val.(string)
		case "primaryColor":
			f.settings.PrimaryColor, _ = val.(string)
		case "secondaryColor":
			f.settings.SecondaryColor, _ = val.(string)
		case "footerText":
			f.settings.FooterText, _ = val.(string)
		case "email":
			f.settings.Email, _ = val.(string)
		case "contactNumber":
			f.settings.ContactNumber, _ = val.(string)
		case "address":
			f.settings.Address, _ = val.(string)
		case "logo":
			f.settings.Logo, _ = val.(string)
		case "favicon":
			f.settings.Favicon, _ = val.(string)
		case "socialLinks":
			f.settings.SocialLinks, _ = val.(models.SocialLinks)
		case "seo":
			f.settings.SEO, _ = val.(models.SEO)
		}
	}
	return f.settings, nil
}

func TestGetHome_DefaultsWhenEmpty(t *testing.T) {
	svc := NewContentService(&fakeContentRepo{}, NewAssetService(newFakeStorage()))

	home, err := svc.GetHome(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", home.Name)
	assert.Equal(t, "Full Stack Developer", home.Title)
}

func TestUpdateHome_CreatesSingleton(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := NewContentService(repo, NewAssetService(newFakeStorage()))

	home, err := svc.UpdateHome(context.Background(), &dto.HomeUpdateInput{
		Name:  "Jane Smith",
		Title: "Backend Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", home.Name)

	loaded, err := svc.GetHome(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", loaded.Name)
}

func TestUpdateHome_ReplacesProfileImage(t *testing.T) {
	st := newFakeStorage()
	repo := &fakeContentRepo{home: &models.HomeData{
		Name:         "Jane Smith",
		ProfileImage: "https://cdn.example.com/portfolio/old-profile.png",
	}}
	svc := NewContentService(repo, NewAssetService(st))

	home, err := svc.UpdateHome(context.Background(), &dto.HomeUpdateInput{
		Name:            "Jane Smith",
		ProfileImage:    pngFile("new-profile.png"),
		OldProfileImage: "https://cdn.example.com/portfolio/old-profile.png",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "https://cdn.example.com/portfolio/old-profile.png", home.ProfileImage)
	assert.Equal(t, []string{"portfolio/old-profile.png"}, st.deleted)
}

func TestGetAbout_EmptyWhenMissing(t *testing.T) {
	svc := NewContentService(&fakeContentRepo{}, NewAssetService(newFakeStorage()))

	about, err := svc.GetAbout(context.Background())
	require.NoError(t, err)
	assert.Empty(t, about.Title)
}

func TestUpdateAbout_ImageURLWithoutFile(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := NewContentService(repo, NewAssetService(newFakeStorage()))

	about, err := svc.UpdateAbout(context.Background(), &dto.AboutUpdateInput{
		Title:        "About Me",
		Description:  "A developer",
		BulletPoints: []string{"ships", "tests"},
		ImageURL:     "https://cdn.example.com/portfolio/existing.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/portfolio/existing.png", about.Image)
	assert.Equal(t, []string{"ships", "tests"}, about.BulletPoints)
}

func TestGetSettings_CreatesDefaults(t *testing.T) {
	svc := NewContentService(&fakeContentRepo{}, NewAssetService(newFakeStorage()))

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "My Portfolio", settings.WebsiteName)
	assert.Equal(t, "#3b82f6", settings.PrimaryColor)
}

func TestUpdateSettings_PartialUpdate(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := NewContentService(repo, NewAssetService(newFakeStorage()))

	settings, err := svc.UpdateSettings(context.Background(), &dto.SettingsUpdateInput{
		WebsiteName: "Jane's Portfolio",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane's Portfolio", settings.WebsiteName)
	// untouched fields keep their defaults
	assert.Equal(t, "#3b82f6", settings.PrimaryColor)
}

func TestUpdateSettings_ParsesSocialLinksAndSEO(t *testing.T) {
	svc := NewContentService(&fakeContentRepo{}, NewAssetService(newFakeStorage()))

	settings, err := svc.UpdateSettings(context.Background(), &dto.SettingsUpdateInput{
		SocialLinksJSON: `{"github":"https://github.com/jane"}`,
		SEOJSON:         `{"title":"Jane Smith","keywords":"go,backend"}`,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/jane", settings.SocialLinks.Github)
	assert.Equal(t, "Jane Smith", settings.SEO.Title)
}

func TestUpdateSettings_RejectsMalformedJSON(t *testing.T) {
	svc := NewContentService(&fakeContentRepo{}, NewAssetService(newFakeStorage()))

	_, err := svc.UpdateSettings(context.Background(), &dto.SettingsUpdateInput{
		SocialLinksJSON: `{not json`,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestUpdateSettings_ReplacesLogo(t *testing.T) {
	st := newFakeStorage()
	repo := &fakeContentRepo{}
	svc := NewContentService(repo, NewAssetService(st))

	first, err := svc.UpdateSettings(context.Background(), &dto.SettingsUpdateInput{
		Logo: pngFile("logo.png"),
	})
	require.NoError(t, err)
	firstLogo := first.Logo
	require.NotEmpty(t, firstLogo)

	second, err := svc.UpdateSettings(context.Background(), &dto.SettingsUpdateInput{
		Logo: pngFile("logo-v2.png"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, firstLogo, second.Logo)
	assert.Len(t, st.deleted, 1)
}
