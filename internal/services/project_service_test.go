package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

// fakeProjectRepo preserves insertion order for paging.
type fakeProjectRepo struct {
	order    []string
	projects map[string]*models.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]*models.Project{}}
}

func (f *fakeProjectRepo) Create(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()
	f.projects[project.ID.Hex()] = project
	f.order = append(f.order, project.ID.Hex())
	return nil
}

func (f *fakeProjectRepo) FindByID(ctx context.Context, id string) (*models.Project, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, repositories.ErrProjectNotFound
	}
	return project, nil
}

func (f *fakeProjectRepo) FindPage(ctx context.Context, page, limit int) ([]models.Project, int64, error) {
	total := int64(len(f.order))
	skip := (page - 1) * limit

	out := []models.Project{}
	for i := skip; i < len(f.order) && i < skip+limit; i++ {
		out = append(out, *f.projects[f.order[i]])
	}
	return out, total, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, project *models.Project) error {
	if _, ok := f.projects[project.ID.Hex()]; !ok {
		return repositories.ErrProjectNotFound
	}
	f.projects[project.ID.Hex()] = project
	return nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.projects[id]; !ok {
		return repositories.ErrProjectNotFound
	}
	delete(f.projects, id)
	for i, pid := range f.order {
		if pid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func seedProjects(t *testing.T, svc ProjectService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.Create(context.Background(), &dto.ProjectInput{
			Name:        "Project",
			Description: "A project",
		})
		require.NoError(t, err)
	}
}

func TestProjectList_HasMore(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo, NewAssetService(newFakeStorage()))
	seedProjects(t, svc, 25)

	page1, err := svc.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, page1.Projects, 10)
	assert.True(t, page1.HasMore)

	page3, err := svc.List(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Len(t, page3.Projects, 5)
	assert.False(t, page3.HasMore)

	// past the end: empty page, no more
	page4, err := svc.List(context.Background(), 4, 10)
	require.NoError(t, err)
	assert.Empty(t, page4.Projects)
	assert.False(t, page4.HasMore)
}

func TestProjectList_ExactBoundary(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo, NewAssetService(newFakeStorage()))
	seedProjects(t, svc, 20)

	page2, err := svc.List(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Len(t, page2.Projects, 10)
	assert.False(t, page2.HasMore)
}

func TestProjectList_DefaultsForBadParams(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo, NewAssetService(newFakeStorage()))
	seedProjects(t, svc, 5)

	resp, err := svc.List(context.Background(), 0, -3)
	require.NoError(t, err)
	assert.Len(t, resp.Projects, 5)
	assert.False(t, resp.HasMore)
}

func TestProjectCreate_UploadsImages(t *testing.T) {
	repo := newFakeProjectRepo()
	st := newFakeStorage()
	svc := NewProjectService(repo, NewAssetService(st))

	project, err := svc.Create(context.Background(), &dto.ProjectInput{
		Name:        "Shop",
		Description: "E-commerce demo",
		Images:      []*dto.File{pngFile("one.png"), pngFile("two.png")},
	})
	require.NoError(t, err)

	assert.Len(t, project.Images, 2)
	assert.Len(t, st.objects, 2)
}

func TestProjectUpdate_ReconcilesImages(t *testing.T) {
	repo := newFakeProjectRepo()
	st := newFakeStorage()
	svc := NewProjectService(repo, NewAssetService(st))

	project, err := svc.Create(context.Background(), &dto.ProjectInput{
		Name:        "Shop",
		Description: "E-commerce demo",
		Images:      []*dto.File{pngFile("one.png"), pngFile("two.png")},
	})
	require.NoError(t, err)
	require.Len(t, project.Images, 2)

	kept := project.Images[0]
	updated, err := svc.Update(context.Background(), project.ID.Hex(), &dto.ProjectInput{
		Name:        "Shop v2",
		Description: "E-commerce demo",
		OldImages:   []string{kept},
		Images:      []*dto.File{pngFile("three.png")},
	})
	require.NoError(t, err)

	require.Len(t, updated.Images, 2)
	assert.Equal(t, kept, updated.Images[0])
	assert.Len(t, st.deleted, 1)
	assert.Equal(t, "Shop v2", updated.Name)
}

func TestProjectDelete_RemovesImages(t *testing.T) {
	repo := newFakeProjectRepo()
	st := newFakeStorage()
	svc := NewProjectService(repo, NewAssetService(st))

	project, err := svc.Create(context.Background(), &dto.ProjectInput{
		Name:        "Shop",
		Description: "E-commerce demo",
		Images:      []*dto.File{pngFile("one.png")},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), project.ID.Hex()))
	assert.Empty(t, repo.projects)
	assert.Len(t, st.deleted, 1)
}

func TestProjectGet_NotFound(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), NewAssetService(newFakeStorage()))

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
