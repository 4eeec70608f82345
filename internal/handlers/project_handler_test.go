package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/validator"
)

type stubProjectService struct {
	lastPage  int
	lastLimit int
}

func (s *stubProjectService) List(ctx context.Context, page, limit int) (*dto.ProjectListResponse, error) {
	s.lastPage = page
	s.lastLimit = limit
	return &dto.ProjectListResponse{Projects: []models.Project{}, HasMore: false}, nil
}

func (s *stubProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	return &models.Project{Name: "Shop"}, nil
}

func (s *stubProjectService) Create(ctx context.Context, input *dto.ProjectInput) (*models.Project, error) {
	return &models.Project{Name: input.Name}, nil
}

func (s *stubProjectService) Update(ctx context.Context, id string, input *dto.ProjectInput) (*models.Project, error) {
	return &models.Project{Name: input.Name}, nil
}

func (s *stubProjectService) Delete(ctx context.Context, id string) error { return nil }

func newProjectRouter(svc *stubProjectService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	base := NewBaseHandler(validator.New())
	handler := NewProjectHandler(base, svc)

	r := gin.New()
	api := r.Group("/api")
	handler.RegisterPublicRoutes(api)
	return r
}

func TestProjectList_PaginationParams(t *testing.T) {
	svc := &stubProjectService{}
	router := newProjectRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects?page=3&limit=5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, svc.lastPage)
	assert.Equal(t, 5, svc.lastLimit)
	assert.Contains(t, w.Body.String(), `"hasMore":false`)
	assert.Contains(t, w.Body.String(), `"projects":[]`)
}

func TestProjectList_PaginationDefaults(t *testing.T) {
	svc := &stubProjectService{}
	router := newProjectRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects?page=-1&limit=junk", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.lastPage)
	assert.Equal(t, 10, svc.lastLimit)
}

func TestProjectGet(t *testing.T) {
	router := newProjectRouter(&stubProjectService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects/abc123", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Shop")
}
