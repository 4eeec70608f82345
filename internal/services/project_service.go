package services

import (
	"context"
	"errors"
	"net/http"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

type ProjectService interface {
	List(ctx context.Context, page, limit int) (*dto.ProjectListResponse, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, input *dto.ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id string, input *dto.ProjectInput) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	projects repositories.ProjectRepository
	assets   AssetService
}

func NewProjectService(projects repositories.ProjectRepository, assets AssetService) ProjectService {
	return &projectService{projects: projects, assets: assets}
}

func (s *projectService) List(ctx context.Context, page, limit int) (*dto.ProjectListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	items, total, err := s.projects.FindPage(ctx, page, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "project", "Failed to list projects", http.StatusInternalServerError)
	}

	skip := int64((page - 1) * limit)
	return &dto.ProjectListResponse{
		Projects: items,
		HasMore:  skip+int64(len(items)) < total,
	}, nil
}

func (s *projectService) Get(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project", "Project not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "project", "Failed to find project", http.StatusInternalServerError)
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, input *dto.ProjectInput) (*models.Project, error) {
	images := make([]string, 0, len(input.Images))
	for _, file := range input.Images {
		url, err := s.assets.Upload(ctx, file)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "project", "Failed to upload project image", http.StatusInternalServerError)
		}
		images = append(images, url)
	}

	project := &models.Project{
		Name:         input.Name,
		Description:  input.Description,
		Images:       images,
		DemoURL:      input.DemoURL,
		CodeURL:      input.CodeURL,
		Technologies: input.Technologies,
		Featured:     input.Featured,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "project", "Failed to create project", http.StatusInternalServerError)
	}
	return project, nil
}

// Update reconciles the image set: stored URLs the client dropped are
// deleted from storage, new uploads are appended after the retained ones.
func (s *projectService) Update(ctx context.Context, id string, input *dto.ProjectInput) (*models.Project, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := s.assets.Reconcile(ctx, project.Images, input.OldImages, input.Images)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "project", "Failed to upload project image", http.StatusInternalServerError)
	}

	project.Name = input.Name
	project.Description = input.Description
	project.Images = images
	project.DemoURL = input.DemoURL
	project.CodeURL = input.CodeURL
	project.Technologies = input.Technologies
	project.Featured = input.Featured

	if err := s.projects.Update(ctx, project); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project", "Project not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "project", "Failed to update project", http.StatusInternalServerError)
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	project, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.NewNotFoundError("project", "Project not found")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "project", "Failed to delete project", http.StatusInternalServerError)
	}

	s.assets.DeleteAll(ctx, project.Images)
	return nil
}
