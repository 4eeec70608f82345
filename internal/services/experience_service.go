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

type ExperienceService interface {
	List(ctx context.Context) ([]models.Experience, error)
	Create(ctx context.Context, req *dto.ExperienceRequest) (*models.Experience, error)
	Update(ctx context.Context, id string, req *dto.ExperienceRequest) (*models.Experience, error)
	Delete(ctx context.Context, id string) error
}

type experienceService struct {
	experiences repositories.ExperienceRepository
}

func NewExperienceService(experiences repositories.ExperienceRepository) ExperienceService {
	return &experienceService{experiences: experiences}
}

func experienceFromRequest(req *dto.ExperienceRequest) *models.Experience {
	return &models.Experience{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Current:      req.Current != nil && *req.Current,
		Description:  req.Description,
		Technologies: req.Technologies,
	}
}

func (s *experienceService) List(ctx context.Context) ([]models.Experience, error) {
	items, err := s.experiences.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "experience", "Failed to list experiences", http.StatusInternalServerError)
	}
	return items, nil
}

func (s *experienceService) Create(ctx context.Context, req *dto.ExperienceRequest) (*models.Experience, error) {
	exp := experienceFromRequest(req)
	if err := s.experiences.Create(ctx, exp); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "experience", "Failed to create experience", http.StatusInternalServerError)
	}
	return exp, nil
}

func (s *experienceService) Update(ctx context.Context, id string, req *dto.ExperienceRequest) (*models.Experience, error) {
	exp, err := s.experiences.Update(ctx, id, experienceFromRequest(req))
	if err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return nil, apperrors.NewNotFoundError("experience", "Experience not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "experience", "Failed to update experience", http.StatusInternalServerError)
	}
	return exp, nil
}

func (s *experienceService) Delete(ctx context.Context, id string) error {
	if err := s.experiences.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return apperrors.NewNotFoundError("experience", "Experience not found")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "experience", "Failed to delete experience", http.StatusInternalServerError)
	}
	return nil
}
