package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

type SkillService interface {
	List(ctx context.Context) ([]models.Skill, error)
	Create(ctx context.Context, req *dto.SkillRequest) (*models.Skill, error)
	Update(ctx context.Context, id string, req *dto.SkillRequest) (*models.Skill, error)
	Delete(ctx context.Context, id string) error
}

type skillService struct {
	skills repositories.SkillRepository
}

func NewSkillService(skills repositories.SkillRepository) SkillService {
	return &skillService{skills: skills}
}

func validateSkill(req *dto.SkillRequest) error {
	if req.Percentage == nil || *req.Percentage < 0 || *req.Percentage > 100 {
		return apperrors.NewBadRequestError("skill", "Percentage must be between 0 and 100")
	}
	if !models.IsValidSkillCategory(req.Category) {
		return apperrors.NewBadRequestError("skill", fmt.Sprintf("Invalid category: %s", req.Category))
	}
	return nil
}

func (s *skillService) List(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.skills.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "skill", "Failed to list skills", http.StatusInternalServerError)
	}
	return skills, nil
}

func (s *skillService) Create(ctx context.Context, req *dto.SkillRequest) (*models.Skill, error) {
	if err := validateSkill(req); err != nil {
		return nil, err
	}

	skill := &models.Skill{
		Name:       req.Name,
		Percentage: *req.Percentage,
		Category:   req.Category,
		Icon:       req.Icon,
	}

	if err := s.skills.Create(ctx, skill); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "skill", "Failed to create skill", http.StatusInternalServerError)
	}
	return skill, nil
}

func (s *skillService) Update(ctx context.Context, id string, req *dto.SkillRequest) (*models.Skill, error) {
	if err := validateSkill(req); err != nil {
		return nil, err
	}

	upd := &models.Skill{
		Name:       req.Name,
		Percentage: *req.Percentage,
		Category:   req.Category,
		Icon:       req.Icon,
	}

	skill, err := s.skills.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repositories.ErrSkillNotFound) {
			return nil, apperrors.NewNotFoundError("skill", "Skill not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "skill", "Failed to update skill", http.StatusInternalServerError)
	}
	return skill, nil
}

func (s *skillService) Delete(ctx context.Context, id string) error {
	if err := s.skills.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSkillNotFound) {
			return apperrors.NewNotFoundError("skill", "Skill not found")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "skill", "Failed to delete skill", http.StatusInternalServerError)
	}
	return nil
}
