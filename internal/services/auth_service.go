package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, input *dto.ProfileUpdateInput) (*models.User, error)
	InitAdmin(ctx context.Context, req *dto.InitAdminRequest) (*models.User, error)
	SeedAdmin(ctx context.Context, name, email, password string) error
}

type authService struct {
	users  repositories.UserRepository
	assets AssetService
}

func NewAuthService(users repositories.UserRepository, assets AssetService) AuthService {
	return &authService{users: users, assets: assets}
}

func (s *authService) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "auth", "Failed to generate token", http.StatusInternalServerError)
	}
	return &dto.AuthResponse{User: user, Token: token}, nil
}

// Register creates a regular account. Role is never taken from the request.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "auth", "Failed to hash password", http.StatusInternalServerError)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Password: hash,
		Role:     models.UserRoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to create user", http.StatusInternalServerError)
	}

	logger.CtxInfo(ctx, "user registered", "userId", user.ID.Hex())
	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to find user", http.StatusInternalServerError)
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *authService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to find user", http.StatusInternalServerError)
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, input *dto.ProfileUpdateInput) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = strings.ToLower(input.Email)
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Address != "" {
		user.Address = input.Address
	}

	if input.Image != nil {
		url, err := s.assets.Replace(ctx, input.Image, user.Image)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "auth", "Failed to upload profile image", http.StatusInternalServerError)
		}
		user.Image = url
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to update user", http.StatusInternalServerError)
	}
	return user, nil
}

// InitAdmin bootstraps the first admin account. It refuses once any admin
// exists, so the endpoint is inert on a provisioned installation.
func (s *authService) InitAdmin(ctx context.Context, req *dto.InitAdminRequest) (*models.User, error) {
	exists, err := s.users.AdminExists(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to check admin", http.StatusInternalServerError)
	}
	if exists {
		return nil, apperrors.NewBadRequestError("auth", "Admin user already exists")
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "auth", "Failed to hash password", http.StatusInternalServerError)
	}

	admin := &models.User{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Password: hash,
		Role:     models.UserRoleAdmin,
	}

	if err := s.users.Create(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to create admin", http.StatusInternalServerError)
	}

	logger.CtxInfo(ctx, "admin user created", "userId", admin.ID.Hex())
	return admin, nil
}

// SeedAdmin is the startup variant of InitAdmin driven by configuration.
// Missing credentials or an existing admin make it a no-op.
func (s *authService) SeedAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	exists, err := s.users.AdminExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if _, err := s.InitAdmin(ctx, &dto.InitAdminRequest{Name: name, Email: email, Password: password}); err != nil {
		return err
	}
	logger.Info("admin user seeded from config", "email", strings.ToLower(email))
	return nil
}
