package dto

import "portfolio_backend/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// ProfileUpdateInput carries the multipart profile form. Image is nil when
// the client did not upload a new picture.
type ProfileUpdateInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Image   *File
}

type InitAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// InitAdminResponse mirrors the bootstrap endpoint's payload.
type InitAdminResponse struct {
	Message string       `json:"message"`
	Admin   *models.User `json:"admin"`
}
