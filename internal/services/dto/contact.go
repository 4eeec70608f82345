package dto

import "portfolio_backend/internal/models"

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ContactStatusRequest struct {
	ID     string               `json:"id" binding:"required"`
	Status models.ContactStatus `json:"status" binding:"required"`
}

// ContactReplyRequest carries the admin reply. Email is the admin address
// used as Reply-To on the outbound message.
type ContactReplyRequest struct {
	ID      string `json:"id" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
