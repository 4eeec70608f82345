package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/pkg/email"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

type ContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) (*models.Contact, error)
	List(ctx context.Context) ([]models.Contact, error)
	UpdateStatus(ctx context.Context, req *dto.ContactStatusRequest) (*models.Contact, error)
	Reply(ctx context.Context, req *dto.ContactReplyRequest) (*models.Contact, error)
}

type contactService struct {
	contacts repositories.ContactRepository
	sender   email.Sender
}

func NewContactService(contacts repositories.ContactRepository, sender email.Sender) ContactService {
	return &contactService{contacts: contacts, sender: sender}
}

func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactStatusUnread,
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "contact", "Failed to save contact message", http.StatusInternalServerError)
	}

	logger.CtxInfo(ctx, "contact message received", "contactId", contact.ID.Hex())
	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contacts.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "contact", "Failed to list contacts", http.StatusInternalServerError)
	}
	return contacts, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, req *dto.ContactStatusRequest) (*models.Contact, error) {
	if !models.IsValidContactStatus(req.Status) {
		return nil, apperrors.New(apperrors.CodeInvalidStatus, "contact",
			fmt.Sprintf("Invalid status: %s", req.Status), http.StatusBadRequest)
	}

	contact, err := s.contacts.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			return nil, apperrors.NewNotFoundError("contact", "Contact not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "contact", "Failed to update status", http.StatusInternalServerError)
	}
	return contact, nil
}

// Reply sends the admin's answer to the sender, then marks the message
// replied. A failed send leaves the status untouched.
func (s *contactService) Reply(ctx context.Context, req *dto.ContactReplyRequest) (*models.Contact, error) {
	contact, err := s.contacts.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			return nil, apperrors.NewNotFoundError("contact", "Contact not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "contact", "Failed to find contact", http.StatusInternalServerError)
	}

	if err := s.sender.SendContactReply(contact.Email, req.Email, req.Message); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "contact", "Failed to send reply email", http.StatusInternalServerError)
	}

	updated, err := s.contacts.UpdateStatus(ctx, req.ID, models.ContactStatusReplied)
	if err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			return nil, apperrors.NewNotFoundError("contact", "Contact not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "contact", "Failed to update status", http.StatusInternalServerError)
	}

	logger.CtxInfo(ctx, "contact reply sent", "contactId", updated.ID.Hex())
	return updated, nil
}
