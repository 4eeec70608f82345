package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/pkg/email"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

type fakeContactRepo struct {
	contacts map[string]*models.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: map[string]*models.Contact{}}
}

func (f *fakeContactRepo) Create(ctx context.Context, contact *models.Contact) error {
	contact.ID = primitive.NewObjectID()
	if contact.Status == "" {
		contact.Status = models.ContactStatusUnread
	}
	f.contacts[contact.ID.Hex()] = contact
	return nil
}

func (f *fakeContactRepo) FindByID(ctx context.Context, id string) (*models.Contact, error) {
	contact, ok := f.contacts[id]
	if !ok {
		return nil, repositories.ErrContactNotFound
	}
	return contact, nil
}

func (f *fakeContactRepo) FindAll(ctx context.Context) ([]models.Contact, error) {
	out := []models.Contact{}
	for _, c := range f.contacts {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeContactRepo) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error) {
	contact, ok := f.contacts[id]
	if !ok {
		return nil, repositories.ErrContactNotFound
	}
	contact.Status = status
	return contact, nil
}

type recordingSender struct {
	sent    []email.Email
	replies [][3]string
	err     error
}

func (r *recordingSender) Send(msg *email.Email) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, *msg)
	return nil
}

func (r *recordingSender) SendContactReply(to, replyTo, message string) error {
	if r.err != nil {
		return r.err
	}
	r.replies = append(r.replies, [3]string{to, replyTo, message})
	return nil
}

func submitTestContact(t *testing.T, svc ContactService) *models.Contact {
	t.Helper()
	contact, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice site",
	})
	require.NoError(t, err)
	return contact
}

func TestContactSubmit_DefaultsToUnread(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), &recordingSender{})

	contact := submitTestContact(t, svc)
	assert.Equal(t, models.ContactStatusUnread, contact.Status)
}

func TestContactUpdateStatus(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), &recordingSender{})
	contact := submitTestContact(t, svc)

	updated, err := svc.UpdateStatus(context.Background(), &dto.ContactStatusRequest{
		ID: contact.ID.Hex(), Status: models.ContactStatusRead,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusRead, updated.Status)
}

func TestContactUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo, &recordingSender{})
	contact := submitTestContact(t, svc)

	_, err := svc.UpdateStatus(context.Background(), &dto.ContactStatusRequest{
		ID: contact.ID.Hex(), Status: "archived",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)

	// stored status untouched
	stored, _ := repo.FindByID(context.Background(), contact.ID.Hex())
	assert.Equal(t, models.ContactStatusUnread, stored.Status)
}

func TestContactReply(t *testing.T) {
	sender := &recordingSender{}
	svc := NewContactService(newFakeContactRepo(), sender)
	contact := submitTestContact(t, svc)

	updated, err := svc.Reply(context.Background(), &dto.ContactReplyRequest{
		ID:      contact.ID.Hex(),
		Email:   "admin@example.com",
		Message: "Thanks for reaching out",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ContactStatusReplied, updated.Status)
	require.Len(t, sender.replies, 1)
	assert.Equal(t, "visitor@example.com", sender.replies[0][0])
	assert.Equal(t, "admin@example.com", sender.replies[0][1])
}

func TestContactReply_SendFailureKeepsStatus(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	repo := newFakeContactRepo()
	svc := NewContactService(repo, sender)
	contact := submitTestContact(t, svc)

	_, err := svc.Reply(context.Background(), &dto.ContactReplyRequest{
		ID:      contact.ID.Hex(),
		Email:   "admin@example.com",
		Message: "Thanks",
	})
	require.Error(t, err)

	stored, _ := repo.FindByID(context.Background(), contact.ID.Hex())
	assert.Equal(t, models.ContactStatusUnread, stored.Status)
}

func TestContactReply_NotFound(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), &recordingSender{})

	_, err := svc.Reply(context.Background(), &dto.ContactReplyRequest{
		ID:      primitive.NewObjectID().Hex(),
		Email:   "admin@example.com",
		Message: "Thanks",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
