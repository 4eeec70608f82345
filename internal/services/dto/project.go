package dto

import "portfolio_backend/internal/models"

// ProjectInput carries the multipart project form. On update, OldImages is
// the full list of existing URLs the client chose to keep; Images holds only
// newly uploaded files.
type ProjectInput struct {
	Name         string
	Description  string
	Technologies []string
	DemoURL      string
	CodeURL      string
	Featured     bool
	Images       []*File
	OldImages    []string
}

// ProjectListResponse is the paginated public listing.
type ProjectListResponse struct {
	Projects []models.Project `json:"projects"`
	HasMore  bool             `json:"hasMore"`
}
