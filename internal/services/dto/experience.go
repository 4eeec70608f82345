package dto

// ExperienceRequest covers create and update. Current is a pointer so a
// missing boolean is distinguishable from false.
type ExperienceRequest struct {
	Title        string   `json:"title" binding:"required"`
	Company      string   `json:"company" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Current      *bool    `json:"current" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Technologies []string `json:"technologies"`
}
