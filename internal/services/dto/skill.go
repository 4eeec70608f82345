package dto

// SkillRequest covers create and update. Percentage is a pointer so that
// an explicit 0 survives the required check.
type SkillRequest struct {
	Name       string `json:"name" binding:"required"`
	Percentage *int   `json:"percentage" binding:"required,gte=0,lte=100"`
	Category   string `json:"category" binding:"required"`
	Icon       string `json:"icon"`
}
