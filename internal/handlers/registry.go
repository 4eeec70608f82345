package handlers

// AppHandlers groups every handler the router mounts.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	ContentHandler    *ContentHandler
	SkillHandler      *SkillHandler
	ExperienceHandler *ExperienceHandler
	ProjectHandler    *ProjectHandler
	ContactHandler    *ContactHandler
}
