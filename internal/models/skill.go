package models

// SkillCategories enumerates the allowed skill groupings.
var SkillCategories = []string{
	"frontend",
	"frontend-libraries",
	"backend",
	"database",
	"tools",
	"deployment",
	"designing",
	"social-media-marketing",
}

// IsValidSkillCategory reports whether c is one of SkillCategories.
func IsValidSkillCategory(c string) bool {
	for _, cat := range SkillCategories {
		if cat == c {
			return true
		}
	}
	return false
}

// Skill is an independent record; percentage is always within [0,100].
type Skill struct {
	BaseModel  `bson:",inline"`
	Name       string `bson:"name" json:"name"`
	Percentage int    `bson:"percentage" json:"percentage"`
	Category   string `bson:"category" json:"category"`
	Icon       string `bson:"icon,omitempty" json:"icon"`
}
