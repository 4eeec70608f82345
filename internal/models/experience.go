package models

// Experience is a work-history entry.
type Experience struct {
	BaseModel    `bson:",inline"`
	Title        string   `bson:"title" json:"title"`
	Company      string   `bson:"company" json:"company"`
	Location     string   `bson:"location" json:"location"`
	Current      bool     `bson:"current" json:"current"`
	Description  string   `bson:"description" json:"description"`
	Technologies []string `bson:"technologies,omitempty" json:"technologies"`
}
