package models

// Project is a portfolio entry. Images is an ordered list of asset URLs,
// each expected to reference an object present in storage.
type Project struct {
	BaseModel    `bson:",inline"`
	Name         string   `bson:"name" json:"name"`
	Description  string   `bson:"description" json:"description"`
	Images       []string `bson:"images,omitempty" json:"images"`
	DemoURL      string   `bson:"demoUrl,omitempty" json:"demoUrl"`
	CodeURL      string   `bson:"codeUrl,omitempty" json:"codeUrl"`
	Technologies []string `bson:"technologies,omitempty" json:"technologies"`
	Featured     bool     `bson:"featured" json:"featured"`
}
