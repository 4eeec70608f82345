package models

// UserRole is the coarse permission tier gating admin operations.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User is an account record. Email is stored lower-cased and unique.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	BaseModel `bson:",inline"`
	Name      string   `bson:"name" json:"name"`
	Email     string   `bson:"email" json:"email"`
	Password  string   `bson:"password" json:"-"`
	Role      UserRole `bson:"role" json:"role"`
	Image     string   `bson:"image,omitempty" json:"image,omitempty"`
	Phone     string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string   `bson:"address,omitempty" json:"address,omitempty"`
}
