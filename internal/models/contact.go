package models

// ContactStatus tracks a contact message through its lifecycle.
type ContactStatus string

const (
	ContactStatusUnread  ContactStatus = "unread"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// IsValidContactStatus reports whether s is a known status.
func IsValidContactStatus(s ContactStatus) bool {
	switch s {
	case ContactStatusUnread, ContactStatusRead, ContactStatusReplied:
		return true
	}
	return false
}

// Contact is a contact-form submission.
type Contact struct {
	BaseModel `bson:",inline"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Subject   string        `bson:"subject" json:"subject"`
	Message   string        `bson:"message" json:"message"`
	Status    ContactStatus `bson:"status" json:"status"`
}
