package email

// Email represents an outbound message.
type Email struct {
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

// Sender delivers outbound mail.
type Sender interface {
	Send(email *Email) error
	SendContactReply(to, replyTo, message string) error
}
