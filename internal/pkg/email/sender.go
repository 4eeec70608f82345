package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// SMTPSender implements Sender over an SMTP relay.
type SMTPSender struct {
	config Config
	dialer *gomail.Dialer
}

// NewSMTPSender creates an SMTP-backed sender.
func NewSMTPSender(config Config) (Sender, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	dialer := gomail.NewDialer(config.Host(), config.Port(), config.Username, config.Password)

	return &SMTPSender{
		config: config,
		dialer: dialer,
	}, nil
}

// Send delivers a single message.
func (s *SMTPSender) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.From())
	m.SetHeader("To", email.To...)
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendContactReply sends an admin reply to a contact-form submitter.
// replyTo is the admin address the visitor can answer to.
func (s *SMTPSender) SendContactReply(to, replyTo, message string) error {
	return s.Send(&Email{
		To:      []string{to},
		ReplyTo: replyTo,
		Subject: "Reply to your contact message",
		Body:    message,
	})
}
