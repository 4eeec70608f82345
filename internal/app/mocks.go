package app

import (
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/pkg/email"
)

// logSender stands in for SMTP when no relay is configured. Messages are
// logged so local development can exercise the contact reply flow.
type logSender struct{}

func (s *logSender) Send(msg *email.Email) error {
	logger.Info("email suppressed (no relay configured)",
		"to", msg.To, "subject", msg.Subject)
	return nil
}

func (s *logSender) SendContactReply(to, replyTo, message string) error {
	logger.Info("contact reply suppressed (no relay configured)",
		"to", to, "replyTo", replyTo)
	return nil
}
