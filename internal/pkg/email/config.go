package email

import "fmt"

// Config holds SMTP relay settings. Service names map to well-known hosts
// so deployments can configure "gmail" + credentials and nothing else.
type Config struct {
	Service   string
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
}

var serviceHosts = map[string]string{
	"gmail":   "smtp.gmail.com",
	"outlook": "smtp-mail.outlook.com",
	"yahoo":   "smtp.mail.yahoo.com",
	"zoho":    "smtp.zoho.com",
}

// Host resolves the SMTP host, preferring an explicit setting over the
// service-name mapping.
func (c Config) Host() string {
	if c.SMTPHost != "" {
		return c.SMTPHost
	}
	if host, ok := serviceHosts[c.Service]; ok {
		return host
	}
	return ""
}

// Port returns the SMTP port, defaulting to 587.
func (c Config) Port() int {
	if c.SMTPPort != 0 {
		return c.SMTPPort
	}
	return 587
}

// From returns the sender address, defaulting to the relay username.
func (c Config) From() string {
	if c.FromEmail != "" {
		return c.FromEmail
	}
	return c.Username
}

// Validate checks that the configuration can reach a relay.
func (c Config) Validate() error {
	if c.Host() == "" {
		return fmt.Errorf("email: smtp host or known service name is required")
	}
	if c.Username == "" || c.Password == "" {
		return fmt.Errorf("email: relay credentials are required")
	}
	return nil
}
