package smtp

import "time"

// TLS policies accepted by Config.TLS.
const (
	TLSMandatory     = "mandatory"     // STARTTLS required
	TLSOpportunistic = "opportunistic" // STARTTLS when offered
	TLSNone          = "none"          // plain text connection
	TLSImplicit      = "implicit"      // TLS from the first byte (SMTPS, usually port 465)
)

// Config holds SMTP relay configuration.
// Embedded in the service config and parsed with caarlos0/env.
type Config struct {
	Server   string        `env:"SMTP_SERVER"`
	Username string        `env:"SMTP_USERNAME"`
	Password string        `env:"SMTP_PASSWORD"`
	TLS      string        `env:"SMTP_TLS" envDefault:"mandatory"`
	// Port overrides the relay port. Zero picks it from the TLS policy:
	// 587 for STARTTLS, 465 for implicit TLS, 25 for plain text.
	Port     int           `env:"SMTP_PORT"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`
}
