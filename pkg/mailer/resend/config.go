package resend

// Config holds Resend transport configuration.
// Embedded in the service config and parsed with caarlos0/env.
type Config struct {
	APIKey  string `env:"RESEND_API_KEY"`
	BaseURL string `env:"RESEND_BASE_URL"`
}
