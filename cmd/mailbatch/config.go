package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/mailbatch/internal"
	"github.com/dmitrymomot/mailbatch/pkg/dispatch"
	"github.com/dmitrymomot/mailbatch/pkg/health"
	"github.com/dmitrymomot/mailbatch/pkg/logger"
	"github.com/dmitrymomot/mailbatch/pkg/mailer/resend"
	"github.com/dmitrymomot/mailbatch/pkg/mailer/smtp"
)

// Mail transports selectable with MAIL_TRANSPORT.
const (
	transportSMTP   = "smtp"
	transportResend = "resend"
)

// ErrUnknownTransport is returned for an unsupported MAIL_TRANSPORT value.
var ErrUnknownTransport = errors.New("config: unknown mail transport")

type config struct {
	Addr             string        `env:"HTTP_ADDR" envDefault:":8000"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	WriteTimeout     time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"0s"`
	MaxBodyBytes     int64         `env:"HTTP_MAX_BODY_BYTES" envDefault:"10485760"`
	AuthToken        string        `env:"AUTH_TOKEN,required,notEmpty"`
	FromEmail        string        `env:"FROM_EMAIL,required,notEmpty"`
	Transport        string        `env:"MAIL_TRANSPORT" envDefault:"smtp"`
	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`

	Log      logger.Config
	Sentry   logger.SentryConfig
	SMTP     smtp.Config
	Resend   resend.Config
	Dispatch dispatch.Config
	Health   health.Config
}

// loadDotEnv reads .env from the working directory into the process
// environment. A missing file is not an error.
func loadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load .env: %w", err)
	}
	return nil
}

// loadConfig parses the environment (or opts.Environment when set).
func loadConfig(opts env.Options) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return config{}, fmt.Errorf("config: %w", err)
	}

	switch cfg.Transport {
	case transportSMTP, transportResend:
	default:
		return config{}, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Transport)
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = internal.DefaultMaxBodyBytes
	}

	return cfg, nil
}
