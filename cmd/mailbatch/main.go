// Command mailbatch runs the authenticated batch email dispatch service.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/mailbatch"
	"github.com/dmitrymomot/mailbatch/handlers"
	"github.com/dmitrymomot/mailbatch/middlewares"
	"github.com/dmitrymomot/mailbatch/pkg/dispatch"
	"github.com/dmitrymomot/mailbatch/pkg/logger"
	"github.com/dmitrymomot/mailbatch/pkg/mailer"
	"github.com/dmitrymomot/mailbatch/pkg/mailer/resend"
	"github.com/dmitrymomot/mailbatch/pkg/mailer/smtp"
)

const sentryFlushTimeout = 2 * time.Second

func main() {
	boot := logger.New(slog.LevelInfo)

	if err := loadDotEnv(); err != nil {
		boot.Error("failed to load .env", slog.Any("error", err))
		os.Exit(1)
	}

	cfg, err := loadConfig(env.Options{})
	if err != nil {
		boot.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		boot.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config) error {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Sentry, level, middlewares.RequestIDExtractor()).
		With(slog.String("component", "mailbatch"))

	app, err := newApp(cfg, log)
	if err != nil {
		return err
	}

	log.Info("starting server",
		slog.String("addr", cfg.Addr),
		slog.String("transport", cfg.Transport),
		slog.String("policy", cfg.Dispatch.Policy),
	)

	return app.Run(cfg.Addr,
		mailbatch.Logger(log),
		mailbatch.ShutdownTimeout(cfg.ShutdownTimeout),
		mailbatch.WriteTimeout(cfg.WriteTimeout),
		mailbatch.ShutdownHook(func(context.Context) error {
			logger.Flush(sentryFlushTimeout)
			return nil
		}),
	)
}

// newApp wires transport, dispatcher and routes. Every misconfiguration
// surfaces here, before the listener opens.
func newApp(cfg config, log *slog.Logger) (*mailbatch.App, error) {
	sender, healthOpts, err := newSender(cfg)
	if err != nil {
		return nil, err
	}

	policy, err := dispatch.NewPolicy(cfg.Dispatch)
	if err != nil {
		return nil, err
	}

	dispatcher, err := dispatch.New(sender, cfg.FromEmail, policy,
		dispatch.WithLogger(log),
		dispatch.WithFailureLogging(cfg.Dispatch.LogFailures),
	)
	if err != nil {
		return nil, err
	}

	healthOpts = append(healthOpts, mailbatch.WithHealthTimeout(cfg.Health.Timeout))

	return mailbatch.New(
		mailbatch.WithCustomLogger(log),
		mailbatch.WithMaxBodyBytes(cfg.MaxBodyBytes),
		mailbatch.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSAllowOrigins...)),
		),
		mailbatch.WithHealthChecks(healthOpts...),
		mailbatch.WithHandlers(handlers.NewEmail(dispatcher, cfg.AuthToken)),
	), nil
}

func newSender(cfg config) (mailer.Sender, []mailbatch.HealthOption, error) {
	switch cfg.Transport {
	case transportResend:
		s, err := resend.New(cfg.Resend)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	default:
		s, err := smtp.New(cfg.SMTP)
		if err != nil {
			return nil, nil, err
		}
		return s, []mailbatch.HealthOption{mailbatch.WithReadinessCheck("smtp", s.Healthcheck())}, nil
	}
}
