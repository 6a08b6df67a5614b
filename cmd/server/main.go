// Form intake backend: accepts website form submissions and forwards them
// as email notifications to a fixed recipient.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/martinettechnologies/easyway-backend/internal/config"
	"github.com/martinettechnologies/easyway-backend/internal/httpserver"
	"github.com/martinettechnologies/easyway-backend/internal/intake"
	"github.com/martinettechnologies/easyway-backend/pkg/health"
	"github.com/martinettechnologies/easyway-backend/pkg/logger"
	"github.com/martinettechnologies/easyway-backend/pkg/mailer"
	resendmailer "github.com/martinettechnologies/easyway-backend/pkg/mailer/resend"
	smtpmailer "github.com/martinettechnologies/easyway-backend/pkg/mailer/smtp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Sentry, httpserver.RequestIDExtractor()).
		With("app", "easyway-backend")

	var sender mailer.Sender
	checks := health.Checks{}

	switch cfg.Transport {
	case config.TransportSMTP:
		s := smtpmailer.New(cfg.SMTP)
		sender = s
		checks["smtp"] = s.Ping
	default:
		sender = resendmailer.New(cfg.Resend)
	}
	log.Info("mail transport configured", slog.String("transport", cfg.Transport))

	policy := intake.Policy{
		RequirePhone:   cfg.RequirePhone,
		RequireMessage: cfg.RequireMessage,
		DefaultSubject: cfg.DefaultSubject,
	}
	svc := intake.NewService(sender, cfg.MailTo, policy, log)

	router := httpserver.NewRouter(svc, checks, cfg.AllowedOrigins, log)

	addr := fmt.Sprintf(":%d", cfg.Port)
	if err := httpserver.Run(context.Background(), addr, router, log, cfg.ShutdownTimeout); err != nil {
		log.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}
