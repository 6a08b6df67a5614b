// Package config loads the service configuration from the environment once
// at process start. The resulting value is immutable and injected into the
// components that need it; nothing reads the environment afterwards.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/martinettechnologies/easyway-backend/pkg/logger"
	"github.com/martinettechnologies/easyway-backend/pkg/mailer/resend"
	"github.com/martinettechnologies/easyway-backend/pkg/mailer/smtp"
)

// Mail transport selectors.
const (
	TransportResend = "resend"
	TransportSMTP   = "smtp"
)

// Config is the complete service configuration.
type Config struct {
	Port            int           `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// AllowedOrigins is the CORS allow-list: local dev hosts plus the
	// production front-end domains.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

	// MailTo is the fixed notification recipient.
	MailTo string `env:"MAIL_TO,notEmpty"`

	// Transport selects the mail backend: "resend" or "smtp".
	Transport string `env:"MAIL_TRANSPORT" envDefault:"resend"`

	// Required-field policy and fallback subject (deployment-dependent).
	RequirePhone   bool   `env:"REQUIRE_PHONE" envDefault:"false"`
	RequireMessage bool   `env:"REQUIRE_MESSAGE" envDefault:"true"`
	DefaultSubject string `env:"DEFAULT_SUBJECT"`

	Resend resend.Config
	SMTP   smtp.Config
	Sentry logger.SentryConfig
}

// Load reads an optional .env file and parses the environment.
func Load() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if cfg.Transport != TransportResend && cfg.Transport != TransportSMTP {
		return Config{}, fmt.Errorf("config: unknown mail transport %q", cfg.Transport)
	}

	return cfg, nil
}
