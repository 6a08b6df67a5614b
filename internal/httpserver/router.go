package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/martinettechnologies/easyway-backend/internal/intake"
	"github.com/martinettechnologies/easyway-backend/pkg/health"
)

// NewRouter assembles the service router: middleware chain, health probes,
// and the form intake endpoint.
func NewRouter(svc *intake.Service, checks health.Checks, allowOrigins []string, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RequestID(),
		RequestLogger(log),
		Recover(log),
		CORS(allowOrigins),
	)

	r.Get("/", health.LivenessHandler())
	r.Get("/health", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(checks, health.WithLogger(log)))

	svc.Routes(r)

	return r
}
