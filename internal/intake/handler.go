package intake

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Messages returned to the caller. Transport failures are reported with the
// opaque serverErrorMessage only; detail stays in the server log.
const (
	missingFieldsMessage = "Missing required fields"
	malformedBodyMessage = "Invalid request body"
	serverErrorMessage   = "Server error"
)

type successResponse struct {
	// ID is always serialized: the transport message ID, or null when the
	// transport assigns none.
	ID      *string `json:"id"`
	Success bool    `json:"success"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// Routes mounts the intake endpoint on the router.
func (s *Service) Routes(r chi.Router) {
	r.Post("/api/send-form", s.handleSendForm)
}

// handleSendForm is the single POST endpoint: parse, validate, dispatch.
func (s *Service) handleSendForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sub, err := ParseSubmission(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: malformedBodyMessage})
		return
	}

	id, err := s.Handle(ctx, sub)
	switch {
	case errors.Is(err, ErrMissingFields):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: missingFieldsMessage})
	case err != nil:
		s.log.ErrorContext(ctx, "failed to dispatch form notification",
			slog.String("source_page", sub.SourcePage),
			slog.Any("error", err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: serverErrorMessage})
	default:
		resp := successResponse{Success: true}
		if id != "" {
			resp.ID = &id
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
