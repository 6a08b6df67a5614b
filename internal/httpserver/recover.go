package httpserver

import (
	"log/slog"
	"net/http"
	"runtime"
)

// recoverStackSize caps the stack trace captured on panic.
const recoverStackSize = 4096

// Recover returns middleware that recovers from handler panics. The panic
// and its stack are logged; the caller gets the same opaque 500 body as any
// other server fault.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := make([]byte, recoverStackSize)
					n := runtime.Stack(stack, false)
					log.ErrorContext(r.Context(), "panic recovered",
						slog.Any("panic", rec),
						slog.String("stack", string(stack[:n])),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"success":false,"error":"Server error"}` + "\n"))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
