package httpserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// corsMaxAge is how long browsers may cache preflight responses.
const corsMaxAge = 12 * time.Hour

var (
	corsAllowMethods = strings.Join([]string{http.MethodPost, http.MethodGet, http.MethodOptions}, ", ")
	corsAllowHeaders = strings.Join([]string{"Origin", "Content-Type", "Accept"}, ", ")
)

// CORS returns middleware enforcing the origin allow-list. Requests without
// an Origin header (server-to-server, tooling) always pass. Requests from
// an origin outside the allow-list are rejected with 403. Preflight OPTIONS
// requests from allowed origins are answered with 204 and the CORS headers.
func CORS(allowOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowOrigins))
	for _, origin := range allowOrigins {
		allowed[origin] = struct{}{}
	}
	maxAgeStr := strconv.Itoa(int(corsMaxAge.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Not a cross-origin request
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			headers := w.Header()
			headers.Add("Vary", "Origin")

			if _, ok := allowed[origin]; !ok {
				http.Error(w, "origin not allowed", http.StatusForbidden)
				return
			}

			headers.Set("Access-Control-Allow-Origin", origin)

			if r.Method == http.MethodOptions {
				headers.Add("Vary", "Access-Control-Request-Method")
				headers.Add("Vary", "Access-Control-Request-Headers")

				headers.Set("Access-Control-Allow-Methods", corsAllowMethods)
				headers.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				headers.Set("Access-Control-Max-Age", maxAgeStr)

				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
