package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/martinettechnologies/easyway-backend/internal/httpserver"
)

func corsHandler(origins ...string) http.Handler {
	mw := httpserver.CORS(origins)
	return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCORS(t *testing.T) {
	t.Parallel()

	t.Run("request without Origin header always passes", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/send-form", nil)
		rec := httptest.NewRecorder()

		corsHandler("https://easyway.example").ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allow-listed origin passes with CORS headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/send-form", nil)
		req.Header.Set("Origin", "https://easyway.example")
		rec := httptest.NewRecorder()

		corsHandler("http://localhost:3000", "https://easyway.example").ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "https://easyway.example", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, rec.Header().Values("Vary"), "Origin")
	})

	t.Run("unlisted origin is rejected", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/send-form", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		corsHandler("https://easyway.example").ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight from allowed origin", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodOptions, "/api/send-form", nil)
		req.Header.Set("Origin", "https://easyway.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()

		corsHandler("https://easyway.example").ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "https://easyway.example", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
		require.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Headers"))
		require.NotEmpty(t, rec.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("preflight from unlisted origin is rejected", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodOptions, "/api/send-form", nil)
		req.Header.Set("Origin", "https://evil.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()

		corsHandler("https://easyway.example").ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
	})
}
