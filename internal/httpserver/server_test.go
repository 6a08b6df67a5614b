package httpserver_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/martinettechnologies/easyway-backend/internal/httpserver"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("shuts down cleanly on context cancel", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- httpserver.Run(ctx, "127.0.0.1:0", http.NewServeMux(), nil, time.Second)
		}()

		// Give the listener a moment to come up before signaling shutdown
		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
		}
	})

	t.Run("reports listen failure", func(t *testing.T) {
		t.Parallel()

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer ln.Close()

		err = httpserver.Run(context.Background(), ln.Addr().String(), http.NewServeMux(), nil, time.Second)
		require.Error(t, err)
	})
}
