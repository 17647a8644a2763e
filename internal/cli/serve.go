package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/sprig/pkg/adapters/http"
)

// ShutdownTimeout bounds how long in-flight requests get on shutdown.
const ShutdownTimeout = 5 * time.Second

// Serve exposes the app store over HTTP until ctx is cancelled.
// When ready is non-nil it receives the bound address once the listener is up.
func Serve(ctx context.Context, app *App, addr string, ready chan<- string) error {
	opts := []httpAdapter.Option{httpAdapter.WithLogger(app.Logger)}
	if app.Config.Metrics.Enabled {
		opts = append(opts, httpAdapter.WithMetrics(app.Metrics.Handler()))
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: httpAdapter.NewHandler(app.Store, opts...),
		// Requests inherit ctx so open SSE streams end when serving stops.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		app.Logger.Info("HTTP server listening", "address", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	printSystemMessage(app.Out, "serving todos on http://%s", ln.Addr())
	if ready != nil {
		ready <- ln.Addr().String()
	}

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.Logger.Warn("Graceful shutdown did not complete", "timeout", ShutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("could not stop server: %w", err)
			}
		}
		printSystemMessage(app.Out, "server stopped")
		return nil
	}
}
