package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/katalvlaran/edgeworth/config"
	"github.com/katalvlaran/edgeworth/logger"
)

// Serve runs the HTTP service on ln until ctx is done, then shuts down
// gracefully within cfg.Server.ShutdownTimeout.
func Serve(ctx context.Context, ln net.Listener, cfg *config.Config, log *logger.Log) error {
	srv := &http.Server{
		Handler:      NewRouter(NewApp(cfg, log)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	log.WithComponent("http").WithFields(logger.Fields{"addr": ln.Addr().String()}).Info("listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.WithComponent("http").Info("stopped")

	return nil
}
