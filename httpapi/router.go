package httpapi

import (
	"net/http"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/solve", app.solveHandler)
	mux.HandleFunc("/healthz", app.healthHandler)
	mux.Handle("/metrics", app.Metrics.Handler())
	return WithRequestID(WithLogging(app.Log)(mux))
}
