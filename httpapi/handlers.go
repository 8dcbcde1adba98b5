package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/katalvlaran/edgeworth"
	"github.com/katalvlaran/edgeworth/config"
	"github.com/katalvlaran/edgeworth/logger"
)

const outcomeOK = "ok"

// App holds what the handlers share: server limits, solver options, the
// logger and the metrics registry.
type App struct {
	Cfg     config.ServerConfig
	Opts    edgeworth.Options
	Log     *logger.Log
	Metrics *Metrics
	started time.Time
}

type health struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// NewApp builds an App from cfg with a fresh metrics registry.
func NewApp(cfg *config.Config, log *logger.Log) *App {
	return &App{
		Cfg:     cfg.Server,
		Opts:    cfg.Solver.Options(),
		Log:     log,
		Metrics: NewMetrics(),
		started: time.Now(),
	}
}

func (a *App) solveHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return
	}

	var p edgeworth.Problem
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, a.Cfg.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		a.Metrics.observe("invalid_json", 0, 0)
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), a.Cfg.SolveTimeout)
	defer cancel()

	start := time.Now()
	res, err := edgeworth.Solve(ctx, p, a.Opts)
	elapsed := time.Since(start)
	entry := a.Log.WithComponent("solver").WithFields(logger.Fields{
		"request_id": RequestIDFromContext(r.Context()),
		"utility_a":  p.UtilityA,
		"utility_b":  p.UtilityB,
	})
	if err != nil {
		status, code := classify(err)
		a.Metrics.observe(code, elapsed, 0)
		if status >= http.StatusInternalServerError {
			entry.WithError(err).Error("solve failed")
		} else {
			entry.WithError(err).Debug("solve rejected")
		}
		WriteJSONError(w, status, code, err.Error())
		return
	}

	// Encode before writing the header so an encoding failure is still a 500.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(res); err != nil {
		a.Metrics.observe("internal_error", elapsed, 0)
		entry.WithError(err).Error("encode result")
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	a.Metrics.observe(outcomeOK, elapsed, len(res.Equilibria))
	logger.LogDuration(entry.WithFields(logger.Fields{
		"contract_points": len(res.Contract.X),
		"equilibria":      len(res.Equilibria),
	}), "solve", elapsed, nil)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(health{Status: "ok", UptimeSeconds: time.Since(a.started).Seconds()})
}
