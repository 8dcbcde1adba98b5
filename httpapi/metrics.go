package httpapi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics registers:
//
//	edgeworth_solve_total{outcome}
//	edgeworth_solve_duration_seconds
//	edgeworth_equilibria_found
//	go_* and process_* runtime metrics
//
// on a private registry so several Apps (and tests) can coexist.
type Metrics struct {
	registry   *prometheus.Registry
	solves     *prometheus.CounterVec
	duration   prometheus.Histogram
	equilibria prometheus.Histogram
}

// NewMetrics creates and registers the collectors on a new registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edgeworth_solve_total",
				Help: "Number of solve requests by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "edgeworth_solve_duration_seconds",
			Help:    "Wall time of successful and failed solves",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		}),
		equilibria: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "edgeworth_equilibria_found",
			Help:    "Equilibria reported per successful solve",
			Buckets: []float64{0, 1, 2, 3, 5, 10},
		}),
	}
	m.registry.MustRegister(
		m.solves,
		m.duration,
		m.equilibria,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// observe records one finished solve.
func (m *Metrics) observe(outcome string, d time.Duration, equilibria int) {
	m.solves.WithLabelValues(outcome).Inc()
	m.duration.Observe(d.Seconds())
	if outcome == outcomeOK {
		m.equilibria.Observe(float64(equilibria))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
