// Package metrics owns a private Prometheus registry with the solver and
// HTTP server instruments.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/katalvlaran/hungarian/hungarian"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Solve outcome labels.
const (
	StatusOK           = "ok"
	StatusInvalidInput = "invalid_input"
	StatusTooLarge     = "too_large"
	StatusInternal     = "internal"
)

// Metrics bundles the registry and its instruments.
type Metrics struct {
	registry *prometheus.Registry

	SolvesTotal      *prometheus.CounterVec
	SolveDuration    *prometheus.HistogramVec
	MatrixSize       prometheus.Histogram
	Phases           prometheus.Counter
	PotentialUpdates prometheus.Counter
	TreeGrowths      prometheus.Counter

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New builds a registry with Go runtime and process collectors plus every
// instrument of this service.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: reg}

	m.SolvesTotal = m.NewCounterVec(prometheus.CounterOpts{
		Name: "hungarian_solves_total",
		Help: "Solves by numeric mode and outcome",
	}, []string{"mode", "status"})

	m.SolveDuration = m.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hungarian_solve_duration_seconds",
		Help:    "Wall time of one solve in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"mode"})

	m.MatrixSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hungarian_matrix_size",
		Help:    "Order n of solved matrices",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
	m.Phases = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hungarian_phases_total",
		Help: "Augmentation phases run",
	})
	m.PotentialUpdates = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hungarian_potential_updates_total",
		Help: "Dual potential updates performed",
	})
	m.TreeGrowths = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hungarian_tree_growths_total",
		Help: "Alternating tree growth steps",
	})
	reg.MustRegister(m.MatrixSize, m.Phases, m.PotentialUpdates, m.TreeGrowths)

	m.HTTPRequestsTotal = m.NewCounterVec(prometheus.CounterOpts{
		Name: "http_server_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	m.HTTPRequestDuration = m.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_server_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	return m
}

// NewCounterVec creates and registers a counter vector.
func (m *Metrics) NewCounterVec(opts prometheus.CounterOpts, labelNames []string) *prometheus.CounterVec {
	cv := prometheus.NewCounterVec(opts, labelNames)
	m.registry.MustRegister(cv)
	return cv
}

// NewHistogramVec creates and registers a histogram vector.
func (m *Metrics) NewHistogramVec(opts prometheus.HistogramOpts, labelNames []string) *prometheus.HistogramVec {
	hv := prometheus.NewHistogramVec(opts, labelNames)
	m.registry.MustRegister(hv)
	return hv
}

// Registry exposes the underlying registry (tests, extra collectors).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SolverOptions returns solver hooks that feed the work counters.
// They replace any OnPhase/OnGrow/OnPotentialUpdate hook given earlier.
func (m *Metrics) SolverOptions() []hungarian.Option {
	return []hungarian.Option{
		hungarian.WithOnPhase(func(int, int) { m.Phases.Inc() }),
		hungarian.WithOnGrow(func(int, int) { m.TreeGrowths.Inc() }),
		hungarian.WithOnPotentialUpdate(func(int, int, int) { m.PotentialUpdates.Inc() }),
	}
}

// ObserveSolve records one finished solve of order n in the given mode.
// Sizes and durations are only recorded for successful solves.
func (m *Metrics) ObserveSolve(mode string, n int, d time.Duration, err error) {
	status := Status(err)
	m.SolvesTotal.WithLabelValues(mode, status).Inc()
	if status != StatusOK {
		return
	}
	m.SolveDuration.WithLabelValues(mode).Observe(d.Seconds())
	m.MatrixSize.Observe(float64(n))
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method, path string, code int, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(code)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// Status classifies a solve error into one of the Status* labels.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, hungarian.ErrTooLarge):
		return StatusTooLarge
	case errors.Is(err, hungarian.ErrInvariant):
		return StatusInternal
	default:
		return StatusInvalidInput
	}
}
