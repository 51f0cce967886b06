// Package metrics holds the Prometheus collectors of the workflow engine and
// its HTTP surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK = "ok"

	defaultNamespace = "laundry"
)

var defaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

type Config struct {
	// Namespace prefixes every metric name. Defaults to "laundry".
	Namespace string
	// SkipPaths are route paths the HTTP middleware does not track.
	SkipPaths []string
	Buckets   []float64
}

func DefaultConfig() Config {
	return Config{
		Namespace: defaultNamespace,
		SkipPaths: []string{"/health", "/metrics"},
		Buckets:   defaultBuckets,
	}
}

func (c Config) withDefaults() Config {
	if c.Namespace == "" {
		c.Namespace = defaultNamespace
	}
	if len(c.Buckets) == 0 {
		c.Buckets = defaultBuckets
	}
	return c
}

// Workflow counts workflow operations by outcome. The outcome label is either
// OutcomeOK or the failure code of the error, e.g. "BranchFull".
type Workflow struct {
	operations  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	overrides   *prometheus.CounterVec
	sideEffects *prometheus.CounterVec
}

func NewWorkflow(reg prometheus.Registerer, cfg Config) *Workflow {
	cfg = cfg.withDefaults()
	factory := promauto.With(reg)

	return &Workflow{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "workflow",
				Name:      "operations_total",
				Help:      "Workflow operations by outcome.",
			},
			[]string{"operation", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: "workflow",
				Name:      "operation_duration_seconds",
				Help:      "Workflow operation latency in seconds, lock wait included.",
				Buckets:   cfg.Buckets,
			},
			[]string{"operation"},
		),
		overrides: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "workflow",
				Name:      "overrides_total",
				Help:      "Administrative status corrections that bypassed the transition table.",
			},
			[]string{"to"},
		),
		sideEffects: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "workflow",
				Name:      "side_effect_failures_total",
				Help:      "Notifications and events that could not be handed off after commit.",
			},
			[]string{"kind"},
		),
	}
}

func (w *Workflow) ObserveOperation(operation, outcome string, elapsed time.Duration) {
	w.operations.WithLabelValues(operation, outcome).Inc()
	w.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (w *Workflow) CountOverride(to string) {
	w.overrides.WithLabelValues(to).Inc()
}

func (w *Workflow) CountSideEffectFailure(kind string) {
	w.sideEffects.WithLabelValues(kind).Inc()
}

// HTTP tracks requests by route template, so path parameters do not explode
// label cardinality.
type HTTP struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	skip             map[string]struct{}
}

func NewHTTP(reg prometheus.Registerer, cfg Config) *HTTP {
	cfg = cfg.withDefaults()
	factory := promauto.With(reg)

	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return &HTTP{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Request latency in seconds.",
				Buckets:   cfg.Buckets,
			},
			[]string{"method", "path"},
		),
		requestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Current number of requests being served.",
			},
		),
		skip: skip,
	}
}

// Middleware records every request that reaches the router.
func (h *HTTP) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			if _, ok := h.skip[path]; ok {
				return next(c)
			}

			h.requestsInFlight.Inc()
			start := time.Now()
			err := next(c)
			if err != nil {
				// Let the error handler write the response so the status is final.
				c.Error(err)
			}
			h.requestsInFlight.Dec()

			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)
			h.requestsTotal.WithLabelValues(method, path, status).Inc()
			h.requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
