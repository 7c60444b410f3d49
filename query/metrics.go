package query

import (
	"time"

	"github.com/katalvlaran/lvroute/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query operation label values.
const (
	OpRoute   = "route"
	OpNearest = "nearest"
)

// Query outcome label values.
const (
	OutcomeFound    = "found"
	OutcomeNoPath   = "no_path"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Reload outcome label values.
const (
	ReloadOK     = "ok"
	ReloadFailed = "failed"
)

// Metrics holds the Prometheus collectors for a Service and its reloader.
// All methods are safe on a nil *Metrics.
type Metrics struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	vertices prometheus.Gauge
	edges    prometheus.Gauge
	reloads  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvroute",
			Name:      "queries_total",
			Help:      "Queries served, by operation and outcome",
		}, []string{"op", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvroute",
			Name:      "query_duration_seconds",
			Help:      "Query latency in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"op"}),
		vertices: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "lvroute",
			Name:      "graph_vertices",
			Help:      "Locations in the published graph",
		}),
		edges: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "lvroute",
			Name:      "graph_edges",
			Help:      "Directed edges in the published graph",
		}),
		reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvroute",
			Name:      "graph_reloads_total",
			Help:      "Graph reload attempts by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveReload counts one reload attempt with the given outcome
// (ReloadOK or ReloadFailed).
func (m *Metrics) ObserveReload(outcome string) {
	if m == nil {
		return
	}
	m.reloads.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeQuery(op, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(op, outcome).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

func (m *Metrics) setGraph(st core.GraphStats) {
	if m == nil {
		return
	}
	m.vertices.Set(float64(st.VertexCount))
	m.edges.Set(float64(st.EdgeCount))
}
