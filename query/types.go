// Package query is the user-facing layer over a location graph: shortest
// routes between two locations and the nearest destinations from an origin.
//
// A Service reads whichever *core.Graph was last published to it. Publishing
// swaps the whole graph atomically, so queries never observe a half-loaded map
// and the Service is safe for concurrent use.
//
// Two result styles are offered:
//
//   - Route and Nearest return explicit results and typed errors.
//   - ShortestPath and StepCosts collapse every failure to an empty slice,
//     which is what simple presentation code wants.
package query

import (
	"errors"
	"log/slog"
	"time"
)

// DefaultNearestLimit is the value of Service.NearestLimit unless
// WithNearestLimit overrides it.
const DefaultNearestLimit = 10

var (
	// ErrLocationNotFound indicates that a queried label is not in the graph.
	ErrLocationNotFound = errors.New("query: location not found")

	// ErrEmptyLocation indicates that a queried label is the empty string.
	ErrEmptyLocation = errors.New("query: location label is empty")

	// ErrNegativeLimit indicates a negative destination count.
	ErrNegativeLimit = errors.New("query: nearest limit must not be negative")
)

// Status reports how a route query ended.
type Status string

const (
	// StatusFound means Locations, StepCosts and Total describe a route.
	StatusFound Status = "found"
	// StatusNoPath means both locations exist but the end is unreachable.
	StatusNoPath Status = "no_path"
)

// Route is the explicit result of a shortest-path query.
type Route struct {
	Status    Status    `json:"status"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Locations []string  `json:"locations"`
	StepCosts []float64 `json:"step_costs"`
	Total     float64   `json:"total"`
}

// Found reports whether r carries a path.
func (r Route) Found() bool { return r.Status == StatusFound }

// Destination is one entry of a nearest-destinations result.
type Destination struct {
	Location string  `json:"location"`
	Cost     float64 `json:"cost"`
}

// Pair names the endpoints of one query in a Routes batch.
type Pair struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used for query diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics attaches Prometheus collectors. Nil disables metrics.
func WithMetrics(m *Metrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

// WithNearestLimit sets the count reported by NearestLimit, which callers use
// when the user asks for no specific count. Values ≤ 0 are ignored.
func WithNearestLimit(k int) ServiceOption {
	return func(s *Service) {
		if k > 0 {
			s.nearestLimit = k
		}
	}
}

// WithSearchTimeout bounds every single search. Zero or negative disables it.
func WithSearchTimeout(d time.Duration) ServiceOption {
	return func(s *Service) { s.timeout = d }
}
