// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path search over a core.Graph.
//
// The search runs from a single source over non-negative edge weights. It keeps
// a min-priority frontier of search records, each holding a vertex, its
// tentative cost and the arena index of the record it was reached from.
//
// Complexity:
//
//	– Time:  O((V + E) log E)
//	   • Each vertex is expanded at most once (visited check on extraction).
//	   • Each edge relaxation pushes at most one frontier entry (E pushes).
//	   • No decrease-key: stale entries stay in the heap and are skipped on pop.
//	– Space: O(V + E)
//	   • One arena record per push; predecessor links are arena indices.
//
// Options:
//
//	– MaxDistance:      vertices whose cost exceeds this are not expanded.
//	– InfEdgeThreshold: edges with weight >= this threshold are impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrEmptySource     if the source label is empty.
//	– ErrEmptyTarget     if the target label is empty.
//	– ErrVertexNotFound  if the source or target is not in the graph.
//	– ErrNoPath          if the target cannot be reached from the source.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN.
//
// Example usage:
//
//	p, err := dijkstra.ShortestPath(ctx, g, "D", "I")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Nodes(), p.Cost())
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the source label is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrEmptyTarget indicates that the target label is empty.
	ErrEmptyTarget = errors.New("dijkstra: target vertex ID is empty")

	// ErrVertexNotFound indicates that the source or target is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates that the frontier emptied before reaching the target.
	ErrNoPath = errors.New("dijkstra: no path between vertices")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a non-positive or NaN InfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the search.
//
// MaxDistance      – cap on the cost of expanded vertices. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this value are skipped. Default +Inf.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64

	// err records the first invalid option; surfaced when the search starts.
	err error
}

// Option represents a functional option for configuring the search.
// Invalid values are recorded and returned by the search call.
type Option func(*Options)

// WithMaxDistance stops expansion beyond cost max.
// Negative or NaN values cause ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.setErr(ErrBadMaxDistance)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Zero, negative or NaN values cause ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.setErr(ErrBadInfThreshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Path is the result of a successful point-to-point search.
type Path struct {
	nodes []string
	steps []float64
	cost  float64
}

// Nodes returns the labels from source to target inclusive.
func (p *Path) Nodes() []string {
	out := make([]string, len(p.nodes))
	copy(out, p.nodes)

	return out
}

// StepCosts returns the weight of each traversed edge in order.
// len(StepCosts()) == len(Nodes()) - 1.
func (p *Path) StepCosts() []float64 {
	out := make([]float64, len(p.steps))
	copy(out, p.steps)

	return out
}

// Cost returns the total path cost, the sum of StepCosts.
func (p *Path) Cost() float64 { return p.cost }

// Len returns the number of vertices on the path.
func (p *Path) Len() int { return len(p.nodes) }
