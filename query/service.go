package query

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"golang.org/x/sync/errgroup"
)

// Service answers route and nearest-destination queries against the most
// recently published graph.
type Service struct {
	graph        atomic.Pointer[core.Graph]
	logger       *slog.Logger
	metrics      *Metrics
	nearestLimit int
	timeout      time.Duration
}

// NewService returns a Service holding an empty graph.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		logger:       slog.Default(),
		nearestLimit: DefaultNearestLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Publish(core.NewGraph())

	return s
}

// Publish makes g the graph every subsequent query reads. The caller must
// not mutate g afterwards. A nil g publishes an empty graph.
func (s *Service) Publish(g *core.Graph) {
	if g == nil {
		g = core.NewGraph()
	}
	s.graph.Store(g)

	st := g.Stats()
	s.metrics.setGraph(st)
	s.logger.Info("graph published", "vertices", st.VertexCount, "edges", st.EdgeCount)
}

// Graph returns the currently published graph.
func (s *Service) Graph() *core.Graph { return s.graph.Load() }

// Locations returns every location label in ascending order.
func (s *Service) Locations() []string { return s.Graph().Vertices() }

// Route computes the minimum-cost route from start to end.
//
// An unreachable end is not an error: the result has Status StatusNoPath.
// Errors:
//   - ErrEmptyLocation if start or end is "".
//   - ErrLocationNotFound (wrapped, naming the label) if either is absent.
//   - the context error if ctx ends, or the search timeout elapses, first.
func (s *Service) Route(ctx context.Context, start, end string) (Route, error) {
	began := time.Now()
	r, err := s.route(ctx, s.Graph(), start, end)
	s.metrics.observeQuery(OpRoute, routeOutcome(r, err), time.Since(began))
	if err != nil {
		s.logger.Debug("route failed", "start", start, "end", end, "error", err)
		return Route{}, err
	}
	s.logger.Debug("route", "start", start, "end", end, "status", r.Status, "total", r.Total)

	return r, nil
}

func (s *Service) route(ctx context.Context, g *core.Graph, start, end string) (Route, error) {
	if err := checkLocations(g, start, end); err != nil {
		return Route{}, err
	}

	ctx, cancel := s.searchContext(ctx)
	defer cancel()

	p, err := dijkstra.ShortestPath(ctx, g, start, end)
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		return Route{Status: StatusNoPath, Start: start, End: end}, nil
	case err != nil:
		return Route{}, err
	}

	return Route{
		Status:    StatusFound,
		Start:     start,
		End:       end,
		Locations: p.Nodes(),
		StepCosts: p.StepCosts(),
		Total:     p.Cost(),
	}, nil
}

// ShortestPath returns the labels on the shortest route, start and end
// included, or an empty slice on any failure (absent labels, no path).
func (s *Service) ShortestPath(ctx context.Context, start, end string) []string {
	r, err := s.Route(ctx, start, end)
	if err != nil || !r.Found() {
		return []string{}
	}

	return r.Locations
}

// StepCosts returns the per-edge costs along the shortest route, or an empty
// slice on any failure.
func (s *Service) StepCosts(ctx context.Context, start, end string) []float64 {
	r, err := s.Route(ctx, start, end)
	if err != nil || !r.Found() {
		return []float64{}
	}

	return r.StepCosts
}

// Nearest returns at most k destinations reachable from start, cheapest
// first. start itself is never included. Equal costs are ordered by label.
// k == 0 yields an empty result; callers wanting the configured count pass
// NearestLimit().
//
// Errors: ErrEmptyLocation, ErrLocationNotFound, ErrNegativeLimit, or the
// context error.
func (s *Service) Nearest(ctx context.Context, start string, k int) ([]Destination, error) {
	began := time.Now()
	out, err := s.nearest(ctx, start, k)
	outcome := OutcomeFound
	if err != nil {
		outcome = errorOutcome(err)
		s.logger.Debug("nearest failed", "start", start, "error", err)
	}
	s.metrics.observeQuery(OpNearest, outcome, time.Since(began))

	return out, err
}

func (s *Service) nearest(ctx context.Context, start string, k int) ([]Destination, error) {
	g := s.Graph()
	if err := checkLocations(g, start); err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeLimit, k)
	}
	if k == 0 {
		return []Destination{}, nil
	}

	ctx, cancel := s.searchContext(ctx)
	defer cancel()

	costs, err := dijkstra.CostsFrom(ctx, g, start)
	if err != nil {
		return nil, err
	}

	out := make([]Destination, 0, len(costs))
	for id, c := range costs {
		if id == start {
			continue
		}
		out = append(out, Destination{Location: id, Cost: c})
	}
	slices.SortFunc(out, func(a, b Destination) int {
		if c := cmp.Compare(a.Cost, b.Cost); c != 0 {
			return c
		}
		return cmp.Compare(a.Location, b.Location)
	})
	if len(out) > k {
		out = out[:k]
	}

	return out, nil
}

// NearestLimit returns the destination count configured with
// WithNearestLimit, DefaultNearestLimit otherwise.
func (s *Service) NearestLimit() int { return s.nearestLimit }

// NearestLabels is Nearest without the costs.
func (s *Service) NearestLabels(ctx context.Context, start string, k int) ([]string, error) {
	ds, err := s.Nearest(ctx, start, k)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(ds))
	for i, d := range ds {
		labels[i] = d.Location
	}

	return labels, nil
}

// Routes answers a batch of route queries concurrently. Every query reads the
// same graph snapshot. The first failing query cancels the rest and its
// error is returned. Results are in the order of pairs.
func (s *Service) Routes(ctx context.Context, pairs []Pair) ([]Route, error) {
	g := s.Graph()
	out := make([]Route, len(pairs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range pairs {
		eg.Go(func() error {
			began := time.Now()
			r, err := s.route(ctx, g, p.Start, p.End)
			s.metrics.observeQuery(OpRoute, routeOutcome(r, err), time.Since(began))
			if err != nil {
				return fmt.Errorf("pair %d (%q→%q): %w", i, p.Start, p.End, err)
			}
			out[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Service) searchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}

	return context.WithCancel(ctx)
}

// checkLocations rejects empty or unknown labels before any search runs.
func checkLocations(g *core.Graph, labels ...string) error {
	for _, l := range labels {
		if l == "" {
			return ErrEmptyLocation
		}
		if !g.HasVertex(l) {
			return fmt.Errorf("%w: %q", ErrLocationNotFound, l)
		}
	}

	return nil
}

func routeOutcome(r Route, err error) string {
	if err != nil {
		return errorOutcome(err)
	}
	if r.Status == StatusNoPath {
		return OutcomeNoPath
	}

	return OutcomeFound
}

func errorOutcome(err error) string {
	switch {
	case errors.Is(err, ErrLocationNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrEmptyLocation), errors.Is(err, ErrNegativeLimit):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
