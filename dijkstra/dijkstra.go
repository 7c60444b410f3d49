// Package dijkstra implements Dijkstra's shortest-path search on core.Graph.
//
// Notes on implementation choices:
//
//   - Search records live in a per-call arena; a record's predecessor is an
//     arena index (-1 for the source), so reconstruction is an index walk.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries whose vertex is already visited when popped.
//   - Point-to-point searches stop the first time the target is popped; with
//     non-negative weights that entry carries the minimum cost.
//   - Frontier ties are broken by vertex label, then by arena index, so equal
//     cost paths resolve the same way on every run.
//   - The context is checked once per frontier extraction.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// noTarget makes the runner search to exhaustion.
const noTarget = ""

// ShortestPath computes the minimum-cost path from start to end.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be non-empty (ErrEmptySource, ErrEmptyTarget).
//  3. options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  4. g must contain start and end (ErrVertexNotFound).
//
// Returns ErrNoPath when end is unreachable, or the context error (wrapped)
// when ctx is done before the search finishes.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func ShortestPath(ctx context.Context, g *core.Graph, start, end string, opts ...Option) (*Path, error) {
	cfg, err := prepare(g, start, opts)
	if err != nil {
		return nil, err
	}
	if end == "" {
		return nil, ErrEmptyTarget
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, end)
	}

	r := newRunner(ctx, g, cfg)
	r.init(start)
	last, err := r.process(end)
	if err != nil {
		return nil, err
	}
	if last < 0 {
		return nil, fmt.Errorf("%w: %q→%q", ErrNoPath, start, end)
	}

	return r.path(last), nil
}

// CostsFrom runs the search from start to exhaustion and returns the final
// cost of every reached vertex, start included at 0.
//
// Errors follow ShortestPath, minus the target checks and ErrNoPath.
func CostsFrom(ctx context.Context, g *core.Graph, start string, opts ...Option) (map[string]float64, error) {
	cfg, err := prepare(g, start, opts)
	if err != nil {
		return nil, err
	}

	r := newRunner(ctx, g, cfg)
	r.init(start)
	if _, err = r.process(noTarget); err != nil {
		return nil, err
	}

	return r.settled, nil
}

// PathNodes returns the labels along the shortest path, start and end included.
func PathNodes(ctx context.Context, g *core.Graph, start, end string, opts ...Option) ([]string, error) {
	p, err := ShortestPath(ctx, g, start, end, opts...)
	if err != nil {
		return nil, err
	}

	return p.Nodes(), nil
}

// TotalCost returns the cost of the shortest path.
func TotalCost(ctx context.Context, g *core.Graph, start, end string, opts ...Option) (float64, error) {
	p, err := ShortestPath(ctx, g, start, end, opts...)
	if err != nil {
		return 0, err
	}

	return p.Cost(), nil
}

// PerStepCosts returns the weights of the edges along the shortest path.
func PerStepCosts(ctx context.Context, g *core.Graph, start, end string, opts ...Option) ([]float64, error) {
	p, err := ShortestPath(ctx, g, start, end, opts...)
	if err != nil {
		return nil, err
	}

	return p.StepCosts(), nil
}

// prepare validates the shared inputs and builds the effective Options.
func prepare(g *core.Graph, start string, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return cfg, ErrNilGraph
	}
	if start == "" {
		return cfg, ErrEmptySource
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	if !g.HasVertex(start) {
		return cfg, fmt.Errorf("%w: source %q", ErrVertexNotFound, start)
	}

	return cfg, nil
}

// searchNode is one arena record: a vertex reached at cost via the edge of
// weight step from arena record pred.
type searchNode struct {
	id   string
	cost float64
	step float64
	pred int
}

// runner holds the mutable state for a single search.
type runner struct {
	ctx     context.Context
	g       *core.Graph // read-only within the search
	options Options
	arena   []searchNode       // every pushed record; indices are stable
	visited map[string]bool    // vertices whose cost is final
	settled map[string]float64 // final cost per visited vertex
	pq      frontier
}

func newRunner(ctx context.Context, g *core.Graph, cfg Options) *runner {
	if ctx == nil {
		ctx = context.Background()
	}
	n := g.VertexCount()

	return &runner{
		ctx:     ctx,
		g:       g,
		options: cfg,
		arena:   make([]searchNode, 0, n),
		visited: make(map[string]bool, n),
		settled: make(map[string]float64, n),
		pq:      make(frontier, 0, n),
	}
}

// init seeds the frontier with the source at cost 0 and no predecessor.
func (r *runner) init(source string) {
	heap.Init(&r.pq)
	r.push(searchNode{id: source, pred: -1})
}

// process is the core loop. It returns the arena index of the target record,
// or -1 if the frontier emptied (or target == noTarget).
func (r *runner) process(target string) (int, error) {
	for r.pq.Len() > 0 {
		if err := r.ctx.Err(); err != nil {
			return -1, fmt.Errorf("dijkstra: search interrupted: %w", err)
		}

		// 1) Pop the cheapest record.
		item := heap.Pop(&r.pq).(frontierItem)
		cur := r.arena[item.node]

		// 2) First extraction of the target is its shortest path.
		if target != noTarget && cur.id == target {
			return item.node, nil
		}

		// 3) Skip stale entries.
		if r.visited[cur.id] {
			continue
		}

		// 4) Heap is ordered by cost, so nothing cheaper remains.
		if cur.cost > r.options.MaxDistance {
			break
		}

		// 5) Finalize and relax.
		r.visited[cur.id] = true
		r.settled[cur.id] = cur.cost
		if err := r.relax(item.node); err != nil {
			return -1, err
		}
	}

	return -1, nil
}

// relax pushes a record for every outgoing edge of arena record idx that
// leads to an unvisited vertex.
func (r *runner) relax(idx int) error {
	cur := r.arena[idx]
	edges, err := r.g.Neighbors(cur.id)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", cur.id, err)
	}

	for _, e := range edges {
		if r.visited[e.To] {
			continue
		}
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		cost := cur.cost + e.Weight
		if cost > r.options.MaxDistance {
			continue
		}
		r.push(searchNode{id: e.To, cost: cost, step: e.Weight, pred: idx})
	}

	return nil
}

func (r *runner) push(n searchNode) {
	r.arena = append(r.arena, n)
	heap.Push(&r.pq, frontierItem{cost: n.cost, id: n.id, node: len(r.arena) - 1})
}

// path walks predecessor links from arena record last back to the source.
func (r *runner) path(last int) *Path {
	var length int
	for i := last; i >= 0; i = r.arena[i].pred {
		length++
	}

	p := &Path{
		nodes: make([]string, length),
		steps: make([]float64, length-1),
		cost:  r.arena[last].cost,
	}
	pos := length - 1
	for i := last; i >= 0; i = r.arena[i].pred {
		p.nodes[pos] = r.arena[i].id
		if pos > 0 {
			p.steps[pos-1] = r.arena[i].step
		}
		pos--
	}

	return p
}

// frontierItem is a heap entry pointing at an arena record.
type frontierItem struct {
	cost float64
	id   string
	node int
}

// frontier is a min-heap ordered by cost, then label, then arena index.
type frontier []frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	if pq[i].id != pq[j].id {
		return pq[i].id < pq[j].id
	}

	return pq[i].node < pq[j].node
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a frontierItem.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(frontierItem)) }

// Pop is called by heap.Pop.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
