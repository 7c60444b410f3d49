// Package dijkstra_test contains unit tests for the shortest-path search.
// They cover input validation, the reference lecture graph, path
// reconstruction, tie-breaking, exhaustive cost maps and cancellation.
package dijkstra_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lectureGraph builds the ten-node graph used throughout these tests.
func lectureGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "M", "I", "E", "D", "F", "G", "H", "L"} {
		require.NoError(t, g.AddVertex(id))
	}
	edges := []core.Edge{
		{From: "A", To: "B", Weight: 1}, {From: "A", To: "M", Weight: 5}, {From: "A", To: "H", Weight: 7},
		{From: "B", To: "M", Weight: 3},
		{From: "M", To: "I", Weight: 4}, {From: "M", To: "E", Weight: 3}, {From: "M", To: "F", Weight: 4},
		{From: "I", To: "H", Weight: 2}, {From: "I", To: "D", Weight: 1},
		{From: "D", To: "F", Weight: 4}, {From: "D", To: "G", Weight: 2}, {From: "D", To: "A", Weight: 7},
		{From: "F", To: "G", Weight: 9},
		{From: "G", To: "L", Weight: 7}, {From: "G", To: "H", Weight: 9}, {From: "G", To: "A", Weight: 4},
		{From: "H", To: "L", Weight: 2}, {From: "H", To: "B", Weight: 6}, {From: "H", To: "I", Weight: 2},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

func sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}

	return total
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_Validation(t *testing.T) {
	ctx := context.Background()
	g := lectureGraph(t)

	_, err := dijkstra.ShortestPath(ctx, nil, "D", "I")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestPath(ctx, g, "", "I")
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.ShortestPath(ctx, g, "D", "")
	require.ErrorIs(t, err, dijkstra.ErrEmptyTarget)

	_, err = dijkstra.ShortestPath(ctx, g, "D", "Z")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.ShortestPath(ctx, g, "Z", "D")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.ShortestPath(ctx, g, "D", "I", dijkstra.WithMaxDistance(-1))
	require.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, err = dijkstra.ShortestPath(ctx, g, "D", "I", dijkstra.WithInfEdgeThreshold(0))
	require.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

// ------------------------------------------------------------------------
// 2. Reference graph
// ------------------------------------------------------------------------

func TestShortestPath_LectureGraph(t *testing.T) {
	g := lectureGraph(t)
	cases := []struct {
		start, end string
		nodes      []string
		cost       float64
	}{
		{"D", "I", []string{"D", "G", "H", "I"}, 13},
		{"D", "G", []string{"D", "G"}, 2},
		{"F", "I", []string{"F", "G", "H", "I"}, 20},
		{"A", "E", []string{"A", "B", "M", "E"}, 7},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_to_%s", tc.start, tc.end), func(t *testing.T) {
			p, err := dijkstra.ShortestPath(context.Background(), g, tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, p.Nodes())
			assert.Equal(t, tc.cost, p.Cost())
			assert.Len(t, p.StepCosts(), p.Len()-1)
			assert.Equal(t, p.Cost(), sum(p.StepCosts()))
		})
	}
}

func TestShortestPath_StepCosts(t *testing.T) {
	g := lectureGraph(t)
	steps, err := dijkstra.PerStepCosts(context.Background(), g, "D", "I")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 9, 2}, steps)

	nodes, err := dijkstra.PathNodes(context.Background(), g, "D", "I")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "G", "H", "I"}, nodes)

	total, err := dijkstra.TotalCost(context.Background(), g, "D", "I")
	require.NoError(t, err)
	assert.Equal(t, 13.0, total)
}

func TestShortestPath_SameVertex(t *testing.T) {
	g := lectureGraph(t)
	p, err := dijkstra.ShortestPath(context.Background(), g, "E", "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"E"}, p.Nodes())
	assert.Empty(t, p.StepCosts())
	assert.Zero(t, p.Cost())
}

func TestShortestPath_NoPath(t *testing.T) {
	g := lectureGraph(t)
	// E and L have no outgoing edges.
	_, err := dijkstra.ShortestPath(context.Background(), g, "E", "A")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
	_, err = dijkstra.ShortestPath(context.Background(), g, "L", "E")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// ------------------------------------------------------------------------
// 3. Options and determinism
// ------------------------------------------------------------------------

func TestShortestPath_EqualCostTieBreak(t *testing.T) {
	g := core.NewGraph()
	// Two routes of cost 2: A→C→D and A→B→D. Label order prefers B.
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))

	for i := 0; i < 5; i++ {
		p, err := dijkstra.ShortestPath(context.Background(), g, "A", "D")
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "D"}, p.Nodes())
	}
}

func TestShortestPath_InfEdgeThreshold(t *testing.T) {
	g := lectureGraph(t)
	// Walls at weight ≥ 9 close G→H and F→G; D→I must detour.
	p, err := dijkstra.ShortestPath(context.Background(), g, "D", "I", dijkstra.WithInfEdgeThreshold(9))
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "G", "A", "B", "M", "I"}, p.Nodes())
	assert.Equal(t, 14.0, p.Cost())
}

func TestShortestPath_MaxDistance(t *testing.T) {
	g := lectureGraph(t)
	_, err := dijkstra.ShortestPath(context.Background(), g, "D", "I", dijkstra.WithMaxDistance(12))
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	p, err := dijkstra.ShortestPath(context.Background(), g, "D", "I", dijkstra.WithMaxDistance(13))
	require.NoError(t, err)
	assert.Equal(t, 13.0, p.Cost())
}

// ------------------------------------------------------------------------
// 4. Exhaustive search
// ------------------------------------------------------------------------

func TestCostsFrom(t *testing.T) {
	g := lectureGraph(t)
	costs, err := dijkstra.CostsFrom(context.Background(), g, "D")
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{
		"D": 0, "G": 2, "F": 4, "A": 6, "B": 7, "L": 9,
		"M": 10, "H": 11, "E": 13, "I": 13,
	}, costs)

	// Every finite cost agrees with a point-to-point search.
	for id, c := range costs {
		total, err := dijkstra.TotalCost(context.Background(), g, "D", id)
		require.NoError(t, err)
		assert.Equal(t, c, total, id)
	}
}

func TestCostsFrom_Unreachable(t *testing.T) {
	g := lectureGraph(t)
	costs, err := dijkstra.CostsFrom(context.Background(), g, "E")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"E": 0}, costs)

	_, err = dijkstra.CostsFrom(context.Background(), g, "Z")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// ------------------------------------------------------------------------
// 5. Cancellation
// ------------------------------------------------------------------------

func TestShortestPath_Canceled(t *testing.T) {
	g := lectureGraph(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dijkstra.ShortestPath(ctx, g, "D", "I")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = dijkstra.CostsFrom(ctx, g, "D")
	require.ErrorIs(t, err, context.Canceled)
}

func TestShortestPath_LongChain(t *testing.T) {
	g := core.NewGraph()
	const n = 500
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%03d", i), fmt.Sprintf("v%03d", i+1), 1))
		if i+2 <= n {
			// skip edges cost more than the two chain steps they replace
			require.NoError(t, g.AddEdge(fmt.Sprintf("v%03d", i), fmt.Sprintf("v%03d", i+2), 3))
		}
	}
	p, err := dijkstra.ShortestPath(context.Background(), g, "v000", fmt.Sprintf("v%03d", n))
	require.NoError(t, err)
	assert.Equal(t, n+1, p.Len())
	assert.Equal(t, float64(n), p.Cost())
}

// ------------------------------------------------------------------------
// 6. Generated graphs
// ------------------------------------------------------------------------

// TestShortestPath_UnitGrid checks the Manhattan distance across a
// two-way street grid with unit weights.
func TestShortestPath_UnitGrid(t *testing.T) {
	const rows, cols = 12, 9
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithBidirectional()}, builder.Grid(rows, cols))
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(context.Background(), g, builder.GridID(0, 0), builder.GridID(rows-1, cols-1))
	require.NoError(t, err)
	assert.Equal(t, float64((rows-1)+(cols-1)), p.Cost())
	assert.Equal(t, rows+cols-1, p.Len())

	back, err := dijkstra.ShortestPath(context.Background(), g, builder.GridID(rows-1, cols-1), builder.GridID(0, 0))
	require.NoError(t, err)
	assert.Equal(t, p.Cost(), back.Cost())
}

// TestShortestPath_OneWayCycle: on a directed cycle the way back is the
// long way round.
func TestShortestPath_OneWayCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(context.Background(), g, "1", "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "0"}, p.Nodes())
	assert.Equal(t, 5.0, p.Cost())
}

// TestShortestPath_RandomSparse checks every target of a seeded random graph:
// reachable targets get a path whose edges exist, whose step costs sum to
// Cost and whose Cost matches CostsFrom; the rest get ErrNoPath.
func TestShortestPath_RandomSparse(t *testing.T) {
	const n = 80
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithWeightFn(builder.UniformWeightFn(1, 20))},
		builder.RandomSparse(n, 0.06))
	require.NoError(t, err)
	ctx := context.Background()

	costs, err := dijkstra.CostsFrom(ctx, g, "0")
	require.NoError(t, err)
	require.Greater(t, len(costs), 1, "seeded graph should reach more than the source")

	for _, target := range g.Vertices() {
		p, err := dijkstra.ShortestPath(ctx, g, "0", target)
		want, reachable := costs[target]
		if !reachable {
			require.ErrorIs(t, err, dijkstra.ErrNoPath, target)
			continue
		}
		require.NoError(t, err, target)

		nodes, steps := p.Nodes(), p.StepCosts()
		require.Equal(t, "0", nodes[0])
		require.Equal(t, target, nodes[len(nodes)-1])
		require.Len(t, steps, len(nodes)-1)
		for i, w := range steps {
			edge, err := g.Weight(nodes[i], nodes[i+1])
			require.NoError(t, err)
			assert.Equal(t, edge, w)
		}
		assert.InDelta(t, sum(steps), p.Cost(), 1e-9, target)
		assert.InDelta(t, want, p.Cost(), 1e-9, target)
	}
}
