package builder_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge("0", "1"))
	assert.True(t, g.HasEdge("2", "3"))
	assert.False(t, g.HasEdge("1", "0"))

	w, err := g.Weight("1", "2")
	require.NoError(t, err)
	assert.Equal(t, builder.DefaultEdgeWeight, w)
}

func TestCycle_Bidirectional(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithBidirectional(), builder.WithSymbNumb("s")},
		builder.Cycle(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 10, g.EdgeCount())
	assert.True(t, g.HasEdge("s4", "s0"))
	assert.True(t, g.HasEdge("s0", "s4"))
}

func TestStar(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2.5))},
		builder.Star(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "Center"}, g.Vertices())

	nbs, err := g.Neighbors("Center")
	require.NoError(t, err)
	require.Len(t, nbs, 3)
	for _, e := range nbs {
		assert.Equal(t, 2.5, e.Weight)
	}
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithBidirectional()}, builder.Grid(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.VertexCount())
	// 3*(4-1) horizontal + (3-1)*4 vertical, both directions.
	assert.Equal(t, 2*(9+8), g.EdgeCount())
	assert.True(t, g.HasEdge(builder.GridID(1, 1), builder.GridID(1, 2)))
	assert.True(t, g.HasEdge(builder.GridID(2, 3), builder.GridID(1, 3)))
	assert.False(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(1, 1)))
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 12, g.EdgeCount())
	assert.False(t, g.HasEdge("A", "A"))
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() []core.Edge {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
			builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g.Edges()
	}
	first, second := build(), build()
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
	for _, e := range first {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.Less(t, e.Weight, 10.0)
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	g, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 20, g.EdgeCount())
}

func TestBuildGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		want error
	}{
		{"path too small", builder.Path(1), builder.ErrTooFewVertices},
		{"cycle too small", builder.Cycle(2), builder.ErrTooFewVertices},
		{"star too small", builder.Star(1), builder.ErrTooFewVertices},
		{"grid zero rows", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"complete empty", builder.Complete(0), builder.ErrTooFewVertices},
		{"bad probability", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.cons)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestBuildGraph_StrictGraphOption(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithStrictEdges()}, nil, builder.Path(3))
	require.NoError(t, err)
	assert.True(t, g.Strict())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "stop7", builder.SymbolNumberIDFn("stop")(7))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
}
