package dotfile_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dotfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SkipsNonEdgeLines(t *testing.T) {
	in := `digraph g {

// comment -> with label= inside
  A -> B [label="1.5"];
node [shape=box];
  "B" -> "C D" [label="2"];
}
`
	got, err := dotfile.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []dotfile.Triple{
		{From: "A", To: "B", Weight: 1.5},
		{From: "B", To: "C D", Weight: 2},
	}, got)
}

func TestParse_WeightStripping(t *testing.T) {
	cases := []struct {
		label string
		want  float64
	}{
		{`"5.0"`, 5.0},
		{`"4.0 min"`, 4.0},
		{`5`, 5},
		{`"-3"`, 3}, // sign is not a digit
		{`"0.25"`, 0.25},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			got, err := dotfile.Parse(strings.NewReader("X -> Y [label=" + tc.label + "];"))
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tc.want, got[0].Weight)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
		want error
	}{
		{"no digits", "A -> B [label=\"fast\"];", 1, dotfile.ErrMalformedWeight},
		{"two dots", "\n\nA -> B [label=\"1.2.3\"];", 3, dotfile.ErrMalformedWeight},
		{"empty from", " -> B [label=\"1\"];", 1, dotfile.ErrMalformedEdge},
		{"no brackets", "A -> B label=1;", 1, dotfile.ErrMalformedEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dotfile.Parse(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.Nil(t, got)
			require.ErrorIs(t, err, tc.want)

			var pe *dotfile.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
		})
	}
}

func TestLoadFile_Lecture(t *testing.T) {
	g, err := dotfile.LoadFile(context.Background(), filepath.Join("testdata", "lecture.dot"))
	require.NoError(t, err)
	assert.Equal(t, 10, g.VertexCount())
	assert.Equal(t, 19, g.EdgeCount())

	w, err := g.Weight("G", "H")
	require.NoError(t, err)
	assert.Equal(t, 9.0, w)
}

func TestLoadFile_Campus(t *testing.T) {
	g, err := dotfile.LoadFile(context.Background(), filepath.Join("testdata", "campus.dot"), core.WithStrictEdges())
	require.NoError(t, err)
	assert.True(t, g.Strict())
	assert.Equal(t, []string{
		"Atmospheric, Oceanic and Space Sciences",
		"Computer Sciences and Statistics",
		"Memorial Union",
		"Union South",
	}, g.Vertices())

	w, err := g.Weight("Memorial Union", "Atmospheric, Oceanic and Space Sciences")
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := dotfile.LoadFile(context.Background(), filepath.Join("testdata", "missing.dot"))
	require.Error(t, err)

	_, err = dotfile.LoadFile(context.Background(), filepath.Join("testdata", "broken.dot"))
	require.ErrorIs(t, err, dotfile.ErrMalformedWeight)
	var pe *dotfile.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
}

func TestLoadInto_ClearsFirst(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("Old", "Stale", 1))

	st, err := dotfile.LoadInto(context.Background(), strings.NewReader(`
A -> B [label="1"];
A -> B [label="3"];
B -> C [label="2"];
`), g)
	require.NoError(t, err)
	assert.Equal(t, dotfile.Stats{Edges: 3, Vertices: 3, Unique: 2}, st)
	assert.False(t, g.HasVertex("Old"))

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 3.0, w, "last write wins")
}

func TestLoadInto_FailureLeavesGraphEmpty(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("Old", "Stale", 1))

	_, err := dotfile.LoadInto(context.Background(), strings.NewReader(`
A -> B [label="1"];
B -> C [label="?"];
`), g)
	require.ErrorIs(t, err, dotfile.ErrMalformedWeight)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestLoadInto_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := core.NewGraph()

	_, err := dotfile.LoadInto(ctx, strings.NewReader(`A -> B [label="1"];`), g)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, g.VertexCount())

	_, err = dotfile.LoadInto(context.Background(), strings.NewReader(""), nil)
	require.ErrorIs(t, err, dotfile.ErrNilGraph)
}
