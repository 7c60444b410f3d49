package dotfile

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvroute/core"
)

// Stats summarizes a successful load.
type Stats struct {
	Edges    int // edge lines applied, overwrites included
	Vertices int
	Unique   int // distinct ordered pairs after last-write-wins
}

// LoadInto clears g, then inserts both endpoints and the edge for every
// line read from r. An edge line declares its endpoints, so strict graphs
// load the same way.
//
// On any error g is cleared again, so it is never left half-populated.
// ctx is checked before each edge is applied.
func LoadInto(ctx context.Context, r io.Reader, g *core.Graph) (Stats, error) {
	if g == nil {
		return Stats{}, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}
	g.Clear()

	var st Stats
	err := scan(r, func(t Triple) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.AddVertex(t.From); err != nil {
			return err
		}
		if err := g.AddVertex(t.To); err != nil {
			return err
		}
		if err := g.AddEdge(t.From, t.To, t.Weight); err != nil {
			return err
		}
		st.Edges++
		return nil
	})
	if err != nil {
		g.Clear()
		return Stats{}, err
	}

	gs := g.Stats()
	st.Vertices = gs.VertexCount
	st.Unique = gs.EdgeCount

	return st, nil
}

// LoadFile builds a fresh graph from the file at path. opts configure the
// graph before loading.
func LoadFile(ctx context.Context, path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dotfile: open map: %w", err)
	}
	defer f.Close()

	g := core.NewGraph(opts...)
	if _, err = LoadInto(ctx, f, g); err != nil {
		return nil, fmt.Errorf("dotfile: load %s: %w", path, err)
	}

	return g, nil
}
