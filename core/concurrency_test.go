// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/lvroute/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from one source
// keep exactly one edge per destination.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	errs := make(chan error, NWriters*NPerWriter)

	for w := 0; w < NWriters; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < NPerWriter; i++ {
				// Every writer targets the same destinations, so the edge set converges.
				if err := g.AddEdge(VertexX, fmt.Sprintf("V%d", i), float64(w)); err != nil {
					errs <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(VertexX)
	require.NoError(t, err)
	require.Len(t, nbs, NPerWriter)
	require.Equal(t, NPerWriter, g.EdgeCount())
	require.Equal(t, NPerWriter+1, g.VertexCount())
}

// TestConcurrentReaders validates that parallel queries on a loaded graph do not race.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < NPerWriter; i++ {
		require.NoError(t, g.AddEdge(VertexA, fmt.Sprintf("V%d", i), float64(i)))
	}

	var wg sync.WaitGroup
	wg.Add(NReaders)
	for r := 0; r < NReaders; r++ {
		go func() {
			defer wg.Done()
			_, _ = g.Neighbors(VertexA)
			_ = g.Vertices()
			_ = g.Edges()
			_ = g.Stats()
		}()
	}
	wg.Wait()
}
