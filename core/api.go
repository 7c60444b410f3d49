// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters, Stats snapshot and Clear.
// Policy:
//   - No algorithms here.
//   - Every exported function documents its locking.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount    int  // number of vertices
	EdgeCount      int  // number of directed edges
	BucketCapacity int  // current bucket count of the vertex index
	Strict         bool // WithStrictEdges was applied
}

// Strict reports whether AddEdge rejects unknown endpoints.
func (g *Graph) Strict() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.strict
}

// Stats returns a consistent snapshot of counts and configuration.
//
// Implementation:
//   - Stage 1: Acquire the read lock so counts and capacity agree.
//   - Stage 2: Copy the values into a GraphStats.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{
		VertexCount:    g.vertices.Size(),
		EdgeCount:      g.edgeCount,
		BucketCapacity: g.vertices.Capacity(),
		Strict:         g.strict,
	}
}

// Clear removes all vertices and edges. Options (strict mode) are kept and
// the vertex index keeps its current capacity.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices.Clear()
	g.edgeCount = 0
}
