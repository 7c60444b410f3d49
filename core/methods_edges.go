// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle (AddEdge with last-write-wins) and edge queries.
// Determinism:
//   - Neighbors(id) returns edges in insertion order of their destination.
//   - Edges() groups by source label ascending, then insertion order.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge sets the weight of the directed edge from→to.
//
// Implementation:
//   - Stage 1: Validate labels (ErrEmptyVertexID) and weight (ErrBadWeight).
//   - Stage 2: Under the write lock, ensure both endpoints exist: create them,
//     or fail with ErrVertexNotFound when the graph is strict.
//   - Stage 3: If from already has an edge to `to`, overwrite its weight.
//     Otherwise append a new edge.
//
// Behavior highlights:
//   - Never creates a parallel edge; the last weight written wins.
//   - Self-loops are stored like any other edge.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrVertexNotFound (strict mode only).
//
// Complexity:
//   - Time O(out-degree(from)) for the overwrite scan.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrBadWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range [2]string{from, to} {
		if g.vertices.ContainsKey(id) {
			continue
		}
		if g.strict {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
		if err := g.addVertexLocked(id); err != nil {
			return err
		}
	}

	src, err := g.vertexLocked(from)
	if err != nil {
		return err
	}
	for i := range src.out {
		if src.out[i].To == to {
			src.out[i].Weight = weight
			return nil
		}
	}
	src.out = append(src.out, Edge{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, err := g.Weight(from, to)
	return err == nil
}

// Weight returns the weight of the directed edge from→to.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound (unknown from), ErrEdgeNotFound.
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src, err := g.vertexLocked(from)
	if err != nil {
		return 0, err
	}
	for _, e := range src.out {
		if e.To == to {
			return e.Weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
}

// Neighbors returns the outgoing edges of id as (To, Weight) pairs.
//
// Returns:
//   - []Edge: a copy of the adjacency; empty (non-nil) when id has no
//     outgoing edges.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if id is not in the graph.
//
// Complexity:
//   - Time O(d), Space O(d), d = out-degree(id).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, err := g.vertexLocked(id)
	if err != nil {
		return nil, err
	}
	out := make([]Edge, len(v.out))
	copy(out, v.out)

	return out, nil
}

// Edges returns every edge, grouped by source label ascending.
// Complexity: O(V log V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sources := make([]*Vertex, 0, g.vertices.Size())
	g.vertices.Range(func(_ string, v *Vertex) bool {
		sources = append(sources, v)
		return true
	})
	sort.Slice(sources, func(i, j int) bool { return sources[i].ID < sources[j].ID })

	out := make([]Edge, 0, g.edgeCount)
	for _, v := range sources {
		out = append(out, v.out...)
	}

	return out
}

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
