// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and vertex queries.
// Determinism:
//   - Vertices() returns labels sorted lexicographically.
// Concurrency:
//   - AddVertex takes the write lock; queries take the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex with the given label.
//
// Implementation:
//   - Stage 1: Reject the empty label (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, insert into the vertex index unless present.
//
// Behavior highlights:
//   - Idempotent: adding an existing label is a no-op and returns nil.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//
// Complexity:
//   - Time O(1) amortized (may trigger a rehash of the vertex index).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(id)
}

// HasVertex reports whether a vertex with the given label exists.
// The empty label is always absent.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.ContainsKey(id)
}

// Vertices returns every vertex label, sorted ascending.
//
// Returns:
//   - []string: a fresh slice; callers may modify it.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := g.vertices.Keys()
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.Size()
}

// addVertexLocked inserts id if absent. Caller holds the write lock.
func (g *Graph) addVertexLocked(id string) error {
	if g.vertices.ContainsKey(id) {
		return nil
	}
	if err := g.vertices.Put(id, &Vertex{ID: id}); err != nil {
		return fmt.Errorf("core: add vertex %q: %w", id, err)
	}

	return nil
}

// vertexLocked fetches id from the index. Caller holds a lock.
func (g *Graph) vertexLocked(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	v, err := g.vertices.Get(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return v, nil
}
