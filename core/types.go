// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/lvroute/hashmap"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex label is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")
)

// Vertex is a location in the graph.
//
// ID is immutable after creation. out holds the outgoing edges in insertion
// order, at most one per destination.
type Vertex struct {
	// ID is the unique label of this Vertex.
	ID string

	out []Edge
}

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the travel cost of the edge; always ≥ 0.
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity sets the initial bucket count of the vertex index.
// Panics with an error wrapping hashmap.ErrInvalidCapacity if n ≤ 0.
func WithCapacity(n int) GraphOption {
	if n <= 0 {
		panic(fmt.Errorf("core: WithCapacity(%d): %w", n, hashmap.ErrInvalidCapacity))
	}
	return func(g *Graph) { g.capacity = n }
}

// WithStrictEdges makes AddEdge fail with ErrVertexNotFound instead of
// creating missing endpoints.
func WithStrictEdges() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// Graph is the directed, weighted location graph.
//
// mu guards vertices and edgeCount. The vertex index has its own lock, but
// multi-step mutations (check endpoint, append edge) rely on mu for atomicity.
type Graph struct {
	mu sync.RWMutex

	// Configuration
	capacity int  // initial bucket count of the vertex index
	strict   bool // reject edges with unknown endpoints

	// Storage
	vertices  *hashmap.Map[string, *Vertex] // label → Vertex
	edgeCount int
}

// NewGraph creates an empty Graph.
// By default missing edge endpoints are created on demand.
// Complexity: O(capacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{capacity: hashmap.DefaultCapacity}
	for _, opt := range opts {
		opt(g)
	}
	// capacity is positive and the hasher non-nil, so New cannot fail.
	g.vertices, _ = hashmap.NewString[*Vertex](hashmap.WithCapacity(g.capacity))

	return g
}
