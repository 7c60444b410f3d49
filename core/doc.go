// Package core provides the in-memory location graph: a directed, weighted,
// thread-safe Graph whose vertex index is a hashmap.Map keyed by label.
//
// The Graph G = (V,E) has these rules:
//
//   - Vertices are identified by a non-empty string label. Adding a label twice
//     is a no-op.
//   - Edges are directed and carry a non-negative, finite float64 weight.
//   - At most one edge exists per ordered pair (from,to). Adding it again
//     overwrites the stored weight (last write wins).
//   - AddEdge creates missing endpoints, unless the graph was built with
//     WithStrictEdges(), in which case it fails with ErrVertexNotFound.
//
// Configuration Options (GraphOption):
//
//	– WithCapacity(n int)
//	    Initial bucket count of the vertex index (default hashmap.DefaultCapacity);
//	    panics on n ≤ 0.
//
//	– WithStrictEdges()
//	    Reject edges whose endpoints were not added first.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error            // O(1) amortized
//	HasVertex(id string) bool             // O(1)
//	Vertices() []string                   // O(V·log V), sorted
//	VertexCount() int                     // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) error   // O(out-degree(from))
//	HasEdge(from, to string) bool               // O(out-degree(from))
//	Weight(from, to string) (float64, error)    // O(out-degree(from))
//	Neighbors(id string) ([]Edge, error)        // O(out-degree(id))
//	Edges() []Edge                              // O(E·log V)
//	EdgeCount() int                             // O(1)
//
//	// Maintenance
//	Clear()                               // empty the graph, keep options
//	Stats() GraphStats                    // O(1) snapshot
//
// Concurrency: a single sync.RWMutex guards the graph. Reads run in parallel;
// AddVertex, AddEdge and Clear are exclusive.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex label
//	ErrVertexNotFound – missing vertex (lookups, or AddEdge in strict mode)
//	ErrEdgeNotFound   – missing edge
//	ErrBadWeight      – negative, NaN or infinite weight
package core
