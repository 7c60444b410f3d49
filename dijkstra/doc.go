// Package dijkstra finds minimum-cost routes on a core.Graph with
// non-negative edge weights.
//
// Overview:
//
//   - ShortestPath runs a point-to-point search and returns a *Path holding the
//     visited labels, the per-edge costs and the total cost.
//   - CostsFrom runs the same search to exhaustion and returns the final cost
//     of every vertex reachable from the source. Nearest-destination queries are
//     built on it.
//   - PathNodes, TotalCost and PerStepCosts are one-shot helpers over ShortestPath.
//
// Key features:
//
//   - Functional options (WithMaxDistance, WithInfEdgeThreshold) tune the search
//     without changing the API signature.
//   - Every call owns its search state; concurrent searches over one graph are
//     safe as long as the graph is not being mutated.
//   - A context.Context is threaded through the loop and checked once per
//     frontier extraction, so long searches honor deadlines.
//
// Determinism:
//
//   - Equal-cost frontier entries are extracted in label order, so the same
//     graph always yields the same path.
package dijkstra
