// SPDX-License-Identifier: MIT
// Package builder generates deterministic location graphs for tests,
// benchmarks and load experiments.
//
// One orchestrator, BuildGraph, creates a core.Graph and applies Constructors
// in order. Each Constructor adds vertices through the configured ID scheme
// and edges through the configured weight function, so the same inputs,
// options and seed always produce the same graph.
//
// Topologies:
//
//   - Path(n)          v0 → v1 → … → v(n-1)
//   - Cycle(n)         Path plus the closing edge
//   - Star(n)          "Center" → every leaf
//   - Grid(rows, cols) 4-neighborhood lattice with IDs "r,c"
//   - Complete(n)      every ordered pair
//   - RandomSparse(n, p) each ordered pair with probability p
//
// Graphs are directed. WithBidirectional mirrors every emitted edge with the
// same weight, which is how two-way streets are modeled.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
//	    builder.Grid(20, 20))
package builder
