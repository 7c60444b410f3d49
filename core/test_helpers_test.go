// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvroute/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep label and weight literals out of test bodies.

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight0 = 0.0
	Weight1 = 1.0
	Weight2 = 2.0
	Weight5 = 5.0
)

// Concurrency sizes.
const (
	NWriters   = 16
	NPerWriter = 50
	NReaders   = 32
)

// mustEdge adds from→to or fails the test.
func mustEdge(t *testing.T, g *core.Graph, from, to string, w float64) {
	t.Helper()
	require.NoError(t, g.AddEdge(from, to, w))
}
