// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_linear.go - Path(n), Cycle(n) and Star(n).
//
// Determinism:
//   • Vertices in index order 0..n-1 (Star: "Center" first).
//   • Edges in index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path returns a Constructor for the chain v0 → v1 → … → v(n-1), n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = connect(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for Path(n) plus the edge v(n-1) → v0, n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor with hub "Center" and n-1 leaves labelled
// cfg.idFn(1..n-1), n ≥ 2. Spokes point outward.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}
			if err := connect(g, cfg, methodStar, centerVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
