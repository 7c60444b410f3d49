// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Canonical model:
//   • Orthogonal lattice; each cell links to its right and bottom neighbor.
//   • Vertex IDs use the fixed scheme "r,c" (row-major), ignoring cfg.idFn
//     so coordinates stay explicit.
//   • Combine with WithBidirectional for a street grid walkable both ways.
//
// Complexity: O(rows*cols) vertices and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the label Grid assigns to cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		// Right then bottom, per cell in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
