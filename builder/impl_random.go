// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_random.go - Complete(n) and RandomSparse(n, p).
//
// Both iterate ordered pairs (i, j), i ≠ j, with i ascending then j
// ascending, so a fixed seed reproduces the same edge set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minCompleteNodes = 1
	minSparseNodes   = 1
)

// Complete returns a Constructor linking every ordered pair of n ≥ 1
// vertices. Self-loops are not emitted.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err = connect(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor that includes each ordered pair of n
// vertices independently with probability p.
//
// Errors: ErrTooFewVertices (n < 1), ErrInvalidProbability (p ∉ [0,1]),
// ErrNeedRandSource (0 < p < 1 without an RNG).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				include := p == 1
				if cfg.rng != nil && p > 0 && p < 1 {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err = connect(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
