// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// helpers.go - shared vertex and edge emission for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// centerVertexID is the fixed hub label used by Star.
const centerVertexID = "Center"

// addVertices inserts cfg.idFn(0..n-1) in index order and returns the IDs.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// connect draws one weight and emits u→v, plus v→u when bidirectional.
func connect(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if cfg.bidirectional && u != v {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}
