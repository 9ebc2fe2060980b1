// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// Shared helpers for constructors: node creation and edge emission with
// uniform error context.
package builder

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

// validateMin returns ErrTooFewVertices when got < min.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// addNodes creates nodes cfg.idFn(from..from+n-1) in ascending index order
// and returns their IDs.
func addNodes(g *core.Graph, cfg builderConfig, method string, from, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(from + i)
		if _, err := g.GetOrCreate(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: GetOrCreate(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// connect adds the undirected edge u–v with the next configured weight.
func connect(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if _, _, err := g.Connect(u, v, w); err != nil {
		return fmt.Errorf("%s: Connect(%s–%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
