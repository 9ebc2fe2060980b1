// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_star.go - Star(n): one hub and n-1 leaves.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is idFn(0) and therefore the entry node; leaves are idFn(1..n-1).
//   - Spokes are emitted hub–leaf in increasing leaf index.

package builder

import (
	"github.com/katalvlaran/salesman/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n nodes.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		ids, err := addNodes(g, cfg, methodStar, 0, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(g, cfg, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
