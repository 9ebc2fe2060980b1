// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_path.go — Path(n): the simple path P_n.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges i–(i+1) for i = 0..n-2.
//
// P_n with n ≥ 3 has no closed tour; P_2 has one (the edge walked twice).

package builder

import (
	"github.com/katalvlaran/salesman/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		ids, err := addNodes(g, cfg, methodPath, 0, n)
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
