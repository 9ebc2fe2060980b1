// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_cycle.go — Cycle(n): the ring C_n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Edges i–(i+1) for i = 0..n-2, then the closing edge (n-1)–0.
//
// C_n has exactly two tours from the entry node (one per direction).

package builder

import (
	"github.com/katalvlaran/salesman/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		ids, err := addNodes(g, cfg, methodCycle, 0, n)
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
