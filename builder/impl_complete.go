// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_complete.go — Complete(n): the complete simple graph K_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Nodes idFn(0..n-1) in ascending order.
//   • Each unordered pair {i,j}, i<j, is connected once, lexicographic by (i,j).
//
// Complexity: O(n) nodes + O(n²) edges.
// K_n has (n-1)! directed tours from any fixed entry node.

package builder

import (
	"github.com/katalvlaran/salesman/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		ids, err := addNodes(g, cfg, methodComplete, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
