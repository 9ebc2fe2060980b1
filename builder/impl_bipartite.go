// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2): K_{n1,n2}.
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Left nodes idFn(0..n1-1), then right nodes idFn(n1..n1+n2-1).
//   - Edges left-major: for each left node, every right node in order.
//
// K_{n,n} with n ≥ 2 has closed tours; K_{n1,n2} with n1 ≠ n2 has none.

package builder

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left, err := addNodes(g, cfg, methodCompleteBipartite, 0, n1)
		if err != nil {
			return err
		}
		right, err := addNodes(g, cfg, methodCompleteBipartite, n1, n2)
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = connect(g, cfg, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
