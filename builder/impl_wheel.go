// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_wheel.go - Wheel(n): a rim C_{n-1} plus a hub joined to every rim node.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Rim nodes idFn(0..n-2) and rim edges first (as Cycle(n-1)), then the
//     hub idFn(n-1) and spokes in increasing rim index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // the rim needs at least 3 nodes
)

// Wheel returns a Constructor that builds W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		hub, err := addNodes(g, cfg, methodWheel, n-1, 1)
		if err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err = connect(g, cfg, methodWheel, hub[0], cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
