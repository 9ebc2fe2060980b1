// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_grid.go — Grid(rows, cols): 4-neighborhood lattice.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices).
//   • Node (r,c) is idFn(r*cols + c), created row-major.
//   • Edges row-major: for each cell, right neighbor then down neighbor.
//
// A grid with rows, cols ≥ 2 has a closed tour iff rows*cols is even.

package builder

import (
	"github.com/katalvlaran/salesman/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		ids, err := addNodes(g, cfg, methodGrid, 0, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cur := ids[r*cols+c]
				if c+1 < cols {
					if err = connect(g, cfg, methodGrid, cur, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = connect(g, cfg, methodGrid, cur, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
