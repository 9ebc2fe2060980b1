// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for salesman/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep IDs and weights as named constants (no magic values in test bodies).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/core"
)

// Common node IDs used across core tests.
const (
	NodeEmpty = ""

	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// Common weights used across core tests.
const (
	Weight1   = 1
	Weight2   = 2
	Weight3   = 3
	WeightNeg = -4
)

// Concurrency sizes.
const (
	NConcurrentConnects = 200
	NReaders            = 50
)

// buildTriangle returns A;1;B, B;2;C, C;3;A.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	mustConnect(t, g, NodeA, NodeB, Weight1)
	mustConnect(t, g, NodeB, NodeC, Weight2)
	mustConnect(t, g, NodeC, NodeA, Weight3)

	return g
}

// mustConnect fails the test on any Connect error.
func mustConnect(t *testing.T, g *core.Graph, a, b string, w int64) {
	t.Helper()
	_, _, err := g.Connect(a, b, w)
	require.NoError(t, err)
}

// targets extracts the endpoint IDs of edges in order.
func targets(edges []core.EdgeInfo) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.To)
	}

	return out
}
