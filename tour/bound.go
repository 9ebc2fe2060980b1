// SPDX-License-Identifier: MIT
// Package tour — admissible lower bound for branch-and-bound.
//
// In a closed tour every node has exactly one outgoing edge. At a frame whose
// path holds depth nodes and whose current node is v, the remaining
// N−depth+1 edges leave v and each unvisited node once, so
//
//	LB = costSoFar + minOut[v] + Σ minOut[u] (u unvisited)
//
// never exceeds the cost of any completion. The bound uses the raw minimum
// of each node's edges, so it stays admissible with negative weights.
//
// Pruning is strict (LB > incumbent): every tour of optimal cost remains
// reachable, hence both tie-break policies report the same tour as the
// exhaustive search.

package tour

import (
	"math"

	"github.com/katalvlaran/salesman/core"
)

// bound holds per-node minima and the running sum over unvisited nodes.
type bound struct {
	minOut    []int64
	remaining int64
	dead      bool // some node has no edge at all: no tour can exist
}

// newBound computes minOut for every node of s.
// Complexity: O(V + E).
func newBound(s *core.Snapshot) *bound {
	n := s.N()
	b := &bound{minOut: make([]int64, n)}
	for v := 0; v < n; v++ {
		out := s.Out(v)
		if len(out) == 0 {
			b.dead = true
			b.minOut[v] = math.MaxInt64

			continue
		}
		m := s.Edge(out[0]).Weight
		for _, ei := range out[1:] {
			if w := s.Edge(ei).Weight; w < m {
				m = w
			}
		}
		b.minOut[v] = m
	}
	if !b.dead {
		for _, m := range b.minOut {
			b.remaining += m
		}
	}

	return b
}

// enter removes v from the unvisited sum.
func (b *bound) enter(v int) { b.remaining -= b.minOut[v] }

// leave restores v into the unvisited sum.
func (b *bound) leave(v int) { b.remaining += b.minOut[v] }

// lower returns the bound at current node v (already entered) with cost so far.
func (b *bound) lower(v int, cost int64) int64 {
	return cost + b.minOut[v] + b.remaining
}

// clone returns an independent copy for another worker.
func (b *bound) clone() *bound {
	if b == nil {
		return nil
	}
	cp := *b

	return &cp
}
