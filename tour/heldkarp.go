// SPDX-License-Identifier: MIT
// Package tour — Held–Karp dynamic program.
//
// heldKarp solves the same problem as the backtracking engine with the
// O(n²·2ⁿ) bitmask recurrence and serves as an independent oracle for the
// optimal cost. Node 0 of the recurrence is the entry node; the others follow
// in ascending-ID order.
//
//	dp[mask][j] = cheapest path that starts at the entry, visits exactly the
//	              nodes in mask (entry included) and ends at j.
//
// Parallel edges collapse to their cheapest weight. Self-loops are only
// usable when the graph has a single node. Ties keep the first candidate, so
// the reported tour may differ from the engine's on equal-cost instances.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.

package tour

import (
	"context"

	"github.com/katalvlaran/salesman/core"
)

// MaxHeldKarpNodes bounds the Held–Karp strategy (2¹⁶·16 states).
const MaxHeldKarpNodes = 16

// hkCheckMask selects how often the DP consults the context (every 1024 masks).
const hkCheckMask = 1023

// heldKarp runs the recurrence on s. It returns node indices of the tour.
func heldKarp(ctx context.Context, s *core.Snapshot) ([]int, int64, bool, Stats, error) {
	var st Stats
	n := s.N()
	if n > MaxHeldKarpNodes {
		return nil, 0, false, st, ErrTooLarge
	}
	entry := s.Entry()

	if n == 1 {
		c, ok := hopCost(s, entry, entry)
		if !ok {
			return nil, 0, false, st, nil
		}
		st.Completions = 1

		return []int{entry, entry}, c, true, st, nil
	}

	// label[i] is the snapshot index of recurrence node i; label[0] is the entry.
	label := make([]int, 0, n)
	label = append(label, entry)
	for _, v := range s.Order() {
		if v != entry {
			label = append(label, v)
		}
	}
	w := make([]int64, n*n)
	has := make([]bool, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			w[i*n+j], has[i*n+j] = hopCost(s, label[i], label[j])
		}
	}

	full := 1<<n - 1
	size := (full + 1) * n
	dp := make([]int64, size)
	reach := make([]bool, size)
	parent := make([]int32, size)
	dp[1*n+0] = 0
	reach[1*n+0] = true
	parent[1*n+0] = -1

	for mask := 1; mask <= full; mask += 2 { // odd masks contain the entry
		if mask&hkCheckMask == 1 {
			if err := ctx.Err(); err != nil {
				return nil, 0, false, st, err
			}
		}
		for j := 0; j < n; j++ {
			cur := mask*n + j
			if !reach[cur] {
				continue
			}
			for k := 1; k < n; k++ {
				if mask&(1<<k) != 0 || !has[j*n+k] {
					continue
				}
				next := (mask|1<<k)*n + k
				cand := dp[cur] + w[j*n+k]
				st.Admissions++
				if !reach[next] || cand < dp[next] {
					dp[next] = cand
					reach[next] = true
					parent[next] = int32(j)
				}
			}
		}
	}

	var (
		best  int64
		last  = -1
		found bool
	)
	for j := 1; j < n; j++ {
		cur := full*n + j
		if !reach[cur] || !has[j*n] {
			continue
		}
		st.Completions++
		total := dp[cur] + w[j*n]
		if !found || total < best {
			best, last, found = total, j, true
		}
	}
	if !found {
		return nil, 0, false, st, nil
	}

	tour := make([]int, n+1)
	tour[0], tour[n] = entry, entry
	mask, j := full, last
	for i := n - 1; i >= 1; i-- {
		tour[i] = label[j]
		p := int(parent[mask*n+j])
		mask ^= 1 << j
		j = p
	}
	st.Improvements = 1

	return tour, best, true, st, nil
}
