// SPDX-License-Identifier: MIT
// Package tour — solution buffer.
//
// The buffer is a positional record: slots[d] is the node chosen at depth d
// of the best tour accepted so far, slots[0] == slots[n] == entry. It is owned
// by one search context (one per worker) and rewritten from the live path
// whenever the tie-break policy accepts a completion.

package tour

// solution records the best tour seen by one search context.
type solution struct {
	slots []int
	cost  int64
	found bool
}

// newSolution allocates a buffer for n nodes (n+1 slots).
func newSolution(n int) *solution {
	return &solution{slots: make([]int, n+1)}
}

// better reports whether a completion of cost total replaces the current one.
// TieLast accepts equal costs (the later completion wins); TieFirst does not.
func (s *solution) better(total int64, tie TieBreak) bool {
	if !s.found {
		return true
	}
	if tie == TieLast {
		return total <= s.cost
	}

	return total < s.cost
}

// record copies path (depths 0..n-1) and the closing entry into the slots.
func (s *solution) record(path []int, entry int, total int64) {
	copy(s.slots, path)
	s.slots[len(path)] = entry
	s.cost = total
	s.found = true
}

// merge folds other into s under the tie policy. other must come from a
// branch enumerated after every branch already merged into s.
func (s *solution) merge(other *solution, tie TieBreak) bool {
	if other == nil || !other.found || !s.better(other.cost, tie) {
		return false
	}
	copy(s.slots, other.slots)
	s.cost = other.cost
	s.found = true

	return true
}

// tour returns a copy of the slots.
func (s *solution) tour() []int {
	out := make([]int, len(s.slots))
	copy(out, s.slots)

	return out
}
