// SPDX-License-Identifier: MIT
// Package tour — tour validation and costing.
//
// ValidateTour enforces the structural invariants of a closed tour;
// TourCost prices a node sequence against the graph. Both accept node IDs so
// that callers can check results and hand-written tours alike.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - Sentinel errors only (wrapped with the offending position).

package tour

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

// ValidateTour checks that tour has N+1 entries, starts and ends at the
// entry node, and lists every node exactly once in tour[0:N].
//
// Complexity: O(N) time and space.
func ValidateTour(s *core.Snapshot, tour []string) error {
	_, err := tourIndices(s, tour)

	return err
}

// TourCost sums, for each consecutive pair of tour, the cheapest edge between
// them. It does not require tour to be a valid closed tour.
//
// Complexity: O(Σ deg) over the tour's nodes.
func TourCost(s *core.Snapshot, tour []string) (int64, error) {
	if s == nil {
		return 0, ErrNilSnapshot
	}
	idx := make([]int, len(tour))
	for i, id := range tour {
		v, ok := s.Index(id)
		if !ok {
			return 0, fmt.Errorf("position %d: unknown node %q: %w", i, id, ErrInvalidTour)
		}
		idx[i] = v
	}

	return costOf(s, idx)
}

// tourIndices validates tour and converts it to node indices.
func tourIndices(s *core.Snapshot, tour []string) ([]int, error) {
	if s == nil {
		return nil, ErrNilSnapshot
	}
	n := s.N()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if len(tour) != n+1 {
		return nil, fmt.Errorf("length %d, want %d: %w", len(tour), n+1, ErrInvalidTour)
	}
	entry := s.ID(s.Entry())
	if tour[0] != entry || tour[n] != entry {
		return nil, fmt.Errorf("must start and end at entry %q: %w", entry, ErrInvalidTour)
	}

	idx := make([]int, n+1)
	seen := make([]bool, n)
	for i, id := range tour {
		v, ok := s.Index(id)
		if !ok {
			return nil, fmt.Errorf("position %d: unknown node %q: %w", i, id, ErrInvalidTour)
		}
		if i < n {
			if seen[v] {
				return nil, fmt.Errorf("position %d: node %q repeated: %w", i, id, ErrInvalidTour)
			}
			seen[v] = true
		}
		idx[i] = v
	}

	return idx, nil
}

// costOf prices a sequence of node indices.
func costOf(s *core.Snapshot, idx []int) (int64, error) {
	var total int64
	for i := 0; i+1 < len(idx); i++ {
		c, ok := hopCost(s, idx[i], idx[i+1])
		if !ok {
			return 0, fmt.Errorf("%q→%q: %w", s.ID(idx[i]), s.ID(idx[i+1]), ErrMissingEdge)
		}
		total += c
	}

	return total, nil
}

// hopCost returns the cheapest edge weight u→v.
func hopCost(s *core.Snapshot, u, v int) (int64, bool) {
	var (
		best  int64
		found bool
	)
	for _, ei := range s.Out(u) {
		ed := s.Edge(ei)
		if ed.To != v {
			continue
		}
		if !found || ed.Weight < best {
			best, found = ed.Weight, true
		}
	}

	return best, found
}
