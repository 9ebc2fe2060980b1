// SPDX-License-Identifier: MIT
// File: view.go
// Role: Frozen, lock-free read view of a Graph for searches.
// Determinism:
//   - Order() is the ascending-ID chain; Out(v) is arrival order.
// Concurrency:
//   - Snapshot() takes the read lock once; the result never changes and may be
//     shared by any number of goroutines.

package core

// Snapshot is an immutable copy of a Graph's arenas.
//
// Node indices and edge indices are the same as in the source Graph at the
// time of the snapshot. Slices returned by Out must not be modified.
type Snapshot struct {
	ids   []string
	out   [][]int
	edges []Edge
	order []int
	index map[string]int
	entry int
}

// Snapshot freezes the current graph state.
// Complexity: O(V + E)
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.nodes)
	s := &Snapshot{
		ids:   make([]string, n),
		out:   make([][]int, n),
		edges: make([]Edge, len(g.edges)),
		order: make([]int, 0, n),
		index: make(map[string]int, n),
		entry: g.entry,
	}
	copy(s.edges, g.edges)
	for i := range g.nodes {
		s.ids[i] = g.nodes[i].ID
		s.out[i] = append([]int(nil), g.nodes[i].edges...)
		s.index[g.nodes[i].ID] = i
	}
	for cur := g.head; cur != NoNode; cur = g.nodes[cur].next {
		s.order = append(s.order, cur)
	}

	return s
}

// N returns the number of nodes.
func (s *Snapshot) N() int { return len(s.ids) }

// Entry returns the entry node index (NoNode when empty).
func (s *Snapshot) Entry() int { return s.entry }

// ID returns the identifier of node v.
func (s *Snapshot) ID(v int) string { return s.ids[v] }

// Index returns the node index of id.
func (s *Snapshot) Index(id string) (int, bool) {
	v, ok := s.index[id]

	return v, ok
}

// Out returns the outgoing edge indices of v in arrival order.
func (s *Snapshot) Out(v int) []int { return s.out[v] }

// Edge returns the edge at index e.
func (s *Snapshot) Edge(e int) Edge { return s.edges[e] }

// EdgeCount returns the number of directed edges.
func (s *Snapshot) EdgeCount() int { return len(s.edges) }

// Order returns node indices in ascending-ID order.
func (s *Snapshot) Order() []int { return s.order }

// CheckSymmetry verifies the mirror invariant on the frozen edges.
func (s *Snapshot) CheckSymmetry() error { return checkSymmetry(s.edges) }
