// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge construction & queries: Connect/Edges/EdgeCount/Describe/CheckSymmetry.
// Determinism:
//   - Edges(id) returns edges in arrival order (tail-append).
//   - Edge IDs are consecutive; Connect always takes two (forward, reverse).
// Concurrency:
//   - Connect under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// EdgeInfo is a read-only description of one stored edge.
type EdgeInfo struct {
	ID     uint64
	From   string
	To     string
	Weight int64
}

// Connect links a and b with weight w.
//
// Both endpoints are resolved via GetOrCreate (a is created first), then one
// directed edge is tail-appended to each endpoint's list: a→b, then b→a.
// Self-loops and parallel edges are retained; w is stored unvalidated.
//
// Returns the arena indices of the forward and reverse edges.
// Complexity: O(V) worst case (new nodes), O(1) amortized otherwise.
func (g *Graph) Connect(a, b string, w int64) (int, int, error) {
	if a == "" || b == "" {
		return NoNode, NoNode, ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	ia := g.getOrCreateLocked(a)
	ib := g.getOrCreateLocked(b)

	fwd := len(g.edges)
	rev := fwd + 1
	g.nextEdgeID++
	g.edges = append(g.edges, Edge{ID: g.nextEdgeID, Weight: w, From: ia, To: ib, Reverse: rev})
	g.nodes[ia].edges = append(g.nodes[ia].edges, fwd)
	g.nextEdgeID++
	g.edges = append(g.edges, Edge{ID: g.nextEdgeID, Weight: w, From: ib, To: ia, Reverse: fwd})
	g.nodes[ib].edges = append(g.nodes[ib].edges, rev)

	g.logger.Debug("edges added", "from", a, "to", b, "weight", w, "edges", len(g.edges))

	return fwd, rev, nil
}

// EdgeCount returns the number of stored directed edges (twice the number of
// Connect calls).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns the outgoing edges of id in arrival order.
// Complexity: O(deg(id))
func (g *Graph) Edges(id string) ([]EdgeInfo, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.index[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]EdgeInfo, 0, len(g.nodes[idx].edges))
	for _, ei := range g.nodes[idx].edges {
		out = append(out, g.infoLocked(ei))
	}

	return out, nil
}

// Edge returns the edge stored at arena index ei.
func (g *Graph) Edge(ei int) (EdgeInfo, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if ei < 0 || ei >= len(g.edges) {
		return EdgeInfo{}, ErrEdgeNotFound
	}

	return g.infoLocked(ei), nil
}

func (g *Graph) infoLocked(ei int) EdgeInfo {
	e := g.edges[ei]

	return EdgeInfo{ID: e.ID, From: g.nodes[e.From].ID, To: g.nodes[e.To].ID, Weight: e.Weight}
}

// Describe renders the edge list of id as "Node A: B-1 C-3".
func (g *Graph) Describe(id string) (string, error) {
	edges, err := g.Edges(id)
	if err != nil {
		return "", fmt.Errorf("core: describe %q: %w", id, err)
	}
	var sb strings.Builder
	sb.WriteString("Node ")
	sb.WriteString(id)
	sb.WriteByte(':')
	for _, e := range edges {
		sb.WriteByte(' ')
		sb.WriteString(e.To)
		sb.WriteByte('-')
		sb.WriteString(strconv.FormatInt(e.Weight, 10))
	}

	return sb.String(), nil
}

// CheckSymmetry verifies that every edge has exactly one mirror: the edge at
// Reverse must run the opposite way, carry the same weight, and point back.
// Complexity: O(E)
func (g *Graph) CheckSymmetry() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return checkSymmetry(g.edges)
}

func checkSymmetry(edges []Edge) error {
	for i, e := range edges {
		if e.Reverse < 0 || e.Reverse >= len(edges) || e.Reverse == i {
			return fmt.Errorf("edge %d: %w", e.ID, ErrAsymmetricEdge)
		}
		r := edges[e.Reverse]
		if r.From != e.To || r.To != e.From || r.Weight != e.Weight || r.Reverse != i {
			return fmt.Errorf("edge %d: %w", e.ID, ErrAsymmetricEdge)
		}
	}

	return nil
}
