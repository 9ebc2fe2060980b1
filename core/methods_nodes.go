// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node registry: GetOrCreate/Lookup/HasNode/Nodes/NodeCount/Entry.
// Determinism:
//   - Nodes() walks the ascending-ID chain, so output is sorted.
//   - The entry node is fixed by the first GetOrCreate and never changes.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

// GetOrCreate returns the arena index of node id, creating it when missing.
//
// Steps:
//  1. Validate the ID.
//  2. Return the existing index if id is registered (idempotent).
//  3. Otherwise append a node to the arena, link it into the ascending chain
//     by a linear scan from the head, and fix it as entry if it is the first.
//
// Complexity: O(1) for existing nodes, O(V) for new ones (chain scan).
func (g *Graph) GetOrCreate(id string) (int, error) {
	if id == "" {
		return NoNode, ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.getOrCreateLocked(id), nil
}

// getOrCreateLocked is GetOrCreate without validation; callers hold mu.
func (g *Graph) getOrCreateLocked(id string) int {
	if idx, ok := g.index[id]; ok {
		return idx
	}

	idx := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, next: NoNode})
	g.index[id] = idx
	g.link(idx)
	if g.entry == NoNode {
		g.entry = idx
		g.logger.Debug("entry node fixed", "id", id)
	}
	g.logger.Debug("node created", "id", id, "nodes", len(g.nodes))

	return idx
}

// link inserts node idx into the ascending chain. The ID is known to be absent.
func (g *Graph) link(idx int) {
	id := g.nodes[idx].ID
	if g.head == NoNode || id < g.nodes[g.head].ID {
		g.nodes[idx].next = g.head
		g.head = idx

		return
	}
	cur := g.head
	for next := g.nodes[cur].next; next != NoNode && g.nodes[next].ID < id; next = g.nodes[cur].next {
		cur = next
	}
	g.nodes[idx].next = g.nodes[cur].next
	g.nodes[cur].next = idx
}

// Lookup returns the arena index of id and whether it exists.
// Complexity: O(1)
func (g *Graph) Lookup(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.index[id]

	return idx, ok
}

// HasNode reports whether id is registered.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.Lookup(id)

	return ok
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Entry returns the ID of the entry node, or false on an empty graph.
func (g *Graph) Entry() (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.entry == NoNode {
		return "", false
	}

	return g.nodes[g.entry].ID, true
}

// Node returns the ID stored at arena index idx.
func (g *Graph) Node(idx int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.nodes) {
		return "", ErrNodeNotFound
	}

	return g.nodes[idx].ID, nil
}

// Nodes returns all node IDs in ascending order by walking the chain.
// Complexity: O(V)
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.nodes))
	for cur := g.head; cur != NoNode; cur = g.nodes[cur].next {
		out = append(out, g.nodes[cur].ID)
	}

	return out
}

// Degree returns the number of outgoing edge entries of id.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.index[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return g.nodes[idx].Degree(), nil
}
