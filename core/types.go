// SPDX-License-Identifier: MIT
// Package core defines the Graph, Node, and Edge types of a tour instance,
// and provides the registry and construction primitives used while an
// edge list is being read.
//
// Nodes and edges live in two arenas (slices) and refer to each other by
// integer index. A single sync.RWMutex guards both arenas, so a Graph may be
// fed from several goroutines; searches read from an immutable Snapshot.
//
// Errors:
//
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrNodeNotFound    - requested node does not exist.
//	ErrEdgeNotFound    - edge index outside the edge arena.
//	ErrAsymmetricEdge  - an edge lacks a matching reverse edge of equal weight.
package core

import (
	"errors"
	"log/slog"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an edge index outside the edge arena.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrAsymmetricEdge indicates a broken mirror: an edge whose reverse edge is
	// missing, points elsewhere, or carries a different weight.
	ErrAsymmetricEdge = errors.New("core: edge has no matching reverse edge")
)

// NoNode is the index used for "no node" (empty chain tail, unset entry).
const NoNode = -1

// Node is a registry entry.
//
// Edges holds indices into the edge arena in arrival order (never sorted).
// next is the index of the following node in the ascending-ID chain.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	edges []int
	next  int
}

// Degree reports the number of outgoing edge entries (a self-loop counts twice).
func (n *Node) Degree() int { return len(n.edges) }

// Edge is one directed half of an undirected connection.
//
// Every Connect call stores two Edges, From→To and To→From, with equal Weight;
// Reverse links each half to the other.
type Edge struct {
	// ID is a monotonically assigned identifier (1, 2, ...). Diagnostic only.
	ID uint64

	// Weight is the traversal cost. Any sign is accepted.
	Weight int64

	// From is the index of the owning node.
	From int

	// To is the index of the endpoint node.
	To int

	// Reverse is the index of the mirror edge.
	Reverse int
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithLogger routes node/edge creation traces to l at debug level.
// A nil logger keeps the default (discard).
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// Graph owns all nodes and edges of one instance.
//
// The node registry is an ascending-ID chain starting at head; index maps IDs
// to arena positions for O(1) lookups. entry is the first node ever created.
type Graph struct {
	mu     sync.RWMutex
	logger *slog.Logger

	nodes []Node
	edges []Edge

	index map[string]int
	head  int
	entry int

	nextEdgeID uint64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		logger: slog.New(slog.DiscardHandler),
		index:  make(map[string]int),
		head:   NoNode,
		entry:  NoNode,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
