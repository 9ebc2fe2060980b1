// Package core provides the node registry and graph model of a tour instance.
//
// A Graph is logically undirected: Connect(a, b, w) stores the directed pair
// a→b and b→a with identical weight. Nodes are created lazily by ID, the first
// node ever created is the entry node of every tour, and the registry is kept
// as a chain in ascending ID order.
//
// Storage:
//
//   - Node arena ([]Node) and edge arena ([]Edge), cross-referenced by index.
//   - Each node keeps its outgoing edge indices in arrival order.
//   - Edge IDs come from a per-graph counter ("1", "2", ...) and are diagnostic.
//
// Lifecycle:
//
//	g := core.NewGraph()
//	g.Connect("A", "B", 1)   // creates A (entry) and B
//	g.Connect("B", "C", 2)
//	s := g.Snapshot()        // immutable view handed to the search
//
// The graph is append-only: there is no removal and no weight mutation.
// Searches never touch the Graph directly; they read a Snapshot, which is
// safe to share across goroutines without locking.
//
// Core Methods:
//
//	GetOrCreate(id string) (int, error)          // O(V) on insert, O(1) on hit
//	Connect(a, b string, w int64) (int, int, error)
//	Lookup(id) / HasNode(id) / Entry()
//	Nodes() []string                             // ascending
//	Edges(id) ([]EdgeInfo, error)                // arrival order
//	Describe(id) (string, error)                 // "Node A: B-1 C-3"
//	CheckSymmetry() error
//	Snapshot() *Snapshot
//
// Errors:
//
//	ErrEmptyNodeID     – zero-length node ID
//	ErrNodeNotFound    – missing node
//	ErrEdgeNotFound    – edge index out of range
//	ErrAsymmetricEdge  – mirror invariant broken
package core
