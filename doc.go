// Package salesman finds exact minimum-cost closed tours over small
// weighted graphs: start at the entry node, visit every other node once,
// return, and pay as little as possible.
//
// 🚀 What is in the box?
//
//	• core:     arena graph with symmetric edges and a frozen Snapshot
//	• edgelist: reader and writer for the "<id>;<weight>;<id>" text format
//	• tour:     recursive backtracking, branch-and-bound, parallel fan-out,
//	            Held–Karp oracle, tour validation
//	• dfs:      reachability walk used by the tour pre-check
//	• builder:  deterministic graph generators for tests and benchmarks
//	• metrics:  Prometheus observer for searches
//	• config:   YAML solver and logging settings
//
// ✨ Guarantees
//
//   - Exact: every strategy returns the true minimum, or reports that no
//     closed tour exists.
//   - Deterministic: ties resolve by a documented rule over edge arrival
//     order, identically for sequential, pruned and parallel searches.
//   - Negative weights are summed like any other.
//
// The search is exponential; it is meant for graphs of a dozen or so nodes.
//
// Quick ASCII example:
//
//	    A──1──B
//	     \   /
//	      3 2
//	       C
//
//	tour: A C B A, cost 6.
//
//	go install github.com/katalvlaran/salesman/cmd/salesman@latest
package salesman
