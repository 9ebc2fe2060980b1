// Package dfs provides depth-first reachability over frozen tour graphs.
//
// The tour search uses it as a cheap feasibility pre-check: a Hamiltonian
// cycle through the entry node cannot exist when some node is unreachable
// from it.
package dfs
