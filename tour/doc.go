// Package tour finds exact minimum-cost closed tours (Hamiltonian cycles)
// over a frozen core.Snapshot.
//
// A tour starts at the entry node (the first node ever created in the
// graph), visits every other node exactly once, and returns to the entry.
// The search is a recursive backtracking over simple paths:
//
//   - Visit rule: while the path holds fewer than N nodes a candidate is
//     admitted only if it is not already on the path; once the path holds N
//     nodes only the entry node is admitted, which closes the tour.
//   - Each admitted node recurses into its edges in insertion order, keeping
//     the cheapest completion found below it.
//   - Unsolvable graphs produce Result{Found: false} and a nil error.
//
// Strategies:
//
//   - Exhaustive      — the plain search. Complexity: number of simple paths
//     from the entry ((N−1)! tours on a complete graph).
//   - BranchAndBound  — the same search with an admissible lower bound
//     (cost so far + cheapest outgoing edge of every node still to leave).
//     Reports the same tour as Exhaustive.
//   - HeldKarp        — O(N²·2ᴺ) dynamic program, N ≤ MaxHeldKarpNodes; an
//     independent oracle for the optimal cost.
//
// Ties between equal-cost tours follow Options.TieBreak: TieLast (default)
// reports the last minimal tour in enumeration order, TieFirst the first.
//
// Parallel search (WithWorkers(n), n > 1) fans the entry node's edges out to
// an errgroup; each worker owns its path and solution buffer and results are
// merged in edge order, so the reported tour does not depend on scheduling.
//
// Negative weights are accepted and summed like any other weight.
package tour
