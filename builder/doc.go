// Package builder provides deterministic graph constructors for tests,
// benchmarks and examples of the tour solver.
//
// A Constructor mutates a *core.Graph; BuildGraph creates a graph and applies
// constructors in order, Apply extends an existing one. Behaviour is tuned by
// functional options:
//
//   - ID schemes (IDFn): LetterIDFn (default, single rune: "A".."Z",
//     "a".."z", "0".."9", then U+0100...), DecimalIDFn, PrefixIDFn.
//   - Weights (WeightFn): DefaultWeightFn (constant 1), ConstantWeightFn,
//     UniformWeightFn (seeded), SequenceWeightFn.
//   - Randomness: WithSeed / WithRand.
//
// Topologies and their tours from the entry node idFn(0):
//
//   - Complete(n):            (n-1)! tours.
//   - Cycle(n):               2 tours.
//   - Path(n):                none for n ≥ 3.
//   - Star(n):                none for n ≥ 3.
//   - Wheel(n):               always solvable.
//   - CompleteBipartite(a,b): solvable iff a == b ≥ 2.
//   - Grid(r,c):              solvable iff r,c ≥ 2 and r*c even.
//   - RandomSparse(n,p):      G(n,p), seeded.
//
// Constructors never panic; they return sentinel errors (ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed) wrapped with
// the constructor name. Option constructors panic on meaningless input.
package builder
