// SPDX-License-Identifier: MIT
// Package tour_test - shared fixtures and a brute-force oracle.

package tour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/builder"
	"github.com/katalvlaran/salesman/core"
)

// edge is one undirected input line "a;w;b".
type edge struct {
	a, b string
	w    int64
}

// triangle is A;1;B, B;2;C, C;3;A.
var triangle = []edge{{"A", "B", 1}, {"B", "C", 2}, {"C", "A", 3}}

// graphOf builds a graph from edges in order.
func graphOf(t testing.TB, edges ...edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, _, err := g.Connect(e.a, e.b, e.w)
		require.NoError(t, err)
	}

	return g
}

// build runs builder constructors with the given options.
func build(t testing.TB, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Snapshot {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)

	return g.Snapshot()
}

// randomGraph builds a seeded G(n,p) with weights in [lo,hi].
func randomGraph(t testing.TB, seed int64, n int, p float64, lo, hi int64) *core.Snapshot {
	t.Helper()

	return build(t,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(lo, hi)},
		builder.RandomSparse(n, p))
}

// oracle enumerates every ordering of the non-entry nodes and prices it with
// the cheapest edge per hop. It is independent of the package under test.
func oracle(s *core.Snapshot) (int64, bool) {
	n := s.N()
	entry := s.Entry()
	hop := func(u, v int) (int64, bool) {
		var (
			best int64
			ok   bool
		)
		for _, ei := range s.Out(u) {
			e := s.Edge(ei)
			if e.To == v && (!ok || e.Weight < best) {
				best, ok = e.Weight, true
			}
		}

		return best, ok
	}
	if n == 1 {
		return hop(entry, entry)
	}

	rest := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != entry {
			rest = append(rest, v)
		}
	}

	var (
		best  int64
		found bool
	)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			prev, total := entry, int64(0)
			for _, v := range append(rest, entry) {
				c, ok := hop(prev, v)
				if !ok {
					return
				}
				total += c
				prev = v
			}
			if !found || total < best {
				best, found = total, true
			}

			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best, found
}

// factorial returns n! for small n.
func factorial(n int) uint64 {
	f := uint64(1)
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}

	return f
}
