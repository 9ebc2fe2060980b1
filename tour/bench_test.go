package tour_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/salesman/builder"
	"github.com/katalvlaran/salesman/tour"
)

// BenchmarkSolve compares strategies on a seeded K9 (8! = 40320 tours).
func BenchmarkSolve(b *testing.B) {
	s := build(b, []builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 100)}, builder.Complete(9))

	cases := []struct {
		strategy tour.Strategy
		workers  int
	}{
		{tour.Exhaustive, 1},
		{tour.Exhaustive, 4},
		{tour.BranchAndBound, 1},
		{tour.BranchAndBound, 4},
		{tour.HeldKarp, 1},
	}
	for _, tc := range cases {
		b.Run(fmt.Sprintf("%s/w%d", tc.strategy, tc.workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := tour.Solve(context.Background(), s,
					tour.WithStrategy(tc.strategy), tour.WithWorkers(tc.workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSolve_Pendant measures the pre-check on K8 plus a pendant node:
// no tour exists, but the plain search only learns that after every path.
func BenchmarkSolve_Pendant(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(8))
	if err != nil {
		b.Fatal(err)
	}
	if _, _, err = g.Connect("A", "Z", 1); err != nil {
		b.Fatal(err)
	}
	s := g.Snapshot()

	for _, pre := range []bool{false, true} {
		b.Run(fmt.Sprintf("precheck=%t", pre), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = tour.Solve(context.Background(), s, tour.WithPrecheck(pre))
			}
		})
	}
}
