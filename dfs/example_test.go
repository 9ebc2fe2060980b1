package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/dfs"
)

// ExampleWalk walks a diamond-shaped graph from its entry node.
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
//
// Edges are followed in arrival order, so the walk goes deep through B
// before it ever looks at A's second edge.
func ExampleWalk() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"}} {
		_, _, _ = g.Connect(e[0], e[1], 1)
	}
	s := g.Snapshot()

	res, err := dfs.Walk(s, s.Entry())
	if err != nil {
		fmt.Println(err)
		return
	}
	ids := make([]string, 0, res.Count())
	for _, v := range res.Order {
		ids = append(ids, s.ID(v))
	}
	fmt.Println(strings.Join(ids, " "))

	c, _ := s.Index("C")
	fmt.Println("parent of C:", s.ID(res.Parent[c]))
	// Output:
	// A B D C E F
	// parent of C: D
}

// ExampleReachable shows the check the tour pre-check relies on.
func ExampleReachable() {
	g := core.NewGraph()
	_, _, _ = g.Connect("A", "B", 1)
	_, _, _ = g.Connect("C", "D", 1)
	s := g.Snapshot()

	ok, err := dfs.Reachable(s, s.Entry())
	fmt.Println(ok, err)
	// Output:
	// false <nil>
}
