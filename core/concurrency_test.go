// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/core"
)

// TestConcurrentConnect ensures concurrent Connect calls keep every invariant:
// one node per ID, ascending registry, symmetric edges.
func TestConcurrentConnect(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	errs := make(chan error, NConcurrentConnects)
	wg.Add(NConcurrentConnects)
	for i := 0; i < NConcurrentConnects; i++ {
		go func(id int) {
			defer wg.Done()
			_, _, err := g.Connect("X", fmt.Sprintf("V%03d", id%40), int64(id))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Equal(t, 41, g.NodeCount())
	require.Equal(t, 2*NConcurrentConnects, g.EdgeCount())
	require.True(t, slices.IsSorted(g.Nodes()))
	require.NoError(t, g.CheckSymmetry())
	deg, err := g.Degree("X")
	require.NoError(t, err)
	require.Equal(t, NConcurrentConnects, deg)
}

// TestConcurrentReaders runs snapshots and queries while writers append.
func TestConcurrentReaders(t *testing.T) {
	g := buildTriangle(t)
	var wg sync.WaitGroup
	wg.Add(2 * NReaders)
	for i := 0; i < NReaders; i++ {
		go func(id int) {
			defer wg.Done()
			_, _, _ = g.Connect(NodeA, fmt.Sprintf("R%02d", id), 1)
		}(i)
		go func() {
			defer wg.Done()
			s := g.Snapshot()
			_ = s.CheckSymmetry()
			_ = g.Nodes()
		}()
	}
	wg.Wait()
	require.NoError(t, g.CheckSymmetry())
	require.Equal(t, 3+NReaders, g.NodeCount())
}
