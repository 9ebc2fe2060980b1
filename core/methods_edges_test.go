package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/core"
)

func TestConnect_CreatesSymmetricPair(t *testing.T) {
	g := core.NewGraph()
	fwd, rev, err := g.Connect(NodeA, NodeB, WeightNeg)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())

	ef, err := g.Edge(fwd)
	require.NoError(t, err)
	er, err := g.Edge(rev)
	require.NoError(t, err)

	assert.Equal(t, core.EdgeInfo{ID: 1, From: NodeA, To: NodeB, Weight: WeightNeg}, ef)
	assert.Equal(t, core.EdgeInfo{ID: 2, From: NodeB, To: NodeA, Weight: WeightNeg}, er)
	require.NoError(t, g.CheckSymmetry())
}

func TestConnect_EmptyID(t *testing.T) {
	g := core.NewGraph()
	_, _, err := g.Connect(NodeA, NodeEmpty, Weight1)
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
	assert.Zero(t, g.NodeCount(), "no node may be created on rejected input")
	assert.Zero(t, g.EdgeCount())
}

func TestConnect_ArrivalOrderPreserved(t *testing.T) {
	g := core.NewGraph()
	mustConnect(t, g, NodeA, NodeD, Weight1)
	mustConnect(t, g, NodeA, NodeB, Weight2)
	mustConnect(t, g, NodeC, NodeA, Weight3)

	edges, err := g.Edges(NodeA)
	require.NoError(t, err)
	assert.Equal(t, []string{NodeD, NodeB, NodeC}, targets(edges), "edges are not sorted")

	_, err = g.Edges(NodeX)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestConnect_ParallelAndSelfLoop(t *testing.T) {
	g := core.NewGraph()
	mustConnect(t, g, NodeA, NodeB, Weight1)
	mustConnect(t, g, NodeA, NodeB, Weight3)
	mustConnect(t, g, NodeA, NodeA, Weight2)

	assert.Equal(t, 6, g.EdgeCount())
	edges, err := g.Edges(NodeA)
	require.NoError(t, err)
	assert.Equal(t, []string{NodeB, NodeB, NodeA, NodeA}, targets(edges))
	require.NoError(t, g.CheckSymmetry())
}

func TestEdgeIDs_Monotonic(t *testing.T) {
	g := buildTriangle(t)
	var last uint64
	for _, id := range g.Nodes() {
		edges, err := g.Edges(id)
		require.NoError(t, err)
		for _, e := range edges {
			assert.NotZero(t, e.ID)
			assert.LessOrEqual(t, e.ID, uint64(g.EdgeCount()))
		}
	}
	for i := 0; i < g.EdgeCount(); i++ {
		e, err := g.Edge(i)
		require.NoError(t, err)
		assert.Greater(t, e.ID, last)
		last = e.ID
	}
	_, err := g.Edge(g.EdgeCount())
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestSymmetry_EveryEdgeHasOneMirror(t *testing.T) {
	g := buildTriangle(t)
	mustConnect(t, g, NodeB, NodeD, WeightNeg)
	mustConnect(t, g, NodeB, NodeD, WeightNeg)

	// Count (from,to,weight) triples; each must be matched by its reverse.
	type key struct {
		from, to string
		w        int64
	}
	counts := map[key]int{}
	for _, id := range g.Nodes() {
		edges, err := g.Edges(id)
		require.NoError(t, err)
		for _, e := range edges {
			counts[key{e.From, e.To, e.Weight}]++
		}
	}
	for k, n := range counts {
		assert.Equal(t, n, counts[key{k.to, k.from, k.w}], "edge %v lacks a mirror", k)
	}
	require.NoError(t, g.CheckSymmetry())
}

func TestDescribe(t *testing.T) {
	g := buildTriangle(t)
	got, err := g.Describe(NodeA)
	require.NoError(t, err)
	assert.Equal(t, "Node A: B-1 C-3", got)

	_, err = g.Describe(NodeX)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}
