// SPDX-License-Identifier: MIT
package edgelist_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/builder"
	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/edgelist"
)

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithUniformWeight(-9, 9)},
		builder.Wheel(7))
	require.NoError(t, err)
	_, _, err = g.Connect("A", "A", 4)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, edgelist.Encode(&buf, g.Snapshot()))

	back := core.NewGraph()
	st, err := edgelist.Read(context.Background(), &buf, back)
	require.NoError(t, err)
	assert.Zero(t, st.Comments)
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())
	assert.Equal(t, g.Nodes(), back.Nodes())

	e1, _ := g.Entry()
	e2, _ := back.Entry()
	assert.Equal(t, e1, e2)
	for _, id := range g.Nodes() {
		want, err := g.Describe(id)
		require.NoError(t, err)
		got, err := back.Describe(id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestEncode_Errors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, edgelist.Encode(&bytes.Buffer{}, nil), edgelist.ErrNilSnapshot)

	g := core.NewGraph()
	_, _, err := g.Connect("AB", "C", 1)
	require.NoError(t, err)
	assert.ErrorIs(t, edgelist.Encode(&bytes.Buffer{}, g.Snapshot()), edgelist.ErrNotEncodable)
}
