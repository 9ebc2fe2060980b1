// SPDX-License-Identifier: MIT
package edgelist_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/edgelist"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	valid := []struct {
		line string
		a, b string
		w    int64
	}{
		{"A;1;B", "A", "B", 1},
		{"A;-42;B", "A", "B", -42},
		{"A;+7;B", "A", "B", 7},
		{"x;0;x", "x", "x", 0},
		{"A;3;B\r", "A", "B", 3},
		{"A;3;B\n", "A", "B", 3},
		{"Ж;9223372036854775807;z", "Ж", "z", 9223372036854775807},
		{"1;-9223372036854775808;2", "1", "2", -9223372036854775808},
	}
	for _, tc := range valid {
		a, b, w, ok := edgelist.ParseLine(tc.line)
		require.True(t, ok, "%q", tc.line)
		assert.Equal(t, tc.a, a, "%q", tc.line)
		assert.Equal(t, tc.b, b, "%q", tc.line)
		assert.Equal(t, tc.w, w, "%q", tc.line)
	}

	comments := []string{
		"",
		"# A;1;B",
		"AB;1;C",
		"A;1;BC",
		"A;;B",
		"A;x;B",
		"A;1.5;B",
		"A;1;",
		";1;B",
		"A;1;;",
		" ;1;B",
		"A;1; ",
		"A;1;B ",
		"A; 1;B",
		"A;1;B;C",
		"A,1,B",
		"A;9223372036854775808;B",
		"\xff;1;B",
	}
	for _, line := range comments {
		_, _, _, ok := edgelist.ParseLine(line)
		assert.False(t, ok, "%q must be a comment", line)
	}
}

func TestRead_CommentsAndEdges(t *testing.T) {
	t.Parallel()
	in := strings.Join([]string{
		"# courier network",
		"A;1;B",
		"",
		"B;2;C\r",
		"not an edge",
		"C;3;A",
	}, "\n")

	g := core.NewGraph()
	st, err := edgelist.Read(context.Background(), strings.NewReader(in), g)
	require.NoError(t, err)
	assert.Equal(t, edgelist.Stats{Lines: 6, Edges: 3, Comments: 3}, st)
	assert.Equal(t, []string{"A", "B", "C"}, g.Nodes())
	assert.Equal(t, 6, g.EdgeCount())
	entry, _ := g.Entry()
	assert.Equal(t, "A", entry)
}

func TestRead_EntryFollowsFileOrder(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	_, err := edgelist.Read(context.Background(), strings.NewReader("Q;5;B\nB;1;A\n"), g)
	require.NoError(t, err)
	entry, _ := g.Entry()
	assert.Equal(t, "Q", entry)
}

// failingSink rejects every edge after the first.
type failingSink struct{ calls int }

var errSink = errors.New("sink full")

func (f *failingSink) Connect(a, b string, w int64) (int, int, error) {
	f.calls++
	if f.calls > 1 {
		return 0, 0, errSink
	}

	return 0, 1, nil
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := edgelist.Read(ctx, nil, core.NewGraph())
	assert.ErrorIs(t, err, edgelist.ErrNilReader)

	_, err = edgelist.Read(ctx, strings.NewReader(""), nil)
	assert.ErrorIs(t, err, edgelist.ErrNilSink)

	st, err := edgelist.Read(ctx, strings.NewReader("# x\nA;1;B\nB;1;C\n"), &failingSink{})
	require.ErrorIs(t, err, errSink)
	assert.Contains(t, err.Error(), "line 3")
	assert.Equal(t, 1, st.Edges)

	_, err = edgelist.Read(ctx, iotest.ErrReader(errors.New("disk gone")), core.NewGraph())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "edgelist: read: disk gone")

	long := strings.Repeat("#", 200) + "\nA;1;B\n"
	_, err = edgelist.Read(ctx, strings.NewReader(long), core.NewGraph(), edgelist.WithMaxLineBytes(64))
	assert.Error(t, err, "lines beyond the bound are read errors")

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = edgelist.Read(cctx, strings.NewReader("A;1;B\n"), core.NewGraph())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRead_EmptyInput(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	st, err := edgelist.Read(context.Background(), bytes.NewReader(nil), g)
	require.NoError(t, err)
	assert.Zero(t, st.Lines)
	assert.Zero(t, g.NodeCount())
}
