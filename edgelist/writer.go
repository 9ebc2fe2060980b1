// SPDX-License-Identifier: MIT
// Package edgelist - writer.

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/katalvlaran/salesman/core"
)

// Encode writes every undirected edge of s once, in creation order, as
// <id>;<weight>;<id> lines. For a graph built only through Connect, reading
// the output back into an empty graph rebuilds the same entry node and the
// same adjacency order.
//
// Nodes without edges cannot be expressed and are dropped; every ID must be
// a single character (ErrNotEncodable).
func Encode(w io.Writer, s *core.Snapshot) error {
	if s == nil {
		return ErrNilSnapshot
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for ei := 0; ei < s.EdgeCount(); ei++ {
		e := s.Edge(ei)
		if e.Reverse < ei {
			continue // mirror of an edge already written
		}
		a, b := s.ID(e.From), s.ID(e.To)
		if !encodable(a) || !encodable(b) {
			return fmt.Errorf("edgelist: encode %q–%q: %w", a, b, ErrNotEncodable)
		}
		buf = buf[:0]
		buf = append(buf, a...)
		buf = append(buf, sep)
		buf = strconv.AppendInt(buf, e.Weight, 10)
		buf = append(buf, sep)
		buf = append(buf, b...)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}

// encodable reports whether id is a single valid id rune.
func encodable(id string) bool {
	r, size := utf8.DecodeRuneInString(id)

	return size == len(id) && validID(r, size)
}
