// SPDX-License-Identifier: MIT
// Package edgelist - line parser and reader.

package edgelist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// sep separates the three fields of a data line.
const sep = ';'

// initialLineBytes is the scanner's starting buffer.
const initialLineBytes = 4096

// ParseLine parses one data line. ok is false for anything that is not
// exactly <id>;<weight>;<id>.
func ParseLine(line string) (a, b string, w int64, ok bool) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	a, rest, ok := cutID(line)
	if !ok || rest == "" || rest[0] != sep {
		return "", "", 0, false
	}
	rest = rest[1:]

	i := strings.LastIndexByte(rest, sep)
	if i < 0 {
		return "", "", 0, false
	}
	w, err := strconv.ParseInt(rest[:i], 10, 64)
	if err != nil {
		return "", "", 0, false
	}
	b, tail, ok := cutID(rest[i+1:])
	if !ok || tail != "" {
		return "", "", 0, false
	}

	return a, b, w, true
}

// cutID splits a leading single-rune id off s.
func cutID(s string) (id, rest string, ok bool) {
	r, size := utf8.DecodeRuneInString(s)
	if !validID(r, size) {
		return "", s, false
	}

	return s[:size], s[size:], true
}

// validID reports whether r (of encoded length size) can be a node id.
func validID(r rune, size int) bool {
	if size == 0 || (r == utf8.RuneError && size == 1) {
		return false
	}

	return r != sep && !unicode.IsSpace(r)
}

// Read parses r line by line and connects every edge into sink.
//
// Comment lines are counted and skipped. The context is checked between
// lines. Errors from r are wrapped as "edgelist: read: ..."; errors from
// sink are wrapped with the line number.
func Read(ctx context.Context, r io.Reader, sink Sink, opts ...Option) (Stats, error) {
	var st Stats
	if r == nil {
		return st, ErrNilReader
	}
	if sink == nil {
		return st, ErrNilSink
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(initialLineBytes, o.MaxLineBytes)), o.MaxLineBytes)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		st.Lines++
		line := sc.Text()

		a, b, w, ok := ParseLine(line)
		if !ok {
			st.Comments++
			o.Logger.Debug("comment line skipped", "line", st.Lines, "text", line)

			continue
		}
		if _, _, err := sink.Connect(a, b, w); err != nil {
			return st, fmt.Errorf("edgelist: line %d: %w", st.Lines, err)
		}
		st.Edges++
		o.Logger.Debug("edge read", "line", st.Lines, "from", a, "to", b, "weight", w)
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("edgelist: read: %w", err)
	}

	return st, nil
}
