package builder_test

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/salesman/builder"
)

// TestLetterIDFn checks the alphabet boundaries and the single-rune property.
func TestLetterIDFn(t *testing.T) {
	t.Parallel()

	cases := []struct {
		idx  int
		want string
	}{
		{0, "A"}, {25, "Z"}, {26, "a"}, {51, "z"}, {52, "0"}, {61, "9"},
		{builder.LetterIDCount, "Ā"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, builder.LetterIDFn(tc.idx), "idx=%d", tc.idx)
	}

	seen := make(map[string]bool)
	for i := 0; i < 300; i++ {
		id := builder.LetterIDFn(i)
		r, size := utf8.DecodeRuneInString(id)
		assert.Equal(t, len(id), size, "idx=%d must be a single rune", i)
		assert.False(t, unicode.IsSpace(r), "idx=%d", i)
		assert.NotEqual(t, ';', r, "idx=%d", i)
		assert.False(t, seen[id], "idx=%d duplicates %q", i, id)
		seen[id] = true
	}

	assert.Panics(t, func() { builder.LetterIDFn(-1) })
}

// TestOtherIDFns covers the multi-rune schemes.
func TestOtherIDFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", builder.DecimalIDFn(42))
	assert.Equal(t, "n7", builder.PrefixIDFn("n")(7))
}
