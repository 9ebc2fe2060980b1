// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// Node ID schemes for graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node identifier from its zero-based index.
// It must be pure and deterministic.
type IDFn func(idx int) string

// letterAlphabet lists the first LetterIDCount single-rune IDs.
const letterAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// LetterIDCount is the number of ASCII IDs produced by LetterIDFn before it
// moves on to Latin Extended-A runes.
const LetterIDCount = len(letterAlphabet)

// extendedBase is the first rune used once the ASCII alphabet is exhausted.
const extendedBase = 0x0100

// LetterIDFn returns a single-rune ID: 0→"A", 25→"Z", 26→"a", 52→"0",
// 61→"9", then U+0100, U+0101, ... Every ID it produces is a valid node token
// of the edge-list format (one rune, not ';', not whitespace).
// Panics if idx < 0.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterIDFn: idx must be ≥ 0, got %d", idx))
	}
	if idx < LetterIDCount {
		return letterAlphabet[idx : idx+1]
	}

	return string(rune(extendedBase + idx - LetterIDCount))
}

// DecimalIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Multi-rune IDs are fine for the in-memory graph but cannot be written to
// the edge-list format.
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithLetterIDs sets the ID scheme to LetterIDFn (the default).
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}

// WithDecimalIDs sets the ID scheme to DecimalIDFn.
func WithDecimalIDs() BuilderOption {
	return WithIDScheme(DecimalIDFn)
}

// WithPrefixIDs sets the ID scheme to PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}
