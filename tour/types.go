// SPDX-License-Identifier: MIT
// Package tour — shared types, sentinels and enums.

package tour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors. Callers branch with errors.Is.
var (
	// ErrNilSnapshot is returned when Solve receives a nil snapshot.
	ErrNilSnapshot = errors.New("tour: snapshot is nil")

	// ErrEmptyGraph is returned when the graph has no nodes, so there is no
	// entry node to start from.
	ErrEmptyGraph = errors.New("tour: graph has no nodes")

	// ErrTimeLimit is returned when the configured time budget is exhausted.
	ErrTimeLimit = errors.New("tour: time limit exceeded")

	// ErrTooLarge is returned by the Held–Karp strategy above MaxHeldKarpNodes.
	ErrTooLarge = errors.New("tour: graph too large for strategy")

	// ErrUnsupportedStrategy indicates an unknown Strategy value.
	ErrUnsupportedStrategy = errors.New("tour: unsupported strategy")

	// ErrUnsupportedTieBreak indicates an unknown TieBreak value.
	ErrUnsupportedTieBreak = errors.New("tour: unsupported tie-break policy")

	// ErrInvalidOption indicates an out-of-range option (negative workers or time limit).
	ErrInvalidOption = errors.New("tour: invalid option")

	// ErrInvalidTour indicates a node sequence that is not a closed tour
	// through every node starting and ending at the entry node.
	ErrInvalidTour = errors.New("tour: invalid tour")

	// ErrMissingEdge indicates two consecutive tour nodes with no edge between them.
	ErrMissingEdge = errors.New("tour: missing edge between consecutive nodes")
)

// Strategy selects the search algorithm.
type Strategy int

const (
	// Exhaustive is the plain recursive backtracking search.
	Exhaustive Strategy = iota
	// BranchAndBound is Exhaustive plus admissible lower-bound pruning.
	BranchAndBound
	// HeldKarp is the bitmask dynamic program, used as an independent oracle.
	HeldKarp
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Exhaustive:
		return "exhaustive"
	case BranchAndBound:
		return "bnb"
	case HeldKarp:
		return "heldkarp"
	default:
		return "strategy(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseStrategy converts a name into a Strategy. Matching is case-insensitive
// and accepts "branch-and-bound" and "held-karp" as aliases.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exhaustive", "":
		return Exhaustive, nil
	case "bnb", "branch-and-bound":
		return BranchAndBound, nil
	case "heldkarp", "held-karp":
		return HeldKarp, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedStrategy)
	}
}

// TieBreak decides which of two equal-cost tours is reported.
//
// Both policies are defined over the depth-first enumeration order, in which
// edges are tried in insertion order at every level.
type TieBreak int

const (
	// TieLast reports the last minimal tour enumerated: at every level the
	// later-examined edge wins a tie.
	TieLast TieBreak = iota
	// TieFirst reports the first minimal tour enumerated.
	TieFirst
)

// String implements fmt.Stringer.
func (t TieBreak) String() string {
	switch t {
	case TieLast:
		return "last"
	case TieFirst:
		return "first"
	default:
		return "tiebreak(" + strconv.Itoa(int(t)) + ")"
	}
}

// ParseTieBreak converts "last" or "first" into a TieBreak.
func ParseTieBreak(name string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "last", "":
		return TieLast, nil
	case "first":
		return TieFirst, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedTieBreak)
	}
}

// Stats counts search events.
type Stats struct {
	// Admissions counts candidates accepted by the visit rule, closing steps included.
	Admissions uint64
	// Rejections counts candidates refused by the visit rule.
	Rejections uint64
	// Completions counts closed tours reached.
	Completions uint64
	// Prunes counts subtrees cut by the lower bound or the pre-check.
	Prunes uint64
	// Improvements counts completions accepted into the solution buffer.
	Improvements uint64
	// Elapsed is the wall time of the search.
	Elapsed time.Duration
}

func (s *Stats) add(o Stats) {
	s.Admissions += o.Admissions
	s.Rejections += o.Rejections
	s.Completions += o.Completions
	s.Prunes += o.Prunes
	s.Improvements += o.Improvements
}

// Result is the outcome of a search.
//
// When Found is false the graph has no Hamiltonian cycle through the entry
// node; that is a normal result, not an error.
type Result struct {
	// Found reports whether a closed tour exists.
	Found bool

	// Tour lists node IDs, starting and ending at the entry node.
	// For N nodes, len(Tour) == N+1.
	Tour []string

	// Cost is the total weight of Tour.
	Cost int64

	// Strategy is the algorithm that produced the result.
	Strategy Strategy

	// Stats holds search counters.
	Stats Stats
}

// String renders the result as "A B C A: 6", or "no tour" when none exists.
func (r Result) String() string {
	if !r.Found {
		return "no tour"
	}

	return strings.Join(r.Tour, " ") + ": " + strconv.FormatInt(r.Cost, 10)
}

// Observer receives search lifecycle events. Implementations must be safe for
// concurrent use: parallel searches report improvements from several workers.
type Observer interface {
	SearchStarted(strategy Strategy, nodes int)
	TourImproved(cost int64)
	SearchFinished(res Result, err error)
}
