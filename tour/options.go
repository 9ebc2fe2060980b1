// SPDX-License-Identifier: MIT
// Package tour — functional options.

package tour

import (
	"log/slog"
	"time"
)

// Options holds the resolved configuration of one Solve call.
type Options struct {
	// Strategy selects the algorithm. Default: Exhaustive.
	Strategy Strategy

	// TieBreak selects which equal-cost tour is reported. Default: TieLast.
	TieBreak TieBreak

	// Workers > 1 fans the entry node's edges out to that many goroutines.
	// 0 and 1 run sequentially. Ignored by HeldKarp.
	Workers int

	// Precheck rejects graphs that cannot hold a tour (unreachable nodes,
	// nodes with fewer than two distinct neighbors) before searching.
	Precheck bool

	// TimeLimit bounds the search wall time. 0 means unlimited.
	TimeLimit time.Duration

	// Observer, if non-nil, receives lifecycle events.
	Observer Observer

	// Logger receives debug traces. Default: discard.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the literal configuration: sequential exhaustive
// search, last-wins ties, no pre-check, no time limit.
func DefaultOptions() Options {
	return Options{
		Strategy: Exhaustive,
		TieBreak: TieLast,
		Workers:  1,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// WithStrategy selects the algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithTieBreak selects the tie-break policy.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) { o.TieBreak = t }
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithPrecheck enables or disables the feasibility pre-check.
func WithPrecheck(on bool) Option {
	return func(o *Options) { o.Precheck = on }
}

// WithTimeLimit bounds the search wall time.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithObserver installs a lifecycle observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// validate checks option ranges and enum values.
func (o Options) validate() error {
	switch o.Strategy {
	case Exhaustive, BranchAndBound, HeldKarp:
	default:
		return ErrUnsupportedStrategy
	}
	switch o.TieBreak {
	case TieLast, TieFirst:
	default:
		return ErrUnsupportedTieBreak
	}
	if o.Workers < 0 || o.TimeLimit < 0 {
		return ErrInvalidOption
	}

	return nil
}

// noopObserver is used when no Observer is configured.
type noopObserver struct{}

func (noopObserver) SearchStarted(Strategy, int)  {}
func (noopObserver) TourImproved(int64)           {}
func (noopObserver) SearchFinished(Result, error) {}
