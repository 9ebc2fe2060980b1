// SPDX-License-Identifier: MIT
// Package tour - unified entry points.
//
//   - Solve: validate options, optionally pre-check feasibility, route to the
//     chosen strategy, validate the tour that comes back.
//   - SolveGraph: freeze a *core.Graph and delegate to Solve.
//
// Design principles:
//   - A fresh search context per call; nothing survives between calls.
//   - "No tour" is a Result with Found == false, never an error.
//   - Every found tour is re-validated and re-priced before it is returned.
package tour

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/dfs"
)

// SolveGraph snapshots g and runs Solve on the snapshot.
func SolveGraph(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilSnapshot
	}

	return Solve(ctx, g.Snapshot(), opts...)
}

// Solve finds the minimum-cost closed tour through every node of s, starting
// and ending at the entry node.
//
// Errors:
//   - ErrNilSnapshot, ErrEmptyGraph for unusable input.
//   - ErrUnsupportedStrategy, ErrUnsupportedTieBreak, ErrInvalidOption for bad options.
//   - ErrTimeLimit, ctx.Err() when the search is aborted.
//   - ErrTooLarge from HeldKarp beyond MaxHeldKarpNodes.
func Solve(ctx context.Context, s *core.Snapshot, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	if s == nil {
		return Result{}, ErrNilSnapshot
	}
	if s.N() == 0 {
		return Result{}, ErrEmptyGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if o.Observer == nil {
		o.Observer = noopObserver{}
	}

	o.Observer.SearchStarted(o.Strategy, s.N())
	o.Logger.Debug("search started",
		"strategy", o.Strategy.String(), "tie_break", o.TieBreak.String(),
		"nodes", s.N(), "edges", s.EdgeCount(), "workers", o.Workers)

	start := time.Now()
	res, err := dispatch(ctx, s, o)
	res.Strategy = o.Strategy
	res.Stats.Elapsed = time.Since(start)
	if err != nil {
		res = Result{Strategy: o.Strategy, Stats: res.Stats}
	}

	o.Observer.SearchFinished(res, err)
	o.Logger.Debug("search finished", "found", res.Found, "cost", res.Cost,
		"admissions", res.Stats.Admissions, "completions", res.Stats.Completions,
		"elapsed", res.Stats.Elapsed)

	return res, err
}

// dispatch runs the pre-check and the selected strategy.
func dispatch(ctx context.Context, s *core.Snapshot, o Options) (Result, error) {
	if o.Precheck {
		ok, err := feasible(ctx, s)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			o.Logger.Debug("pre-check rejected graph")

			return Result{Stats: Stats{Prunes: 1}}, nil
		}
	}

	var (
		idx   []int
		cost  int64
		found bool
		st    Stats
		err   error
	)
	switch o.Strategy {
	case HeldKarp:
		idx, cost, found, st, err = heldKarp(ctx, s)
	case Exhaustive, BranchAndBound:
		e := newEngine(ctx, s, o)
		if o.Workers > 1 {
			err = e.runParallel(o.Workers)
		} else {
			err = e.run()
		}
		st = e.stats
		if e.sol.found {
			idx, cost, found = e.sol.tour(), e.sol.cost, true
		}
	default:
		return Result{}, ErrUnsupportedStrategy
	}
	if err != nil {
		return Result{Stats: st}, err
	}
	if !found {
		return Result{Stats: st}, nil
	}

	return finish(s, idx, cost, st)
}

// finish converts indices to IDs and re-checks the tour.
func finish(s *core.Snapshot, idx []int, cost int64, st Stats) (Result, error) {
	ids := make([]string, len(idx))
	for i, v := range idx {
		ids[i] = s.ID(v)
	}
	if err := ValidateTour(s, ids); err != nil {
		return Result{Stats: st}, err
	}
	priced, err := costOf(s, idx)
	if err != nil {
		return Result{Stats: st}, err
	}
	if priced != cost {
		return Result{Stats: st}, fmt.Errorf("cost %d, priced %d: %w", cost, priced, ErrInvalidTour)
	}

	return Result{Found: true, Tour: ids, Cost: cost, Stats: st}, nil
}

// feasible rejects graphs that cannot hold a closed tour through the entry:
//   - N == 1: the entry needs a self-loop.
//   - N >= 3: every node needs two distinct neighbors other than itself.
//   - every node must be reachable from the entry.
func feasible(ctx context.Context, s *core.Snapshot) (bool, error) {
	n := s.N()
	if n == 1 {
		return len(s.Out(s.Entry())) > 0, nil
	}
	if n >= 3 {
		for v := 0; v < n; v++ {
			first, distinct := core.NoNode, 0
			for _, ei := range s.Out(v) {
				to := s.Edge(ei).To
				if to == v || to == first {
					continue
				}
				if first == core.NoNode {
					first = to
				}
				distinct++
				if distinct >= 2 {
					break
				}
			}
			if distinct < 2 {
				return false, nil
			}
		}
	}

	return dfs.Reachable(s, s.Entry(), dfs.WithContext(ctx))
}
