// SPDX-License-Identifier: MIT
// Package tour — parallel fan-out of the entry node's edges.
//
// The root frame (entry node admitted) is expanded once; each of its edges
// becomes one task on an errgroup limited to Options.Workers goroutines.
// Every task runs a forked engine with its own path, buffer and counters.
// Buffers are merged after Wait in edge order, which reproduces the
// sequential enumeration order and therefore the tie-break result.
//
// Branch-and-bound workers share one incumbent cost, updated by
// compare-and-swap. Each worker prunes against min(local, shared) with the
// strict bound test, so sharing only speeds pruning up.

package tour

import (
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// incumbent is the best tour cost published by any worker.
// math.MaxInt64 means "none yet".
type incumbent struct {
	cost atomic.Int64
}

func newIncumbent() *incumbent {
	in := &incumbent{}
	in.cost.Store(math.MaxInt64)

	return in
}

func (in *incumbent) load() int64 { return in.cost.Load() }

// offer lowers the shared cost to c if c is smaller.
func (in *incumbent) offer(c int64) {
	for {
		cur := in.cost.Load()
		if c >= cur || in.cost.CompareAndSwap(cur, c) {
			return
		}
	}
}

// runParallel admits the entry node and fans its edges out to workers.
func (e *engine) runParallel(workers int) error {
	if e.halted() {
		return e.halt
	}
	e.stats.Admissions++
	e.push(e.entry)
	defer e.pop(e.entry)
	if e.prune(e.entry, 0) {
		e.stats.Prunes++

		return nil
	}
	if e.bnd != nil {
		e.shared = newIncumbent()
	}

	out := e.snap.Out(e.entry)
	branches := make([]*engine, len(out))
	g, gctx := errgroup.WithContext(e.ctx)
	g.SetLimit(workers)
	for i, ei := range out {
		ed := e.snap.Edge(ei)
		w := e.fork(gctx)
		branches[i] = w
		g.Go(func() error {
			w.search(ed.To, ed.Weight)

			return w.halt
		})
	}
	err := g.Wait()

	for _, w := range branches {
		e.stats.add(w.stats)
		e.sol.merge(w.sol, e.tie)
	}
	e.log.Debug("parallel search joined", "branches", len(branches), "workers", workers)

	return err
}
