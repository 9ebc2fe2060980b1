// SPDX-License-Identifier: MIT
// Package tour — recursive backtracking search (exhaustive and branch-and-bound).
//
// The engine enumerates simple paths from the entry node depth-first, trying
// each node's edges in insertion order, and closes a tour when the path holds
// every node and the next candidate is the entry node.
//
// Rationale (succinct):
//  1. One engine per Solve (per worker when parallel): entry node, incumbent,
//     solution buffer and counters are never shared through globals.
//  2. The path is pushed on admission and popped by a deferred call, so every
//     exit path of a frame restores it.
//  3. A frame returns (best completion cost, found). "Found" is explicit, so
//     negative totals are ordinary results.
//  4. Completions go through the solution buffer's tie-break policy; the
//     buffer keeps the tour that the per-frame "keep the cheapest child" rule
//     selects.
//  5. Sparse time checks (every 4096 admissions) keep the overhead negligible.
//
// Complexity:
//   - Time: number of simple paths from the entry node; (N−1)! complete tours
//     on a complete graph.
//   - Memory: O(N) path + O(N) buffer per engine; recursion depth ≤ N+1.

package tour

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/salesman/core"
)

// stepMask selects how often halted() consults the clock and the context.
const stepMask = 4095

// admission is the verdict of the visit rule.
type admission int

const (
	rejected admission = iota // candidate already on the path, or not the entry once full
	opened                    // candidate appended, search continues below it
	closing                   // path full and candidate is the entry: tour complete
)

// engine is the search context of one sequential search.
type engine struct {
	snap  *core.Snapshot
	n     int
	entry int
	tie   TieBreak

	bnd    *bound     // nil unless branch-and-bound
	shared *incumbent // nil unless parallel branch-and-bound

	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	steps       uint64
	halt        error

	path   []int
	onPath []bool
	sol    *solution
	stats  Stats

	obs Observer
	log *slog.Logger
}

// newEngine builds a fresh search context for s.
func newEngine(ctx context.Context, s *core.Snapshot, o Options) *engine {
	n := s.N()
	e := &engine{
		snap:   s,
		n:      n,
		entry:  s.Entry(),
		tie:    o.TieBreak,
		ctx:    ctx,
		path:   make([]int, 0, n),
		onPath: make([]bool, n),
		sol:    newSolution(n),
		obs:    o.Observer,
		log:    o.Logger,
	}
	if e.obs == nil {
		e.obs = noopObserver{}
	}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}
	if o.Strategy == BranchAndBound {
		e.bnd = newBound(s)
	}

	return e
}

// fork returns an independent engine for a worker: own path, own buffer,
// own counters, shared read-only graph and shared incumbent.
func (e *engine) fork(ctx context.Context) *engine {
	w := *e
	w.ctx = ctx
	w.path = make([]int, len(e.path), e.n)
	copy(w.path, e.path)
	w.onPath = make([]bool, e.n)
	copy(w.onPath, e.onPath)
	w.sol = newSolution(e.n)
	w.stats = Stats{}
	w.steps = 0
	w.bnd = e.bnd.clone()

	return &w
}

// admit applies the visit rule to candidate v.
func (e *engine) admit(v int) admission {
	if len(e.path) == e.n {
		if v != e.entry {
			return rejected
		}

		return closing
	}
	if e.onPath[v] {
		return rejected
	}

	return opened
}

func (e *engine) push(v int) {
	e.path = append(e.path, v)
	e.onPath[v] = true
	if e.bnd != nil {
		e.bnd.enter(v)
	}
}

func (e *engine) pop(v int) {
	e.path = e.path[:len(e.path)-1]
	e.onPath[v] = false
	if e.bnd != nil {
		e.bnd.leave(v)
	}
}

// search is one frame of the recursion: admit v, then either close the tour
// or explore every edge of v. It returns the cheapest completion found below.
func (e *engine) search(v int, cost int64) (int64, bool) {
	if e.halted() {
		return 0, false
	}
	switch e.admit(v) {
	case rejected:
		e.stats.Rejections++

		return 0, false
	case closing:
		e.stats.Admissions++
		e.stats.Completions++
		e.complete(cost)

		return cost, true
	}

	e.stats.Admissions++
	e.push(v)
	defer e.pop(v)

	if e.prune(v, cost) {
		e.stats.Prunes++

		return 0, false
	}

	return e.expand(v, cost)
}

// expand recurses into every edge of v (already on the path) in insertion order.
func (e *engine) expand(v int, cost int64) (int64, bool) {
	var (
		best  int64
		found bool
	)
	for _, ei := range e.snap.Out(v) {
		ed := e.snap.Edge(ei)
		c, ok := e.search(ed.To, cost+ed.Weight)
		if e.halt != nil {
			return 0, false
		}
		if ok && (!found || c < best) {
			best, found = c, true
		}
	}

	return best, found
}

// prune reports whether the subtree under v cannot beat the incumbent.
func (e *engine) prune(v int, cost int64) bool {
	if e.bnd == nil {
		return false
	}
	if e.bnd.dead {
		return true
	}

	return e.bnd.lower(v, cost) > e.limit()
}

// limit is the best known tour cost (local or shared), MaxInt64 if none.
func (e *engine) limit() int64 {
	lim := int64(math.MaxInt64)
	if e.sol.found {
		lim = e.sol.cost
	}
	if e.shared != nil {
		if c := e.shared.load(); c < lim {
			lim = c
		}
	}

	return lim
}

// complete offers a closed tour of cost total to the solution buffer.
func (e *engine) complete(total int64) {
	if !e.sol.better(total, e.tie) {
		return
	}
	e.sol.record(e.path, e.entry, total)
	e.stats.Improvements++
	if e.shared != nil {
		e.shared.offer(total)
	}
	e.obs.TourImproved(total)
	e.log.Debug("tour accepted", "cost", total, "completions", e.stats.Completions)
}

// halted performs the sparse cancellation and deadline check.
func (e *engine) halted() bool {
	if e.halt != nil {
		return true
	}
	e.steps++
	if e.steps&stepMask != 0 {
		return false
	}
	if err := e.ctx.Err(); err != nil {
		e.halt = err

		return true
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.halt = ErrTimeLimit

		return true
	}

	return false
}

// run performs the sequential search from the entry node.
func (e *engine) run() error {
	e.search(e.entry, 0)

	return e.halt
}
