// Package dfs implements depth-first reachability walks over core.Snapshot.
//
// Key features:
//   - Walk(s, start, opts...): visit every node reachable from start, following
//     edges in arrival order.
//   - Reachable(s, start): convenience check that every node is reachable.
//   - Cancellation via context.Context and a pre-order OnVisit hook.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for the recursion stack and result slices.
//
// Errors:
//
//   - ErrSnapshotNil        if s is nil.
//   - ErrStartOutOfRange    if start is not a node index of s.
//   - context.Canceled      if ctx is done.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

// walker encapsulates state during a walk.
type walker struct {
	snap *core.Snapshot
	opts Options
	res  *Result
}

// Walk performs a depth-first walk of s from start.
func Walk(s *core.Snapshot, start int, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, ErrSnapshotNil
	}
	if start < 0 || start >= s.N() {
		return nil, ErrStartOutOfRange
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := s.N()
	res := &Result{
		Visited: make([]bool, n),
		Order:   make([]int, 0, n),
		Parent:  make([]int, n),
	}
	for i := range res.Parent {
		res.Parent[i] = core.NoNode
	}

	w := &walker{snap: s, opts: o, res: res}
	if err := w.traverse(start); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits v and recurses into undiscovered endpoints.
func (w *walker) traverse(v int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[v] = true
	w.res.Order = append(w.res.Order, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", w.snap.ID(v), err)
		}
	}

	for _, ei := range w.snap.Out(v) {
		to := w.snap.Edge(ei).To
		if w.res.Visited[to] {
			continue
		}
		w.res.Parent[to] = v
		if err := w.traverse(to); err != nil {
			return err
		}
	}

	return nil
}

// Reachable reports whether every node of s is reachable from start.
// An empty snapshot has nothing to reach and returns ErrStartOutOfRange.
func Reachable(s *core.Snapshot, start int, opts ...Option) (bool, error) {
	res, err := Walk(s, start, opts...)
	if err != nil {
		return false, err
	}

	return res.Count() == s.N(), nil
}
