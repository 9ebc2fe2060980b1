// Walk options and result types.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrSnapshotNil is returned when a nil *core.Snapshot is passed to Walk.
	ErrSnapshotNil = errors.New("dfs: snapshot is nil")

	// ErrStartOutOfRange indicates that the start index is not a node of the snapshot.
	ErrStartOutOfRange = errors.New("dfs: start node out of range")
)

// Option configures optional behavior of a walk.
type Option func(*Options)

// Options holds configurable parameters for a walk.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is first discovered.
	// Returning an error aborts the walk with that error.
	OnVisit func(v int) error
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context used for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result captures the outcome of a walk.
type Result struct {
	// Visited flags which node indices were reached.
	Visited []bool

	// Order lists node indices in discovery (pre-order) sequence.
	Order []int

	// Parent maps each reached node to the node it was discovered from;
	// the start node maps to core.NoNode.
	Parent []int
}

// Count returns the number of reached nodes.
func (r *Result) Count() int { return len(r.Order) }
