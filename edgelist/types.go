// SPDX-License-Identifier: MIT
// Package edgelist - sentinels, options and counters.

package edgelist

import (
	"errors"
	"log/slog"
)

var (
	// ErrNilReader is returned when Read receives a nil io.Reader.
	ErrNilReader = errors.New("edgelist: reader is nil")

	// ErrNilSink is returned when Read receives a nil Sink.
	ErrNilSink = errors.New("edgelist: sink is nil")

	// ErrNilSnapshot is returned when Encode receives a nil snapshot.
	ErrNilSnapshot = errors.New("edgelist: snapshot is nil")

	// ErrNotEncodable is returned by Encode for node IDs that are not a
	// single character.
	ErrNotEncodable = errors.New("edgelist: node ID is not a single character")
)

// DefaultMaxLineBytes bounds a single input line.
const DefaultMaxLineBytes = 1 << 20

// Sink receives parsed edges. *core.Graph implements it.
type Sink interface {
	Connect(a, b string, w int64) (int, int, error)
}

// Stats counts what Read saw.
type Stats struct {
	Lines    int // lines read, comments included
	Edges    int // data lines handed to the sink
	Comments int // lines skipped as comments
}

// Options configures Read.
type Options struct {
	Logger       *slog.Logger
	MaxLineBytes int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a discard logger and DefaultMaxLineBytes.
func DefaultOptions() Options {
	return Options{
		Logger:       slog.New(slog.DiscardHandler),
		MaxLineBytes: DefaultMaxLineBytes,
	}
}

// WithLogger traces comments and edges at debug level. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxLineBytes overrides the line length bound. Values <= 0 are ignored.
func WithMaxLineBytes(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxLineBytes = n
		}
	}
}
