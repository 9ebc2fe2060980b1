package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/salesman/tour"
)

// Process exit codes.
const (
	ExitOK         = 0 // tour found, or the graph is unsolvable
	ExitUsage      = 1 // bad flag, bad configuration
	ExitEmptyGraph = 2 // no node was read
	ExitIO         = 3 // graph or config file could not be opened or read
	ExitAborted    = 4 // time limit or cancellation
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

func exitf(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// classify maps an error to an ExitError. Aborted searches and empty graphs
// get their own codes; anything else is a usage error. An *ExitError passes
// through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee
	}

	switch {
	case errors.Is(err, tour.ErrTimeLimit),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return exitf(ExitAborted, "search aborted: %v", err)
	case errors.Is(err, tour.ErrEmptyGraph):
		return exitf(ExitEmptyGraph, "graph has no nodes")
	default:
		return exitf(ExitUsage, "%v", err)
	}
}
