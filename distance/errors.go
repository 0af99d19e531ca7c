package distance

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable is the sentinel every UnreachableNodeError unwraps to.
	ErrUnreachable = errors.New("distance: rated valve unreachable from start")

	// ErrStartNotFound is returned when the start valve is not in the graph.
	ErrStartNotFound = errors.New("distance: start valve not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("distance: graph is nil")
)

// UnreachableNodeError reports a positive-rate valve that cannot be reached
// from the start valve.
type UnreachableNodeError struct {
	Start string
	Node  string
}

func (e *UnreachableNodeError) Error() string {
	return fmt.Sprintf("distance: valve %q unreachable from %q", e.Node, e.Start)
}

// Unwrap returns ErrUnreachable.
func (e *UnreachableNodeError) Unwrap() error { return ErrUnreachable }
