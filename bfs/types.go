// Package bfs provides tunable options, result types and error definitions
// for breadth-first search over a core.GraphView.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/dfacoet/hopgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil view is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceNotFound is returned when the source ID is not part of the view.
	ErrSourceNotFound = errors.New("bfs: source node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the view fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrUnknownNeighbor is returned when a neighbor lookup yields an ID
	// that NodeIDs() did not list.
	ErrUnknownNeighbor = errors.New("bfs: neighbor outside the node set")

	// ErrInvalidNodeSet is returned when NodeIDs() disagrees with NodeCount()
	// or contains negative or duplicate IDs.
	ErrInvalidNodeSet = errors.New("bfs: inconsistent node set")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called once per reached node, source first, in visit order.
	// Receives the node ID and its distance from the source. A non-nil
	// error aborts the search and is propagated.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(core.NodeID, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: nodes farther than d hops are not reached
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a single-source traversal:
//   - Source: the start node.
//   - Order: nodes in visit sequence, Source first.
//   - Distance: hop count of every reached node other than Source.
//     Absence means unreachable; Source is never a key.
//   - MaxDistance: the largest value in Distance (0 if empty).
type Result struct {
	Source      core.NodeID
	Order       []core.NodeID
	Distance    map[core.NodeID]int
	MaxDistance int
}

// Sum returns the total of all distances in r.
func (r *Result) Sum() int64 {
	var s int64
	for _, d := range r.Distance {
		s += int64(d)
	}

	return s
}

// Reached returns the number of nodes reached besides the source.
func (r *Result) Reached() int { return len(r.Distance) }
