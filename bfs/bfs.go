package bfs

import (
	"fmt"

	"github.com/dfacoet/hopgraph/core"
)

// walker collects a full Result on top of a Searcher run.
type walker struct {
	idx  *Index
	opts Options
	res  *Result
}

// BFS runs breadth-first search on view from source under direction mode dir,
// applying any number of functional Options.
//
// Returns ErrGraphNil, ErrInvalidNodeSet or ErrSourceNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors or ErrUnknownNeighbor for
// view failures, the context error on cancellation, or any OnVisit error.
func BFS(view core.GraphView, source core.NodeID, dir core.Direction, opts ...Option) (*Result, error) {
	if view == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	idx, err := NewIndex(view)
	if err != nil {
		return nil, err
	}
	s, err := NewSearcher(view, idx, dir)
	if err != nil {
		return nil, err
	}

	w := &walker{
		idx:  idx,
		opts: o,
		res: &Result{
			Source:   source,
			Order:    make([]core.NodeID, 0, idx.Len()),
			Distance: make(map[core.NodeID]int),
		},
	}
	if err = s.walk(o.Ctx, source, o.MaxDepth, w.visit); err != nil {
		return nil, err
	}

	return w.res, nil
}

// visit records the node in Order and Distance and calls OnVisit.
func (w *walker) visit(p, depth int) error {
	id := w.idx.ID(p)
	w.res.Order = append(w.res.Order, id)
	if depth > 0 {
		w.res.Distance[id] = depth
		w.res.MaxDistance = max(w.res.MaxDistance, depth)
	}
	if err := w.opts.OnVisit(id, depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}

	return nil
}

// Distances returns only the distance map of BFS(view, source, dir).
func Distances(view core.GraphView, source core.NodeID, dir core.Direction, opts ...Option) (map[core.NodeID]int, error) {
	res, err := BFS(view, source, dir, opts...)
	if err != nil {
		return nil, err
	}

	return res.Distance, nil
}
