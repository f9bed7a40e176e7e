package bfs

import (
	"context"
	"fmt"

	"github.com/dfacoet/hopgraph/core"
)

// ctxCheckEvery bounds how many frontier nodes are expanded between
// cancellation checks.
const ctxCheckEvery = 1024

// Searcher runs repeated layered traversals over one view and direction.
//
// Visited state is a stamp array: a node is visited in the current run iff
// its stamp equals the run's epoch, so consecutive runs need no clearing.
// A Searcher is not safe for concurrent use; create one per goroutine and
// share the Index.
type Searcher struct {
	view core.GraphView
	iter core.NeighborIterator // nil when view has no allocation-free path
	idx  *Index
	dir  core.Direction

	stamp []uint32
	epoch uint32
	cur   []int
	next  []int

	// per-run state read by expand
	depth   int
	fail    error
	visit   func(p, depth int) error
	reachFn func(core.NodeID)
}

// NewSearcher prepares a Searcher over view. idx must have been built from
// the same view.
//
// Returns ErrGraphNil for nil arguments and core.ErrUnknownDirection for an
// invalid dir.
func NewSearcher(view core.GraphView, idx *Index, dir core.Direction) (*Searcher, error) {
	if view == nil || idx == nil {
		return nil, ErrGraphNil
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("bfs: direction %d: %w", dir, core.ErrUnknownDirection)
	}
	s := &Searcher{
		view:  view,
		idx:   idx,
		dir:   dir,
		stamp: make([]uint32, idx.Len()),
	}
	s.iter, _ = view.(core.NeighborIterator)
	s.reachFn = s.reach

	return s, nil
}

// Sum returns the total hop distance from source to every node it reaches,
// and how many nodes that is (source excluded).
func (s *Searcher) Sum(source core.NodeID) (sum, reached int64, err error) {
	return s.SumContext(context.Background(), source)
}

// SumContext is Sum with cancellation.
func (s *Searcher) SumContext(ctx context.Context, source core.NodeID) (sum, reached int64, err error) {
	err = s.walk(ctx, source, 0, func(_, depth int) error {
		if depth > 0 {
			sum += int64(depth)
			reached++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return sum, reached, nil
}

// walk performs one layered BFS from source, calling visit for every reached
// node (source included, at depth 0). maxDepth > 0 limits the search.
func (s *Searcher) walk(ctx context.Context, source core.NodeID, maxDepth int, visit func(p, depth int) error) error {
	p, ok := s.idx.Position(source)
	if !ok {
		return fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.epoch++
	if s.epoch == 0 {
		clear(s.stamp)
		s.epoch = 1
	}
	s.stamp[p] = s.epoch
	s.fail = nil
	s.visit = visit
	defer func() { s.visit = nil }()

	if err := visit(p, 0); err != nil {
		return err
	}

	s.cur = append(s.cur[:0], p)
	expanded := 0
	for depth := 0; len(s.cur) > 0; depth++ {
		if maxDepth > 0 && depth >= maxDepth {
			break
		}
		s.depth = depth + 1
		s.next = s.next[:0]
		for _, u := range s.cur {
			if expanded++; expanded%ctxCheckEvery == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			if err := s.expand(u); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		s.cur, s.next = s.next, s.cur
	}

	return nil
}

// expand pushes every unvisited neighbor of the node at position u onto the
// next frontier.
func (s *Searcher) expand(u int) error {
	id := s.idx.ids[u]
	var err error
	if s.iter != nil {
		err = s.iter.EachNeighbor(id, s.dir, s.reachFn)
	} else {
		var nbrs []core.NodeID
		nbrs, err = s.view.Neighbors(id, s.dir)
		for _, v := range nbrs {
			s.reach(v)
		}
	}
	if err != nil {
		return fmt.Errorf("%w: node %d: %w", ErrNeighbors, id, err)
	}
	if s.fail != nil {
		return fmt.Errorf("node %d: %w", id, s.fail)
	}

	return nil
}

// reach handles a single neighbor entry. Failures are parked in s.fail
// because NeighborIterator callbacks cannot return errors.
func (s *Searcher) reach(v core.NodeID) {
	if s.fail != nil {
		return
	}
	q, ok := s.idx.pos[v]
	if !ok {
		s.fail = fmt.Errorf("%w: %d", ErrUnknownNeighbor, v)
		return
	}
	if s.stamp[q] == s.epoch {
		return
	}
	s.stamp[q] = s.epoch
	s.next = append(s.next, q)
	s.fail = s.visit(q, s.depth)
}
