package bfs

import (
	"fmt"

	"github.com/dfacoet/hopgraph/core"
)

// Index maps the node IDs of a view to dense positions 0..N-1, in the order
// NodeIDs() returned them. An Index is immutable and may be shared by any
// number of Searchers across goroutines.
type Index struct {
	ids []core.NodeID
	pos map[core.NodeID]int
}

// NewIndex validates the node set of view and builds its position map.
//
// Returns ErrGraphNil for a nil view and ErrInvalidNodeSet when NodeIDs()
// has a different length than NodeCount(), or holds a negative or repeated ID.
// Complexity: O(V).
func NewIndex(view core.GraphView) (*Index, error) {
	if view == nil {
		return nil, ErrGraphNil
	}
	n := view.NodeCount()
	ids := view.NodeIDs()
	if len(ids) != n {
		return nil, fmt.Errorf("%w: NodeIDs() has %d entries, NodeCount() is %d", ErrInvalidNodeSet, len(ids), n)
	}

	idx := &Index{ids: ids, pos: make(map[core.NodeID]int, n)}
	for p, id := range ids {
		if id < 0 {
			return nil, fmt.Errorf("%w: %w (%d)", ErrInvalidNodeSet, core.ErrNegativeNodeID, id)
		}
		if _, dup := idx.pos[id]; dup {
			return nil, fmt.Errorf("%w: duplicate node ID %d", ErrInvalidNodeSet, id)
		}
		idx.pos[id] = p
	}

	return idx, nil
}

// Len returns the number of indexed nodes.
func (x *Index) Len() int { return len(x.ids) }

// ID returns the node at position p. It panics if p is out of range.
func (x *Index) ID(p int) core.NodeID { return x.ids[p] }

// Position returns the dense position of id.
func (x *Index) Position(id core.NodeID) (int, bool) {
	p, ok := x.pos[id]
	return p, ok
}
