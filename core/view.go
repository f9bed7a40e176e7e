// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Read-only graph contracts consumed by traversal and averaging code.
// Notes:
//   - GraphView is the only surface the bfs and pathlen packages depend on.
//   - NeighborIterator and Versioned are optional; callers type-assert for them.

package core

// GraphView is an immutable, read-only view of a graph.
//
// Implementations must be safe for concurrent use by multiple readers and
// must not change while a computation over them is in flight.
type GraphView interface {
	// NodeCount returns the number of nodes, isolated ones included.
	NodeCount() int

	// NodeIDs returns the node identifiers; len(NodeIDs()) == NodeCount().
	NodeIDs() []NodeID

	// Neighbors returns the nodes adjacent to id under dir. Entries may
	// repeat (parallel edges, both orientations) and may include id itself.
	Neighbors(id NodeID, dir Direction) ([]NodeID, error)
}

// NeighborIterator is an optional allocation-free alternative to Neighbors.
// fn is invoked once per entry Neighbors would return, in unspecified order.
type NeighborIterator interface {
	EachNeighbor(id NodeID, dir Direction, fn func(NodeID)) error
}

// Versioned is implemented by views that can report whether they changed.
// Two equal values mean no mutation happened in between.
type Versioned interface {
	Version() uint64
}

// Version returns a counter that changes on every successful mutation.
// Complexity: O(1), lock-free.
func (g *Graph) Version() uint64 { return g.version.Load() }

// Compile-time contract checks.
var (
	_ GraphView        = (*Graph)(nil)
	_ Versioned        = (*Graph)(nil)
	_ GraphView        = (*Snapshot)(nil)
	_ NeighborIterator = (*Snapshot)(nil)
	_ Versioned        = (*Snapshot)(nil)
)
