// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Immutable compressed-sparse-row (CSR) views of a graph.
// Determinism:
//   - Node order is ascending NodeID; per-node arcs keep Edge.ID order.
// Concurrency:
//   - A Snapshot is never mutated after construction; any number of goroutines
//     may read it without locking.

package core

import (
	"fmt"
	"slices"
)

// Snapshot is an immutable GraphView with O(1) neighbor lookup.
//
// Arcs of the node at position p live in outAdj[outOff[p]:outOff[p+1]]
// (targets) and inAdj[inOff[p]:inOff[p+1]] (sources).
type Snapshot struct {
	ids    []NodeID       // ascending
	pos    map[NodeID]int // NodeID -> position in ids
	outOff []int
	outAdj []NodeID
	inOff  []int
	inAdj  []NodeID

	version uint64 // source Graph version at capture time
}

// Snapshot captures the current state of g. Later mutations of g are not
// reflected. The snapshot reports g's version at capture time.
// Complexity: O(V log V + E log E).
func (g *Graph) Snapshot() *Snapshot {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	s := newSnapshotShell(ids, len(g.edges))
	for p, id := range ids {
		s.outAdj = append(s.outAdj, collectArcs(g.out[id])...)
		s.outOff[p+1] = len(s.outAdj)
		s.inAdj = append(s.inAdj, collectArcs(g.in[id])...)
		s.inOff[p+1] = len(s.inAdj)
	}
	s.version = g.version.Load()

	return s
}

// NewSnapshot builds a Snapshot over nodes 0..n-1 with the given directed
// edges. Self-loops and parallel edges are kept as-is.
//
// Errors: ErrNegativeNodeID if n < 0 or an endpoint is negative,
// ErrNodeNotFound if an endpoint is >= n.
// Complexity: O(n + E).
func NewSnapshot(n int, edges [][2]NodeID) (*Snapshot, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewSnapshot(n=%d): %w", n, ErrNegativeNodeID)
	}
	ids := make([]NodeID, n)
	for i := range ids {
		ids[i] = NodeID(i)
	}
	s := newSnapshotShell(ids, len(edges))

	// counting sort by endpoint keeps input order within each node
	outDeg := make([]int, n)
	inDeg := make([]int, n)
	for i, e := range edges {
		for _, id := range e {
			if id < 0 {
				return nil, fmt.Errorf("NewSnapshot: edge %d: %w", i, ErrNegativeNodeID)
			}
			if id >= NodeID(n) {
				return nil, fmt.Errorf("NewSnapshot: edge %d endpoint %d: %w", i, id, ErrNodeNotFound)
			}
		}
		outDeg[e[0]]++
		inDeg[e[1]]++
	}
	for p := range n {
		s.outOff[p+1] = s.outOff[p] + outDeg[p]
		s.inOff[p+1] = s.inOff[p] + inDeg[p]
	}
	s.outAdj = s.outAdj[:len(edges)]
	s.inAdj = s.inAdj[:len(edges)]
	outFill := slices.Clone(s.outOff[:n])
	inFill := slices.Clone(s.inOff[:n])
	for _, e := range edges {
		s.outAdj[outFill[e[0]]] = e[1]
		outFill[e[0]]++
		s.inAdj[inFill[e[1]]] = e[0]
		inFill[e[1]]++
	}

	return s, nil
}

func newSnapshotShell(ids []NodeID, edgeHint int) *Snapshot {
	s := &Snapshot{
		ids:    ids,
		pos:    make(map[NodeID]int, len(ids)),
		outOff: make([]int, len(ids)+1),
		inOff:  make([]int, len(ids)+1),
		outAdj: make([]NodeID, 0, edgeHint),
		inAdj:  make([]NodeID, 0, edgeHint),
	}
	for p, id := range ids {
		s.pos[id] = p
	}

	return s
}

// NodeCount implements GraphView.
func (s *Snapshot) NodeCount() int { return len(s.ids) }

// NodeIDs implements GraphView. The returned slice is a copy.
func (s *Snapshot) NodeIDs() []NodeID { return slices.Clone(s.ids) }

// EdgeCount returns the number of captured edges.
func (s *Snapshot) EdgeCount() int { return len(s.outAdj) }

// Version implements Versioned.
func (s *Snapshot) Version() uint64 { return s.version }

// HasNode reports whether id is part of the snapshot.
func (s *Snapshot) HasNode(id NodeID) bool {
	_, ok := s.pos[id]
	return ok
}

// Neighbors implements GraphView. The returned slice is a copy.
func (s *Snapshot) Neighbors(id NodeID, dir Direction) ([]NodeID, error) {
	out, in, err := s.arcs(id, dir)
	if err != nil {
		return nil, err
	}
	res := make([]NodeID, 0, len(out)+len(in))
	res = append(res, out...)

	return append(res, in...), nil
}

// EachNeighbor implements NeighborIterator without allocating.
func (s *Snapshot) EachNeighbor(id NodeID, dir Direction, fn func(NodeID)) error {
	out, in, err := s.arcs(id, dir)
	if err != nil {
		return err
	}
	for _, v := range out {
		fn(v)
	}
	for _, v := range in {
		fn(v)
	}

	return nil
}

// arcs returns the internal outgoing and (for Undirected) incoming slices of id.
func (s *Snapshot) arcs(id NodeID, dir Direction) (out, in []NodeID, err error) {
	if !dir.Valid() {
		return nil, nil, fmt.Errorf("Neighbors(%d, %d): %w", id, dir, ErrUnknownDirection)
	}
	p, ok := s.pos[id]
	if !ok {
		return nil, nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	out = s.outAdj[s.outOff[p]:s.outOff[p+1]]
	if dir == Undirected {
		in = s.inAdj[s.inOff[p]:s.inOff[p+1]]
	}

	return out, in, nil
}
