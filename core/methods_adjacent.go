// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Successors, Predecessors).
// Determinism:
//   - Neighbors() lists one entry per incident edge, ordered by Edge.ID asc
//     (outgoing block first, then incoming block for Undirected).
//   - Successors()/Predecessors() return unique IDs sorted asc.
// Concurrency:
//   - Read operations hold muNode then muEdgeAdj read locks.

package core

import (
	"cmp"
	"fmt"
	"slices"
)

// arc pairs an edge ID with the node on the far side of it.
type arc struct {
	eid EdgeID
	nbr NodeID
}

// Neighbors returns the nodes adjacent to id under direction mode dir.
//
// Neighborhood policy:
//   - Directed: the target of every outgoing edge.
//   - Undirected: the target of every outgoing edge followed by the source of
//     every incoming edge.
//
// Parallel edges produce repeated entries and a self-loop lists id itself
// (twice under Undirected, once per orientation). Traversals are expected to
// absorb repeats with their visited set.
//
// Errors: ErrUnknownDirection, ErrNodeNotFound.
// Complexity: O(d log d), d = number of incident edges.
func (g *Graph) Neighbors(id NodeID, dir Direction) ([]NodeID, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("Neighbors(%d, %d): %w", id, dir, ErrUnknownDirection)
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := collectArcs(g.out[id])
	if dir == Directed {
		return out, nil
	}

	return append(out, collectArcs(g.in[id])...), nil
}

// Successors returns the unique targets of outgoing edges of id, sorted asc.
// Complexity: O(k log k), k = number of distinct successors.
func (g *Graph) Successors(id NodeID) ([]NodeID, error) {
	return g.uniqueAdjacent(id, func() map[NodeID]map[EdgeID]struct{} { return g.out[id] })
}

// Predecessors returns the unique sources of incoming edges of id, sorted asc.
// Complexity: O(k log k), k = number of distinct predecessors.
func (g *Graph) Predecessors(id NodeID) ([]NodeID, error) {
	return g.uniqueAdjacent(id, func() map[NodeID]map[EdgeID]struct{} { return g.in[id] })
}

func (g *Graph) uniqueAdjacent(id NodeID, side func() map[NodeID]map[EdgeID]struct{}) ([]NodeID, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("adjacent(%d): %w", id, ErrNodeNotFound)
	}

	g.muEdgeAdj.RLock()
	inner := side()
	ids := make([]NodeID, 0, len(inner))
	for nbr := range inner {
		ids = append(ids, nbr)
	}
	g.muEdgeAdj.RUnlock()
	slices.Sort(ids)

	return ids, nil
}

// collectArcs flattens one side of the adjacency of a node into neighbor IDs
// ordered by edge ID. Caller holds muEdgeAdj.
func collectArcs(inner map[NodeID]map[EdgeID]struct{}) []NodeID {
	var arcs []arc
	for nbr, bucket := range inner {
		for eid := range bucket {
			arcs = append(arcs, arc{eid: eid, nbr: nbr})
		}
	}
	slices.SortFunc(arcs, func(a, b arc) int { return cmp.Compare(a.eid, b.eid) })

	ids := make([]NodeID, len(arcs))
	for i, a := range arcs {
		ids[i] = a.nbr
	}

	return ids
}
