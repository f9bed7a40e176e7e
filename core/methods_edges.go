// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle (AddEdge, ExtendFromEdgeList, RemoveEdge) and edge queries.
// Determinism:
//   - Edge IDs are generated by an atomic counter (1, 2, ...).
//   - Edges() returns edges sorted by ID ascending.
// Concurrency:
//   - Mutators take muNode (read, endpoint validation) then muEdgeAdj (write).

package core

import (
	"fmt"
	"slices"
)

// AddEdge inserts a directed edge from→to and returns its ID.
// Both endpoints must already exist.
//
// Returns ErrNodeNotFound, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID) (EdgeID, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	if _, ok := g.nodes[from]; !ok {
		return 0, fmt.Errorf("AddEdge(%d→%d): source: %w", from, to, ErrNodeNotFound)
	}
	if _, ok := g.nodes[to]; !ok {
		return 0, fmt.Errorf("AddEdge(%d→%d): target: %w", from, to, ErrNodeNotFound)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	return g.addEdgeLocked(from, to)
}

// addEdgeLocked requires muNode (any mode) and muEdgeAdj (write) held,
// and both endpoints present.
func (g *Graph) addEdgeLocked(from, to NodeID) (EdgeID, error) {
	if from == to && !g.allowLoops {
		return 0, fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrLoopNotAllowed)
	}
	if !g.allowMulti && len(g.out[from][to]) > 0 {
		return 0, fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	eid := EdgeID(g.nextEdgeID.Add(1))
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	ensureBucket(g.out, from, to)[eid] = struct{}{}
	ensureBucket(g.in, to, from)[eid] = struct{}{}
	g.version.Add(1)

	return eid, nil
}

// ExtendFromEdgeList adds one edge per pair, creating any endpoint that does
// not exist yet (see EnsureNode). It stops at the first failing pair and
// returns the IDs of the edges added so far together with the error.
//
// Complexity: O(len(pairs) + max node ID).
func (g *Graph) ExtendFromEdgeList(pairs [][2]NodeID) ([]EdgeID, error) {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	ids := make([]EdgeID, 0, len(pairs))
	for i, p := range pairs {
		for _, id := range p {
			if id < 0 {
				return ids, fmt.Errorf("ExtendFromEdgeList: pair %d: %w", i, ErrNegativeNodeID)
			}
			if err := g.ensureNodeLocked(id); err != nil {
				return ids, fmt.Errorf("ExtendFromEdgeList: pair %d: %w", i, err)
			}
		}
		eid, err := g.addEdgeLocked(p[0], p[1])
		if err != nil {
			return ids, fmt.Errorf("ExtendFromEdgeList: pair %d: %w", i, err)
		}
		ids = append(ids, eid)
	}

	return ids, nil
}

// RemoveEdge deletes the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid EdgeID) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return fmt.Errorf("RemoveEdge(%d): %w", eid, ErrEdgeNotFound)
	}
	delete(g.edges, eid)
	dropFromBucket(g.out, e.From, e.To, eid)
	dropFromBucket(g.in, e.To, e.From, eid)
	g.version.Add(1)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to NodeID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.out[from][to]) > 0
}

// Edge returns a copy of the edge with the given ID.
func (g *Graph) Edge(eid EdgeID) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, fmt.Errorf("Edge(%d): %w", eid, ErrEdgeNotFound)
	}

	return *e, nil
}

// Edges returns copies of all edges sorted by ID ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.muEdgeAdj.RUnlock()
	slices.SortFunc(out, func(a, b Edge) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	return out
}

// EdgeCount returns the number of edges, counting parallel edges and loops.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// ensureBucket returns adj[a][b], allocating the intermediate maps as needed.
func ensureBucket(adj map[NodeID]map[NodeID]map[EdgeID]struct{}, a, b NodeID) map[EdgeID]struct{} {
	inner, ok := adj[a]
	if !ok {
		inner = make(map[NodeID]map[EdgeID]struct{})
		adj[a] = inner
	}
	bucket, ok := inner[b]
	if !ok {
		bucket = make(map[EdgeID]struct{}, 1)
		inner[b] = bucket
	}

	return bucket
}

// dropFromBucket removes eid from adj[a][b] and prunes empty maps.
func dropFromBucket(adj map[NodeID]map[NodeID]map[EdgeID]struct{}, a, b NodeID, eid EdgeID) {
	inner := adj[a]
	if inner == nil {
		return
	}
	delete(inner[b], eid)
	if len(inner[b]) == 0 {
		delete(inner, b)
	}
	if len(inner) == 0 {
		delete(adj, a)
	}
}
