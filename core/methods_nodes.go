// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle (AddNode, AddNodes, EnsureNode, InsertNode, RemoveNode) and node queries.
// Determinism:
//   - IDs are handed out in increasing order and never reused.
//   - NodeIDs() returns IDs sorted ascending.
// Concurrency:
//   - Mutators take muNode (write) and, when adjacency changes, muEdgeAdj (write).

package core

import (
	"fmt"
	"slices"
)

// AddNode inserts a new node and returns its ID.
// Complexity: O(1) amortized.
func (g *Graph) AddNode() NodeID {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	id := g.nextNode
	g.nextNode++
	g.nodes[id] = struct{}{}
	g.version.Add(1)

	return id
}

// AddNodes inserts n new nodes and returns their IDs in ascending order.
// n <= 0 is a no-op returning nil.
// Complexity: O(n).
func (g *Graph) AddNodes(n int) []NodeID {
	if n <= 0 {
		return nil
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()

	ids := make([]NodeID, n)
	for i := range n {
		ids[i] = g.nextNode
		g.nodes[g.nextNode] = struct{}{}
		g.nextNode++
	}
	g.version.Add(1)

	return ids
}

// EnsureNode makes sure that id, and every never-assigned ID below it, exists.
// IDs that were assigned and later removed are NOT resurrected unless id equals
// one of them, in which case ErrNodeNotFound is returned: stable IDs are never reused.
//
// This mirrors how edge lists name nodes by index: referencing node 7 in an
// empty graph materializes nodes 0..7.
//
// Complexity: O(id - nextNode + 1).
func (g *Graph) EnsureNode(id NodeID) error {
	if id < 0 {
		return fmt.Errorf("EnsureNode(%d): %w", id, ErrNegativeNodeID)
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()

	return g.ensureNodeLocked(id)
}

// ensureNodeLocked requires muNode held for writing.
func (g *Graph) ensureNodeLocked(id NodeID) error {
	if _, ok := g.nodes[id]; ok {
		return nil
	}
	if id < g.nextNode {
		// assigned once, then removed
		return fmt.Errorf("EnsureNode(%d): removed IDs are not reused: %w", id, ErrNodeNotFound)
	}
	for g.nextNode <= id {
		g.nodes[g.nextNode] = struct{}{}
		g.nextNode++
	}
	g.version.Add(1)

	return nil
}

// InsertNode creates exactly id, leaving every unassigned ID below it
// unassigned. Those skipped IDs are retired: AddNode continues after id and
// EnsureNode rejects them like removed IDs. An existing id is a no-op.
//
// Use InsertNode to load graphs whose IDs are sparse; EnsureNode would
// materialize every gap.
//
// Complexity: O(1).
func (g *Graph) InsertNode(id NodeID) error {
	if id < 0 {
		return fmt.Errorf("InsertNode(%d): %w", id, ErrNegativeNodeID)
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, ok := g.nodes[id]; ok {
		return nil
	}
	if id < g.nextNode {
		return fmt.Errorf("InsertNode(%d): removed IDs are not reused: %w", id, ErrNodeNotFound)
	}
	g.nodes[id] = struct{}{}
	g.nextNode = id + 1
	g.version.Add(1)

	return nil
}

// HasNode reports whether id exists in the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// RemoveNode deletes the node and every edge incident to it (in either direction).
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(deg(id)).
func (g *Graph) RemoveNode(id NodeID) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("RemoveNode(%d): %w", id, ErrNodeNotFound)
	}

	// Outgoing edges: drop the mirror entries held by each target.
	for to, bucket := range g.out[id] {
		for eid := range bucket {
			delete(g.edges, eid)
		}
		if to != id {
			delete(g.in[to], id)
		}
	}
	// Incoming edges: drop the entries held by each source.
	for from, bucket := range g.in[id] {
		for eid := range bucket {
			delete(g.edges, eid)
		}
		if from != id {
			delete(g.out[from], id)
		}
	}
	delete(g.out, id)
	delete(g.in, id)
	delete(g.nodes, id)
	g.version.Add(1)

	return nil
}

// NodeCount returns the number of nodes currently in the graph.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// NodeIDs returns all node IDs sorted ascending. The slice is freshly allocated.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []NodeID {
	g.muNode.RLock()
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.muNode.RUnlock()
	slices.Sort(ids)

	return ids
}

// Degree returns the in- and out-degree of id, counting parallel edges
// individually. A self-loop adds one to each.
// Complexity: O(deg(id)).
func (g *Graph) Degree(id NodeID) (in, out int, err error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return 0, 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, bucket := range g.out[id] {
		out += len(bucket)
	}
	for _, bucket := range g.in[id] {
		in += len(bucket)
	}

	return in, out, nil
}
