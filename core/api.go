// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for configuration flags and a Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	AllowsLoops bool
	AllowsMulti bool

	NodeCount int
	EdgeCount int

	// SelfLoopCount counts edges with From == To.
	SelfLoopCount int

	// ParallelEdgeCount counts edges beyond the first between the same ordered pair.
	ParallelEdgeCount int

	// IsolatedCount counts nodes with no incident edge at all.
	IsolatedCount int

	Version uint64
}

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1). Flags are immutable after NewGraph, no locking needed.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted by policy.
// Complexity: O(1).
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Stats produces a read-only summary of flags and catalog sizes.
//
// Implementation:
//   - Stage 1: muNode.RLock, count nodes.
//   - Stage 2: muEdgeAdj.RLock (nested, same order as mutators), scan adjacency once.
//
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	st := GraphStats{
		AllowsLoops: g.allowLoops,
		AllowsMulti: g.allowMulti,
		NodeCount:   len(g.nodes),
		EdgeCount:   len(g.edges),
		Version:     g.version.Load(),
	}
	for from, inner := range g.out {
		for to, bucket := range inner {
			if from == to {
				st.SelfLoopCount += len(bucket)
			}
			if len(bucket) > 1 {
				st.ParallelEdgeCount += len(bucket) - 1
			}
		}
	}
	for id := range g.nodes {
		if len(g.out[id]) == 0 && len(g.in[id]) == 0 {
			st.IsolatedCount++
		}
	}

	return st
}
