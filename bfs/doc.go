// Package bfs provides breadth-first search over a core.GraphView,
// returning unweighted shortest-path distances and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a source node, one layer
//     at a time, following outgoing edges (core.Directed) or outgoing and
//     incoming edges (core.Undirected).
//   - BFS returns a Result containing:
//   - Order: visit sequence, source first
//   - Distance: map from reached node → distance (edges) from source;
//     the source itself is never a key
//   - MaxDistance: eccentricity of the source within its reach
//   - Searcher is a reusable, sum-only engine for callers that run one
//     traversal per node (all-pairs aggregates). It allocates nothing per
//     run once its buffers have grown.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Foundation for the all-pairs average path length in package pathlen.
//
// Repeated neighbors
//
//	Views may list a neighbor more than once (parallel edges, or an edge seen
//	from both ends under core.Undirected) and may list a node as its own
//	neighbor (self-loop). The visited check absorbs all of them: each node is
//	reached at most once, at its minimal depth.
//
// Determinism
//
//	Frontier order follows the view's neighbor order, so the visit sequence
//	is reproducible for core.Graph and core.Snapshot.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E) per source
//   - Memory: O(V)     (stamp array and two frontier buffers)
//
// Usage
//
//	res, err := bfs.BFS(g, src, core.Directed)
//	if err != nil {
//	    // ErrGraphNil, ErrInvalidNodeSet, ErrSourceNotFound, ErrOptionViolation,
//	    // ErrNeighbors, ErrUnknownNeighbor, context errors, or hook errors
//	}
//
//	idx, _ := bfs.NewIndex(g)
//	s, _ := bfs.NewSearcher(g, idx, core.Undirected)
//	for _, id := range g.NodeIDs() {
//	    sum, reached, err := s.Sum(id)
//	    // ...
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no depth limit.
//   - WithContext(ctx):   set a custom context for cancellation.
//   - WithMaxDepth(d):    do not reach nodes farther than d hops (d>0).
//   - WithOnVisit(fn):    hook during visit; returning error aborts BFS.
package bfs
