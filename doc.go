// Package hopgraph measures how far apart the nodes of an unweighted graph
// are: the average shortest-path length, in hops, over all ordered pairs of
// distinct nodes.
//
// The library is organized as small packages that build on each other:
//
//	core/       - Graph (mutable multigraph with stable IDs) and Snapshot (CSR),
//	              both read through the GraphView contract
//	bfs/        - layered breadth-first search and a reusable Searcher that
//	              returns per-source distance sums without allocating
//	pathlen/    - parallel all-sources reduction and the averaging policy
//	builder/    - deterministic generators: cycle, path, grid, star, complete,
//	              random sparse, isolated blocks, explicit edge lists
//	converters/ - two-way adapters to gonum graphs
//
// Command hopgraph (cmd/hopgraph) reads edge-list files and prints their
// averages, or writes generated graphs.
//
// Quick example:
//
//	g := core.NewGraph()
//	_, _ = g.ExtendFromEdgeList([][2]core.NodeID{{0, 1}, {1, 2}, {2, 0}})
//	avg, _ := pathlen.AverageShortestPathLength(g, false) // 1.5
//
// Directed mode follows edges from source to target only; undirected mode
// follows them both ways. Unreachable pairs contribute 0 to the sum but still
// count in the N·(N−1) denominator, unless pathlen.WithReachableOnly is set.
package hopgraph
