// Package core provides the graph storage and the read-only GraphView
// contract used by the traversal (bfs) and averaging (pathlen) packages.
//
// Two GraphView implementations live here:
//
//   - Graph: a mutable, thread-safe directed multigraph with stable integer
//     node IDs. IDs are assigned in increasing order and never reused, so an
//     ID keeps naming the same node for the lifetime of the graph.
//   - Snapshot: an immutable compressed-sparse-row copy of a Graph (or of an
//     edge list, via NewSnapshot) with allocation-free neighbor iteration.
//
// Direction modes:
//
//	Directed   - Neighbors(id) lists targets of outgoing edges.
//	Undirected - Neighbors(id) lists targets of outgoing edges, then sources
//	             of incoming edges, as if every edge were bidirectional.
//
// Neighbor lists keep one entry per edge: parallel edges repeat a neighbor and
// a self-loop lists the node itself. Consumers absorb repeats with a visited set.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()        permit self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//	– WithMultiEdges()   permit parallel edges; otherwise → ErrMultiEdgeNotAllowed.
//	– WithCapacity(n)    pre-size internal maps.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode() NodeID                          // O(1)
//	AddNodes(n int) []NodeID                  // O(n)
//	EnsureNode(id NodeID) error               // O(id - next)
//	InsertNode(id NodeID) error               // O(1), IDs below id are skipped
//	RemoveNode(id NodeID) error               // O(deg)
//
//	// Edge lifecycle
//	AddEdge(from, to NodeID) (EdgeID, error)  // O(1)
//	ExtendFromEdgeList(pairs) ([]EdgeID, error)
//	RemoveEdge(eid EdgeID) error              // O(1)
//
//	// Query
//	Neighbors(id, dir) ([]NodeID, error)      // O(d log d)
//	Successors(id) / Predecessors(id)         // unique, sorted
//	NodeIDs() []NodeID                        // sorted
//	Edges() []Edge                            // sorted by ID
//	Degree(id) (in, out int, err error)
//	Stats() GraphStats
//	Version() uint64                          // changes on every mutation
//	Snapshot() *Snapshot                      // immutable CSR copy
//
// Mutating a Graph while an algorithm reads it through GraphView is a
// contract violation; algorithms that care detect it through Versioned.
package core
