// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph, Edge and Snapshot types, the
// read-only GraphView contract consumed by the traversal and averaging
// packages, and thread-safe primitives for building and querying graphs.
//
// All mutating Graph APIs use separate sync.RWMutex locks internally (muNode
// for the node catalog and configuration, muEdgeAdj for edges and adjacency),
// so graphs can be built and read across goroutines with minimal contention.
//
// Errors:
//
//	ErrNegativeNodeID      - node identifiers must be >= 0.
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrUnknownDirection    - Direction value outside {Directed, Undirected}.
package core

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeID indicates that a caller supplied a NodeID below zero.
	ErrNegativeNodeID = errors.New("core: node ID is negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrUnknownDirection indicates a Direction value outside the closed enumeration.
	ErrUnknownDirection = errors.New("core: unknown direction mode")
)

// NodeID is a stable, opaque, non-negative node identifier.
// IDs are assigned by Graph in increasing order and never reused after removal.
type NodeID int64

// EdgeID uniquely identifies an edge within its Graph.
type EdgeID uint64

// Direction selects which edges a neighbor lookup follows.
type Direction uint8

const (
	// Directed follows outgoing edges only.
	Directed Direction = iota
	// Undirected follows the union of outgoing and incoming edges.
	Undirected
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the declared modes.
func (d Direction) Valid() bool { return d == Directed || d == Undirected }

// Edge is a directed connection From→To. Self-loops have From == To.
type Edge struct {
	// ID uniquely identifies this edge in its Graph.
	ID EdgeID

	// From is the source node.
	From NodeID

	// To is the destination node.
	To NodeID
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithCapacity pre-sizes the node catalog for n nodes. Values <= 0 are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capHint = n
		}
	}
}

// Graph is a mutable in-memory directed multigraph with stable integer node IDs.
//
// Adjacency is kept in both orientations so that Undirected lookups can merge
// successors and predecessors without scanning the edge catalog:
//
//	out[from][to][edgeID] = struct{}{}
//	in[to][from][edgeID]  = struct{}{}
//
// muNode protects nodes, nextNode and flags; muEdgeAdj protects edges, out and in.
// Lock order is always muNode -> muEdgeAdj.
type Graph struct {
	muNode    sync.RWMutex // guards nodes, nextNode
	muEdgeAdj sync.RWMutex // guards edges, out, in

	// Configuration flags (immutable after NewGraph)
	allowMulti bool
	allowLoops bool
	capHint    int

	// Storage
	nodes    map[NodeID]struct{}
	nextNode NodeID
	edges    map[EdgeID]*Edge
	out      map[NodeID]map[NodeID]map[EdgeID]struct{}
	in       map[NodeID]map[NodeID]map[EdgeID]struct{}

	nextEdgeID atomic.Uint64 // edge ID generator
	version    atomic.Uint64 // bumped on every successful mutation
}

// NewGraph creates an empty Graph. By default loops and multi-edges are rejected.
// Complexity: O(1) (O(capacity) with WithCapacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = make(map[NodeID]struct{}, g.capHint)
	g.edges = make(map[EdgeID]*Edge, g.capHint)
	g.out = make(map[NodeID]map[NodeID]map[EdgeID]struct{}, g.capHint)
	g.in = make(map[NodeID]map[NodeID]map[EdgeID]struct{}, g.capHint)

	return g
}
