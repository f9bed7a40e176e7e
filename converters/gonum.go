package converters

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dfacoet/hopgraph/bfs"
	"github.com/dfacoet/hopgraph/core"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ErrNilGraph is returned when a nil graph or view is passed in.
var ErrNilGraph = errors.New("converters: graph is nil")

// FromGonum snapshots g. Node k of the result is the k-th smallest gonum
// node ID; the returned slice maps positions back to gonum IDs.
// Every edge reported by g.From becomes an arc, so an undirected gonum graph
// yields both orientations.
//
// Complexity: O(V log V + E log E).
func FromGonum(g graph.Graph) (*core.Snapshot, []int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	slices.Sort(ids)

	pos := make(map[int64]core.NodeID, len(ids))
	for i, id := range ids {
		pos[id] = core.NodeID(i)
	}

	var edges [][2]core.NodeID
	for _, uid := range ids {
		succ := graph.NodesOf(g.From(uid))
		targets := make([]int64, len(succ))
		for i, n := range succ {
			targets[i] = n.ID()
		}
		slices.Sort(targets)
		for _, vid := range targets {
			edges = append(edges, [2]core.NodeID{pos[uid], pos[vid]})
		}
	}

	s, err := core.NewSnapshot(len(ids), edges)
	if err != nil {
		return nil, nil, fmt.Errorf("FromGonum: %w", err)
	}

	return s, ids, nil
}

// ToGonum exports view as a gonum directed graph with node IDs equal to the
// view's NodeIDs. Self-loops are dropped and parallel arcs merged.
func ToGonum(view core.GraphView) (*simple.DirectedGraph, error) {
	dg := simple.NewDirectedGraph()
	if err := export(view, dg, dg.SetEdge); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}

	return dg, nil
}

// ToGonumUndirected exports view with every arc as an undirected edge.
// Self-loops are dropped; u→v and v→u merge into a single edge.
func ToGonumUndirected(view core.GraphView) (*simple.UndirectedGraph, error) {
	ug := simple.NewUndirectedGraph()
	if err := export(view, ug, ug.SetEdge); err != nil {
		return nil, fmt.Errorf("ToGonumUndirected: %w", err)
	}

	return ug, nil
}

// nodeAdder is the part of simple.DirectedGraph and simple.UndirectedGraph
// used by export.
type nodeAdder interface {
	AddNode(graph.Node)
}

func export(view core.GraphView, dst nodeAdder, setEdge func(graph.Edge)) error {
	if view == nil {
		return ErrNilGraph
	}
	// NewIndex rejects negative and duplicate IDs; gonum would panic on them.
	idx, err := bfs.NewIndex(view)
	if err != nil {
		return err
	}
	for p := range idx.Len() {
		dst.AddNode(simple.Node(idx.ID(p)))
	}

	for p := range idx.Len() {
		u := idx.ID(p)
		nbrs, err := view.Neighbors(u, core.Directed)
		if err != nil {
			return fmt.Errorf("node %d: %w", u, err)
		}
		for _, v := range nbrs {
			if _, ok := idx.Position(v); !ok {
				return fmt.Errorf("node %d neighbor %d: %w", u, v, core.ErrNodeNotFound)
			}
			if u == v {
				continue
			}
			setEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		}
	}

	return nil
}
