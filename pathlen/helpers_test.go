package pathlen_test

import (
	"testing"

	"github.com/dfacoet/hopgraph/core"
	"github.com/stretchr/testify/require"
)

func cycleEdges(n int) [][2]core.NodeID {
	edges := make([][2]core.NodeID, n)
	for i := range n {
		edges[i] = [2]core.NodeID{core.NodeID(i), core.NodeID((i + 1) % n)}
	}
	return edges
}

func pathEdges(n int) [][2]core.NodeID {
	var edges [][2]core.NodeID
	for i := 1; i < n; i++ {
		edges = append(edges, [2]core.NodeID{core.NodeID(i - 1), core.NodeID(i)})
	}
	return edges
}

// gridEdges points arcs right and down on a rows×cols lattice.
func gridEdges(rows, cols int) [][2]core.NodeID {
	var edges [][2]core.NodeID
	for i := range rows {
		for j := range cols {
			k := core.NodeID(i*cols + j)
			if j+1 < cols {
				edges = append(edges, [2]core.NodeID{k, k + 1})
			}
			if i+1 < rows {
				edges = append(edges, [2]core.NodeID{k, k + core.NodeID(cols)})
			}
		}
	}
	return edges
}

func snapshot(t testing.TB, n int, edges [][2]core.NodeID) *core.Snapshot {
	t.Helper()
	s, err := core.NewSnapshot(n, edges)
	require.NoError(t, err)
	return s
}

// graph builds a live core.Graph with n nodes, loops and parallel edges allowed.
func graph(t testing.TB, n int, edges [][2]core.NodeID) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	g.AddNodes(n)
	_, err := g.ExtendFromEdgeList(edges)
	require.NoError(t, err)
	return g
}
