package converters_test

import (
	"math"
	"testing"

	"github.com/dfacoet/hopgraph/bfs"
	"github.com/dfacoet/hopgraph/builder"
	"github.com/dfacoet/hopgraph/converters"
	"github.com/dfacoet/hopgraph/core"
	"github.com/dfacoet/hopgraph/pathlen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// oracle sums finite hop distances over ordered pairs using gonum's
// all-pairs Dijkstra with uniform edge cost.
func oracle(g graph.Graph) (sum, pairs int64) {
	all := path.DijkstraAllPaths(g)
	nodes := graph.NodesOf(g.Nodes())
	for _, u := range nodes {
		for _, v := range nodes {
			if u.ID() == v.ID() {
				continue
			}
			w := all.Weight(u.ID(), v.ID())
			if math.IsInf(w, 1) {
				continue
			}
			sum += int64(w)
			pairs++
		}
	}
	return sum, pairs
}

// TestTotalDistance_MatchesGonum cross-checks hop sums against gonum on
// generated graphs, in both direction modes.
func TestTotalDistance_MatchesGonum(t *testing.T) {
	cases := []struct {
		name  string
		bopts []builder.BuilderOption
		cons  []builder.Constructor
	}{
		{"cycle 12", nil, []builder.Constructor{builder.Cycle(12)}},
		{"grid 6x4", nil, []builder.Constructor{builder.Grid(6, 4)}},
		{"star + isolated", nil, []builder.Constructor{builder.Star(6), builder.Isolated(3)}},
		{"random sparse", []builder.BuilderOption{builder.WithSeed(7)}, []builder.Constructor{builder.RandomSparse(40, 0.06)}},
		{"random sparse bidirectional", []builder.BuilderOption{builder.WithSeed(11), builder.WithBidirectional()}, []builder.Constructor{builder.RandomSparse(40, 0.05)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.bopts, tc.cons...)
			require.NoError(t, err)

			dg, err := converters.ToGonum(g)
			require.NoError(t, err)
			wantSum, wantPairs := oracle(dg)
			got, err := pathlen.TotalDistance(g, core.Directed)
			require.NoError(t, err)
			assert.Equal(t, wantSum, got.Sum, "directed sum")
			assert.Equal(t, wantPairs, got.ReachablePairs, "directed pairs")

			ug, err := converters.ToGonumUndirected(g)
			require.NoError(t, err)
			wantSum, wantPairs = oracle(ug)
			got, err = pathlen.TotalDistance(g, core.Undirected)
			require.NoError(t, err)
			assert.Equal(t, wantSum, got.Sum, "undirected sum")
			assert.Equal(t, wantPairs, got.ReachablePairs, "undirected pairs")
		})
	}
}

// TestToGonum_DropsLoopsAndMergesParallel checks the simple-graph projection.
func TestToGonum_DropsLoopsAndMergesParallel(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	g.AddNodes(3)
	_, err := g.ExtendFromEdgeList([][2]core.NodeID{{0, 1}, {0, 1}, {1, 1}, {1, 0}, {2, 1}})
	require.NoError(t, err)

	dg, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, 3, dg.Nodes().Len())
	assert.Equal(t, 3, dg.Edges().Len())
	assert.True(t, dg.HasEdgeFromTo(2, 1))
	assert.False(t, dg.HasEdgeFromTo(1, 2))
	assert.False(t, dg.HasEdgeFromTo(1, 1))

	ug, err := converters.ToGonumUndirected(g)
	require.NoError(t, err)
	assert.Equal(t, 2, ug.Edges().Len())
	assert.True(t, ug.HasEdgeBetween(1, 2))
}

// TestToGonum_KeepsIDs exports a graph with removed nodes and checks that the
// surviving IDs carry over.
func TestToGonum_KeepsIDs(t *testing.T) {
	g := core.NewGraph()
	g.AddNodes(4)
	require.NoError(t, g.RemoveNode(1))
	_, err := g.AddEdge(3, 0)
	require.NoError(t, err)

	dg, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Nil(t, dg.Node(1))
	assert.NotNil(t, dg.Node(2))
	assert.True(t, dg.HasEdgeFromTo(3, 0))
}

// negView lists a negative ID.
type negView struct{}

func (negView) NodeCount() int         { return 1 }
func (negView) NodeIDs() []core.NodeID { return []core.NodeID{-1} }
func (negView) Neighbors(core.NodeID, core.Direction) ([]core.NodeID, error) {
	return nil, nil
}

// strayView reports a neighbor outside its node set.
type strayView struct{}

func (strayView) NodeCount() int         { return 1 }
func (strayView) NodeIDs() []core.NodeID { return []core.NodeID{0} }
func (strayView) Neighbors(core.NodeID, core.Direction) ([]core.NodeID, error) {
	return []core.NodeID{5}, nil
}

func TestToGonum_Errors(t *testing.T) {
	_, err := converters.ToGonum(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)

	_, err = converters.ToGonumUndirected(negView{})
	assert.ErrorIs(t, err, bfs.ErrInvalidNodeSet)
	assert.ErrorIs(t, err, core.ErrNegativeNodeID)

	_, err = converters.ToGonum(strayView{})
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, _, err = converters.FromGonum(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)
}

// TestFromGonum_Reindexes maps sparse gonum IDs to dense positions.
func TestFromGonum_Reindexes(t *testing.T) {
	dg := simple.NewDirectedGraph()
	dg.SetEdge(simple.Edge{F: simple.Node(10), T: simple.Node(20)})
	dg.SetEdge(simple.Edge{F: simple.Node(20), T: simple.Node(-5)})

	s, ids, err := converters.FromGonum(dg)
	require.NoError(t, err)
	assert.Equal(t, []int64{-5, 10, 20}, ids)
	assert.Equal(t, 3, s.NodeCount())
	assert.Equal(t, 2, s.EdgeCount())

	nb, err := s.Neighbors(1, core.Directed)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2}, nb)

	tot, err := pathlen.TotalDistance(s, core.Directed)
	require.NoError(t, err)
	assert.Equal(t, pathlen.Totals{Nodes: 3, Sum: 4, ReachablePairs: 3}, tot)
}

// TestFromGonum_Undirected emits both orientations of every edge.
func TestFromGonum_Undirected(t *testing.T) {
	ug := simple.NewUndirectedGraph()
	for i := range int64(4) {
		ug.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(i + 1)})
	}

	s, _, err := converters.FromGonum(ug)
	require.NoError(t, err)
	assert.Equal(t, 8, s.EdgeCount())

	avg, err := pathlen.AverageShortestPathLength(s, false)
	require.NoError(t, err)
	assert.Equal(t, 2.0, avg)
}

// TestRoundTrip_PreservesAverages exports and re-imports a multigraph.
func TestRoundTrip_PreservesAverages(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
		[]builder.BuilderOption{builder.WithSeed(3)},
		builder.RandomSparse(30, 0.08), builder.EdgeList(3, [][2]int{{0, 0}, {0, 1}, {0, 1}}),
	)
	require.NoError(t, err)

	dg, err := converters.ToGonum(g)
	require.NoError(t, err)
	s, _, err := converters.FromGonum(dg)
	require.NoError(t, err)

	for _, undirected := range []bool{false, true} {
		want, err := pathlen.AverageShortestPathLength(g, undirected)
		require.NoError(t, err)
		got, err := pathlen.AverageShortestPathLength(s, undirected)
		require.NoError(t, err)
		assert.Equal(t, want, got, "undirected=%v", undirected)
	}
}
