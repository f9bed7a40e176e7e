package pathlen_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/dfacoet/hopgraph/bfs"
	"github.com/dfacoet/hopgraph/core"
	"github.com/dfacoet/hopgraph/pathlen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scenario struct {
	name       string
	n          int
	edges      [][2]core.NodeID
	directed   float64
	undirected float64
}

func scenarios() []scenario {
	c32 := cycleEdges(32)
	return []scenario{
		{"branching path", 8, [][2]core.NodeID{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {3, 6}, {6, 7}}, 1.0714285714285714, 2.5714285714285716},
		{"7-cycle", 7, cycleEdges(7), 3.5, 2.0},
		{"5-path", 5, pathEdges(5), 1.0, 2.0},
		{"self-loop singleton", 1, [][2]core.NodeID{{0, 0}}, 0, 0},
		{"32-cycle plus 32 isolated", 64, c32, 15872.0 / 4032, 8192.0 / 4032},
		{"32-cycle", 32, c32, 16.0, 8192.0 / 992},
		{"30x11 grid", 330, gridEdges(30, 11), 3.674772036474164, 13.666666666666666},
		{"32 isolated", 32, nil, 0, 0},
		{"two nodes no edges", 2, nil, 0, 0},
	}
}

// modes covers the sequential fallback and the pool on every scenario.
var modes = map[string][]pathlen.Option{
	"sequential": {pathlen.WithWorkers(1)},
	"parallel":   {pathlen.WithParallelThreshold(0), pathlen.WithWorkers(4)},
	"default":    nil,
}

func TestAverageShortestPathLength_Scenarios(t *testing.T) {
	for _, sc := range scenarios() {
		for modeName, opts := range modes {
			t.Run(sc.name+"/"+modeName, func(t *testing.T) {
				views := []core.GraphView{snapshot(t, sc.n, sc.edges), graph(t, sc.n, sc.edges)}
				for _, v := range views {
					got, err := pathlen.AverageShortestPathLength(v, false, opts...)
					require.NoError(t, err)
					assert.InDelta(t, sc.directed, got, 1e-12, "directed %T", v)

					got, err = pathlen.AverageShortestPathLength(v, true, opts...)
					require.NoError(t, err)
					assert.InDelta(t, sc.undirected, got, 1e-12, "undirected %T", v)
				}
			})
		}
	}
}

func TestAverageShortestPathLength_Empty(t *testing.T) {
	for _, undirected := range []bool{false, true} {
		got, err := pathlen.AverageShortestPathLength(snapshot(t, 0, nil), undirected)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))
	}
}

// TestSymmetricEdgeSet checks that when every arc has its reverse, the two
// modes agree.
func TestSymmetricEdgeSet(t *testing.T) {
	var edges [][2]core.NodeID
	for _, e := range gridEdges(6, 7) {
		edges = append(edges, e, [2]core.NodeID{e[1], e[0]})
	}
	s := snapshot(t, 42, edges)
	d, err := pathlen.AverageShortestPathLength(s, false)
	require.NoError(t, err)
	u, err := pathlen.AverageShortestPathLength(s, true)
	require.NoError(t, err)
	assert.Equal(t, d, u)
}

// TestLoopsAndParallelEdgesAreInert adds noise that must not move the result.
func TestLoopsAndParallelEdgesAreInert(t *testing.T) {
	base := cycleEdges(9)
	noisy := append([][2]core.NodeID{}, base...)
	for i := range 9 {
		noisy = append(noisy, [2]core.NodeID{core.NodeID(i), core.NodeID(i)}, base[i])
	}
	for _, undirected := range []bool{false, true} {
		want, err := pathlen.AverageShortestPathLength(snapshot(t, 9, base), undirected)
		require.NoError(t, err)
		got, err := pathlen.AverageShortestPathLength(graph(t, 9, noisy), undirected, pathlen.WithParallelThreshold(0))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestTotalDistance(t *testing.T) {
	s := snapshot(t, 64, cycleEdges(32))
	tot, err := pathlen.TotalDistance(s, core.Directed, pathlen.WithParallelThreshold(0))
	require.NoError(t, err)
	assert.Equal(t, pathlen.Totals{Nodes: 64, Sum: 15872, ReachablePairs: 992}, tot)

	tot, err = pathlen.TotalDistance(s, core.Undirected)
	require.NoError(t, err)
	assert.Equal(t, pathlen.Totals{Nodes: 64, Sum: 8192, ReachablePairs: 992}, tot)
	assert.InDelta(t, 8192.0/992, tot.ReachableAverage(), 1e-12)

	tot, err = pathlen.TotalDistance(snapshot(t, 0, nil), core.Directed)
	require.NoError(t, err)
	assert.Equal(t, pathlen.Totals{}, tot)
}

func TestAverage_Policy(t *testing.T) {
	assert.True(t, math.IsNaN(pathlen.Average(0, 0)))
	assert.Equal(t, 0.0, pathlen.Average(0, 1))
	assert.Equal(t, 0.0, pathlen.Average(0, 5))
	assert.Equal(t, 3.5, pathlen.Average(147, 7))

	assert.True(t, math.IsNaN(pathlen.ReachableAverage(0, 0, 0)))
	assert.Equal(t, 0.0, pathlen.ReachableAverage(0, 0, 1))
	assert.True(t, math.IsNaN(pathlen.ReachableAverage(0, 0, 4)))
	assert.Equal(t, 2.0, pathlen.ReachableAverage(20, 10, 5))
}

func TestWithReachableOnly(t *testing.T) {
	cases := []struct {
		name       string
		view       core.GraphView
		undirected bool
		want       float64
	}{
		{"5-path directed", snapshot(t, 5, pathEdges(5)), false, 2.0},
		{"5-path undirected", snapshot(t, 5, pathEdges(5)), true, 2.0},
		{"cycle with isolated", snapshot(t, 64, cycleEdges(32)), false, 16.0},
		{"grid directed", snapshot(t, 330, gridEdges(30, 11)), false, 398970.0 / 30360},
		{"singleton", snapshot(t, 1, nil), false, 0},
		{"no edges", snapshot(t, 3, nil), true, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pathlen.AverageShortestPathLength(tc.view, tc.undirected, pathlen.WithReachableOnly())
			require.NoError(t, err)
			if math.IsNaN(tc.want) {
				assert.True(t, math.IsNaN(got), "got %v", got)
				return
			}
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestOptionViolations(t *testing.T) {
	s := snapshot(t, 3, nil)
	for name, opt := range map[string]pathlen.Option{
		"workers":   pathlen.WithWorkers(-1),
		"threshold": pathlen.WithParallelThreshold(-3),
		"budget":    pathlen.WithMaxNodes(-1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := pathlen.AverageShortestPathLength(s, false, opt)
			assert.ErrorIs(t, err, pathlen.ErrOptionViolation)
		})
	}

	_, err := pathlen.TotalDistance(s, core.Direction(3))
	assert.ErrorIs(t, err, pathlen.ErrOptionViolation)
	assert.ErrorIs(t, err, core.ErrUnknownDirection)
}

func TestMaxNodesBudget(t *testing.T) {
	s := snapshot(t, 10, pathEdges(10))
	_, err := pathlen.AverageShortestPathLength(s, false, pathlen.WithMaxNodes(9))
	assert.ErrorIs(t, err, pathlen.ErrResourceExhausted)

	_, err = pathlen.AverageShortestPathLength(s, false, pathlen.WithMaxNodes(10))
	assert.NoError(t, err)
}

// lyingView reports a neighbor that is not part of its node set.
type lyingView struct{ n int }

func (v lyingView) NodeCount() int { return v.n }
func (v lyingView) NodeIDs() []core.NodeID {
	ids := make([]core.NodeID, v.n)
	for i := range ids {
		ids[i] = core.NodeID(i)
	}
	return ids
}
func (v lyingView) Neighbors(id core.NodeID, _ core.Direction) ([]core.NodeID, error) {
	if id == core.NodeID(v.n-1) {
		return []core.NodeID{core.NodeID(v.n + 100)}, nil
	}
	return []core.NodeID{id + 1}, nil
}

// shortView claims more nodes than it lists.
type shortView struct{ lyingView }

func (v shortView) NodeCount() int { return v.n + 1 }

func TestInvalidGraph(t *testing.T) {
	_, err := pathlen.AverageShortestPathLength(nil, false)
	assert.ErrorIs(t, err, pathlen.ErrInvalidGraph)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	for name, opts := range modes {
		t.Run(name, func(t *testing.T) {
			_, err := pathlen.AverageShortestPathLength(lyingView{n: 400}, false, opts...)
			assert.ErrorIs(t, err, pathlen.ErrInvalidGraph)
			assert.ErrorIs(t, err, bfs.ErrUnknownNeighbor)
		})
	}

	_, err = pathlen.AverageShortestPathLength(shortView{lyingView{n: 4}}, true)
	assert.ErrorIs(t, err, pathlen.ErrInvalidGraph)
	assert.ErrorIs(t, err, bfs.ErrInvalidNodeSet)
}

// mutatingView bumps its version on the first neighbor lookup.
type mutatingView struct {
	*core.Snapshot
	version uint64
}

func (m *mutatingView) Neighbors(id core.NodeID, dir core.Direction) ([]core.NodeID, error) {
	m.version = 7
	return m.Snapshot.Neighbors(id, dir)
}

func (m *mutatingView) EachNeighbor(id core.NodeID, dir core.Direction, fn func(core.NodeID)) error {
	m.version = 7
	return m.Snapshot.EachNeighbor(id, dir, fn)
}

func (m *mutatingView) Version() uint64 { return m.version }

func TestGraphMutationDetected(t *testing.T) {
	v := &mutatingView{Snapshot: snapshot(t, 4, pathEdges(4))}
	_, err := pathlen.TotalDistance(v, core.Directed, pathlen.WithWorkers(1))
	assert.ErrorIs(t, err, pathlen.ErrInvalidGraph)
	assert.ErrorIs(t, err, pathlen.ErrGraphMutated)
}

func TestCancellation(t *testing.T) {
	s := snapshot(t, 500, cycleEdges(500))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, opts := range modes {
		t.Run(name, func(t *testing.T) {
			_, err := pathlen.AverageShortestPathLength(s, true, append(opts, pathlen.WithContext(ctx))...)
			assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
			assert.NotErrorIs(t, err, pathlen.ErrInvalidGraph)
		})
	}
}
