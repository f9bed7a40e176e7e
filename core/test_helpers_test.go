// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for hopgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Keep goroutines free of *testing.T fatal calls (collect errors instead).

package core_test

import (
	"testing"

	"github.com/dfacoet/hopgraph/core"
	"github.com/stretchr/testify/require"
)

// Common sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
)

// NewGraphFull returns a Graph with loops and multi-edges enabled.
func NewGraphFull() *core.Graph {
	return core.NewGraph(core.WithLoops(), core.WithMultiEdges())
}

// mustBuild creates a full-featured graph with n nodes and the given edges.
func mustBuild(t *testing.T, n int, edges ...[2]core.NodeID) *core.Graph {
	t.Helper()
	g := NewGraphFull()
	g.AddNodes(n)
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err, "AddEdge(%d,%d)", e[0], e[1])
	}

	return g
}

// ids is a terse NodeID slice literal.
func ids(v ...core.NodeID) []core.NodeID { return v }
