// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_edgelist.go - explicit arcs over a fresh block of nodes.

package builder

import (
	"fmt"

	"github.com/dfacoet/hopgraph/core"
)

// EdgeList appends n nodes and one arc per pair, in input order. Pair
// endpoints are block-relative indices in 0..n-1. Self-loops and repeated
// pairs are passed to the graph, which accepts them according to its
// WithLoops / WithMultiEdges policy.
func EdgeList(n int, pairs [][2]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", MethodEdgeList, n, ErrTooFewVertices)
		}
		for k, p := range pairs {
			if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
				return fmt.Errorf("%s: pair %d (%d,%d) with n=%d: %w", MethodEdgeList, k, p[0], p[1], n, ErrEndpointOutOfRange)
			}
		}

		base := block(g, n)
		for _, p := range pairs {
			if err := link(g, cfg, MethodEdgeList, base+core.NodeID(p[0]), base+core.NodeID(p[1])); err != nil {
				return err
			}
		}

		return nil
	}
}
