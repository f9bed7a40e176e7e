// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_complete.go - complete digraph K_n.
//
// Arcs: for i < j, i → j then j → i. WithBidirectional has no extra effect.
// Complexity: O(n) nodes + O(n(n-1)) arcs.

package builder

import (
	"fmt"

	"github.com/dfacoet/hopgraph/core"
)

// Complete builds the complete directed graph on n nodes (n ≥ MinCompleteNodes).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		base := block(g, n)
		for i := 0; i < n; i++ {
			u := base + core.NodeID(i)
			for j := i + 1; j < n; j++ {
				v := base + core.NodeID(j)
				if _, err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", MethodComplete, u, v, err)
				}
				if _, err := g.AddEdge(v, u); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", MethodComplete, v, u, err)
				}
			}
		}

		return nil
	}
}
