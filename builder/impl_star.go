// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_star.go - star with the first node of the block as center.
//
// Arcs: 0 → i for i = 1..n-1 (spokes point outward).
// Complexity: O(n) nodes + O(n-1) arcs.

package builder

import "github.com/dfacoet/hopgraph/core"

// Star builds a center with n-1 leaves (n ≥ MinStarNodes).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		center := block(g, n)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, MethodStar, center, center+core.NodeID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
