// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_path.go - directed path P_n.
//
// Arcs: i-1 → i for i = 1..n-1.
// Complexity: O(n) nodes + O(n-1) arcs.

package builder

import "github.com/dfacoet/hopgraph/core"

// Path builds an n-node directed path (n ≥ MinPathNodes).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		base := block(g, n)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, MethodPath, base+core.NodeID(i-1), base+core.NodeID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
