// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_cycle.go - directed cycle C_n.
//
// Arcs: i → (i+1) mod n for i = 0..n-1, in that order.
// Complexity: O(n) nodes + O(n) arcs.

package builder

import "github.com/dfacoet/hopgraph/core"

// Cycle builds an n-node directed cycle (n ≥ MinCycleNodes).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		base := block(g, n)
		for i := 0; i < n; i++ {
			u := base + core.NodeID(i)
			v := base + core.NodeID((i+1)%n)
			if err := link(g, cfg, MethodCycle, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
