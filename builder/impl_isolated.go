// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_isolated.go - nodes without edges.

package builder

import (
	"fmt"

	"github.com/dfacoet/hopgraph/core"
)

// Isolated appends n nodes and no arcs. n == 0 is a no-op.
func Isolated(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", MethodIsolated, n, ErrTooFewVertices)
		}
		block(g, n)

		return nil
	}
}
