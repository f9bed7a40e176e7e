// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// helpers.go - shared primitives for constructors.

package builder

import (
	"fmt"

	"github.com/dfacoet/hopgraph/core"
)

// block appends n nodes to g and returns the ID of the first. Constructors
// address node k of their block as base+k.
func block(g *core.Graph, n int) core.NodeID {
	ids := g.AddNodes(n)
	if len(ids) == 0 {
		return 0
	}

	return ids[0]
}

// link adds u→v and, when cfg.bidirectional is set, v→u.
// Errors are wrapped with the method name and both endpoints.
func link(g *core.Graph, cfg builderConfig, method string, u, v core.NodeID) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, u, v, err)
	}
	if cfg.bidirectional {
		if _, err := g.AddEdge(v, u); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, v, u, err)
		}
	}

	return nil
}

// validateMin returns ErrTooFewVertices when n < min.
func validateMin(method, param string, n, lo int) error {
	if n < lo {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, n, lo, ErrTooFewVertices)
	}

	return nil
}
