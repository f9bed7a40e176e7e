// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor appends a fresh block of nodes (core.Graph.AddNodes) and wires
//     arcs inside that block only, so constructors compose: Cycle(32) followed by
//     Isolated(32) yields a 64-node graph whose last 32 nodes have no edges.
//   - Arcs are directed. WithBidirectional() adds the reverse of every arc.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/dfacoet/hopgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only add nodes via g.AddNodes and only connect nodes they added.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. one loaded from disk.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Node k of a block is block[0]+k. Arc emission order is documented per
// constructor and stable.
//
//	Cycle(n)            n ≥ 3    i → (i+1) mod n
//	Path(n)             n ≥ 2    i → i+1
//	Grid(rows, cols)    ≥ 1 each r,c → r,c+1 then r,c → r+1,c (row-major ids)
//	Star(n)             n ≥ 2    0 → i for i in 1..n-1
//	Complete(n)         n ≥ 1    i → j for every ordered pair i ≠ j
//	RandomSparse(n, p)  n ≥ 1    each ordered pair with probability p (needs RNG)
//	Isolated(n)         n ≥ 0    nodes only
//	EdgeList(n, pairs)  n ≥ 0    pairs in input order
