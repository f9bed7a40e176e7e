// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_random_sparse.go - Erdős–Rényi style G(n, p) digraph.
//
// Directed: every ordered pair (i, j), i ≠ j, in row-major order gets an arc
// with probability p. Bidirectional: every unordered pair i < j is drawn once
// and, when selected, gets both arcs.
// p == 0 and p == 1 are deterministic and need no RNG.
// Complexity: O(n^2) draws.

package builder

import (
	"fmt"

	"github.com/dfacoet/hopgraph/core"
)

// RandomSparse builds a random digraph with arc probability p.
// Requires an RNG (WithSeed/WithRand) unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		draw := func() bool {
			switch p {
			case MinProbability:
				return false
			case MaxProbability:
				return true
			}
			return cfg.rng.Float64() < p
		}

		base := block(g, n)
		for i := 0; i < n; i++ {
			start := 0
			if cfg.bidirectional {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j || !draw() {
					continue
				}
				if err := link(g, cfg, MethodRandomSparse, base+core.NodeID(i), base+core.NodeID(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
