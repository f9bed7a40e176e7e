// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_grid.go - rows×cols lattice with arcs pointing right and down.
//
// Node (r,c) is base + r*cols + c (row-major). For every cell in row-major
// order the right arc (r,c)→(r,c+1) is emitted before the down arc
// (r,c)→(r+1,c). Treated as undirected this is the usual 4-neighborhood grid.
// Complexity: O(R*C) nodes + O(2*R*C) arcs.

package builder

import (
	"fmt"

	"github.com/dfacoet/hopgraph/core"
)

// Grid builds a directed rows×cols grid (each dimension ≥ MinGridDim).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		base := block(g, rows*cols)
		at := func(r, c int) core.NodeID { return base + core.NodeID(r*cols+c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, MethodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, MethodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
