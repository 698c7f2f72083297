// SPDX-License-Identifier: MIT
// Package: labgraph/builder
//
// topology.go - the classic graph families.
//
// Contract (all constructors):
//   - Vertices are added in ascending index order via cfg.idFn.
//   - Edges are emitted in a fixed order, which fixes every incidence list.
//   - Every edge weight comes from cfg.weightFn(cfg.rng).
//
// Complexity: O(V + E) per constructor.

package builder

import (
	"fmt"
)

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4 // the rim is a cycle of n-1 ≥ 3 vertices
	minCompleteNodes = 1
	minGridDim       = 1
	minSparseNodes   = 1

	gridIDFmt = "%d,%d" // "r,c"
)

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs.
func addVertices(g *Graph, cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		g.AddVertex(ids[i])
	}

	return ids
}

// Path returns a Constructor that builds the path P_n: 0-1-...-(n-1).
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			g.PutEdge(ids[i-1], ids[i], cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the cycle C_n, closing (n-1)-0 last.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			g.PutEdge(ids[i], ids[(i+1)%n], cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Star returns a Constructor that builds the star S_n: the "Center" hub
// joined to n-1 leaves named by indices 1..n-1.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		g.AddVertex(centerVertexID)
		for i := 1; i < n; i++ {
			g.PutEdge(centerVertexID, cfg.idFn(i), cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Wheel returns a Constructor that builds the wheel W_n: a rim cycle of n-1
// vertices plus the "Center" hub joined to each of them.
func Wheel(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("Wheel: base cycle C_%d: %w", n-1, err)
		}
		g.AddVertex(centerVertexID)
		for i := 0; i < n-1; i++ {
			g.PutEdge(centerVertexID, cfg.idFn(i), cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Complete returns a Constructor that builds K_n, emitting pairs (i,j), i<j, row by row.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.PutEdge(ids[i], ids[j], cfg.weightFn(cfg.rng))
			}
		}

		return nil
	}
}

// Grid returns a Constructor that builds a rows×cols lattice with vertices "r,c".
// For each cell in row-major order the right edge is emitted before the down edge.
// The ID scheme is fixed; cfg.idFn is not used.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(fmt.Sprintf(gridIDFmt, r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					g.PutEdge(u, fmt.Sprintf(gridIDFmt, r, c+1), cfg.weightFn(cfg.rng))
				}
				if r+1 < rows {
					g.PutEdge(u, fmt.Sprintf(gridIDFmt, r+1, c), cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor for the Erdős–Rényi graph G(n,p):
// each pair (i,j), i<j, becomes an edge with probability p.
// p strictly between 0 and 1 requires a random source (WithSeed or WithRand).
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minSparseNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		ids := addVertices(g, cfg, n)
		if p == 0 {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && cfg.rng.Float64() >= p {
					continue
				}
				g.PutEdge(ids[i], ids[j], cfg.weightFn(cfg.rng))
			}
		}

		return nil
	}
}
