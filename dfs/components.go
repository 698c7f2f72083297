package dfs

import (
	"github.com/katalvlaran/labgraph/core"
)

// Components returns the connected components of g.
//
// Each component lists its vertices in DFS pre-order. Components are ordered
// by their smallest vertex key, which is also the first vertex of each one.
// Isolated vertices form singleton components.
func Components[V comparable, E any](g *core.Graph[V, E]) ([][]V, error) {
	res, err := DFS(g)
	if err != nil {
		return nil, err
	}

	comps := make([][]V, 0, len(res.Roots))
	r := 0
	for _, v := range res.Order {
		// Order is contiguous per tree; a new tree starts at its root.
		if r < len(res.Roots) && v == res.Roots[r] {
			comps = append(comps, nil)
			r++
		}
		comps[len(comps)-1] = append(comps[len(comps)-1], v)
	}

	return comps, nil
}
