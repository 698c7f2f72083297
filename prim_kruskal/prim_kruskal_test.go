package prim_kruskal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labgraph/builder"
	"github.com/katalvlaran/labgraph/core"
	"github.com/katalvlaran/labgraph/prim_kruskal"
)

// buildCity constructs a connected five-vertex graph:
//
//	A-B(4), A-C(1), B-C(2), B-D(5), C-D(8), D-E(3), C-E(9).
//
// Its MST is {A-C, B-C, D-E, B-D} with total weight 11.
func buildCity() *core.Graph[string, float64] {
	g := core.NewGraph[string, float64]()
	g.PutEdge("A", "B", 4)
	g.PutEdge("A", "C", 1)
	g.PutEdge("B", "C", 2)
	g.PutEdge("B", "D", 5)
	g.PutEdge("C", "D", 8)
	g.PutEdge("D", "E", 3)
	g.PutEdge("C", "E", 9)

	return g
}

// render returns the edges in the StringExtended edge form.
func render[V comparable, E any](edges []*core.Edge[V, E]) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.String()
	}

	return out
}

func TestKruskal_City(t *testing.T) {
	edges, total, err := prim_kruskal.Kruskal(buildCity())
	require.NoError(t, err)
	assert.Equal(t, 11.0, total)
	assert.Equal(t, []string{"{A,C}(1.0)", "{B,C}(2.0)", "{D,E}(3.0)", "{B,D}(5.0)"}, render(edges))
}

func TestPrim_City(t *testing.T) {
	edges, total, err := prim_kruskal.Prim(buildCity(), "A")
	require.NoError(t, err)
	assert.Equal(t, 11.0, total)
	assert.Equal(t, []string{"{A,C}(1.0)", "{B,C}(2.0)", "{B,D}(5.0)", "{D,E}(3.0)"}, render(edges))

	edges, total, err = prim_kruskal.Prim(buildCity(), "D")
	require.NoError(t, err)
	assert.Equal(t, 11.0, total)
	assert.Equal(t, []string{"{D,E}(3.0)", "{B,D}(5.0)", "{B,C}(2.0)", "{A,C}(1.0)"}, render(edges))
}

func TestMST_TiesFollowInsertionOrder(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)

	star := []string{"{0,1}(1.0)", "{0,2}(1.0)", "{0,3}(1.0)"}
	edges, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Equal(t, star, render(edges))

	edges, _, err = prim_kruskal.Prim(g, "0")
	require.NoError(t, err)
	assert.Equal(t, star, render(edges))
}

func TestMST_TrivialAndInvalid(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal[string, float64](nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim[string, float64](nil, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	empty := core.NewGraph[string, float64]()
	_, _, err = prim_kruskal.Kruskal(empty)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(empty, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	single := core.NewGraph[string, float64]()
	single.AddVertex("A")
	edges, total, err := prim_kruskal.Kruskal(single)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
	edges, _, err = prim_kruskal.Prim(single, "A")
	require.NoError(t, err)
	assert.Empty(t, edges)

	_, _, err = prim_kruskal.Prim(buildCity(), "Z")
	assert.ErrorIs(t, err, prim_kruskal.ErrRootNotFound)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestMST_Disconnected(t *testing.T) {
	g := buildCity()
	g.PutEdge("X", "Y", 1)

	_, _, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, "X")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestMST_Labels(t *testing.T) {
	g := core.NewGraph[string, any]()
	g.PutEdge("A", "B", 2)
	g.PutEdge("B", "C", "ferry")

	_, _, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, core.ErrUnweightedLabel)
	_, _, err = prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, err, core.ErrUnweightedLabel)

	g.PutEdge("B", "C", math.NaN())
	_, _, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidWeight)

	// negative weights are allowed
	g.PutEdge("B", "C", -3)
	edges, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, edges, 2)
	assert.Equal(t, -1.0, total)
}

func TestMST_SelfLoopIgnored(t *testing.T) {
	g := buildCity()
	g.PutEdge("A", "A", 0)

	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		edges, total, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod[string](method))
		require.NoError(t, err, method)
		assert.Equal(t, 11.0, total, method)
		for _, e := range edges {
			assert.False(t, e.IsLoop(), method)
		}
	}
}

func TestCompute_Dispatch(t *testing.T) {
	edges, total, err := prim_kruskal.Compute(buildCity())
	require.NoError(t, err)
	assert.Equal(t, 11.0, total)
	assert.Equal(t, "{A,C}(1.0)", edges[0].String(), "Kruskal by default")

	edges, _, err = prim_kruskal.Compute(buildCity(),
		prim_kruskal.WithMethod[string](prim_kruskal.MethodPrim),
		prim_kruskal.WithRoot("D"),
	)
	require.NoError(t, err)
	assert.Equal(t, "{D,E}(3.0)", edges[0].String())

	// Prim without a root starts at the smallest key
	edges, _, err = prim_kruskal.Compute(buildCity(), prim_kruskal.WithMethod[string](prim_kruskal.MethodPrim))
	require.NoError(t, err)
	assert.Equal(t, "{A,C}(1.0)", edges[0].String())

	_, _, err = prim_kruskal.Compute(buildCity(), prim_kruskal.WithMethod[string]("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestMST_PrimMatchesKruskal(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithSeed(42),
			builder.WithWeightFn(builder.UniformWeightFn(1, 100)),
		},
		builder.Grid(12, 12),
	)
	require.NoError(t, err)

	kEdges, kTotal, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	pEdges, pTotal, err := prim_kruskal.Prim(g, "0,0")
	require.NoError(t, err)

	assert.Len(t, kEdges, g.VertexCount()-1)
	assert.Len(t, pEdges, g.VertexCount()-1)
	assert.InDelta(t, kTotal, pTotal, 1e-9)
}
