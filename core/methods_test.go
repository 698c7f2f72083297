// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/labgraph/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph[string, float64]
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph[string, float64]()
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex(VertexA), "empty graph should not have A")

	s.g.AddVertex(VertexA)
	require.True(s.g.HasVertex(VertexA))

	// Idempotence: adding again does not change count
	s.g.AddVertex(VertexA)
	require.Equal(1, s.g.VertexCount())
	require.Equal([]string{VertexA}, s.g.Vertices())
}

func (s *GraphSuite) TestVerticesFollowKeyOrder() {
	for _, v := range []string{VertexD, VertexB, VertexA, VertexC} {
		s.g.AddVertex(v)
	}
	s.Equal([]string{VertexA, VertexB, VertexC, VertexD}, s.g.Vertices())
	s.Equal("A,B,C,D", s.g.String())
}

func (s *GraphSuite) TestPutEdgeAutoAddsEndpoints() {
	require := require.New(s.T())

	// neither endpoint exists
	got := s.g.PutEdge(VertexA, VertexB, Weight2_5)
	require.Equal(Weight2_5, got)
	require.True(s.g.HasVertex(VertexA))
	require.True(s.g.HasVertex(VertexB))

	// only one endpoint exists
	s.g.PutEdge(VertexB, VertexC, Weight1)
	require.Equal(3, s.g.VertexCount())
	require.Equal(2, s.g.EdgeCount())
}

func (s *GraphSuite) TestPutEdgeReplacesLabel() {
	require := require.New(s.T())
	s.g.PutEdge(VertexA, VertexB, Weight1)

	got := s.g.PutEdge(VertexA, VertexB, Weight2_5)
	require.Equal(Weight2_5, got)
	require.Equal(1, s.g.EdgeCount())

	// reverse orientation addresses the same edge
	got = s.g.PutEdge(VertexB, VertexA, Weight4_5)
	require.Equal(Weight4_5, got)
	require.Equal(1, s.g.EdgeCount())

	deg, err := s.g.Degree(VertexA)
	require.NoError(err)
	require.Equal(1, deg)
	deg, err = s.g.Degree(VertexB)
	require.NoError(err)
	require.Equal(1, deg)

	label, ok := s.g.Label(VertexA, VertexB)
	require.True(ok)
	require.Equal(Weight4_5, label)

	// stored orientation is kept from the first insertion
	require.Equal("A:{A,B}(4.5)\nB:{A,B}(4.5)", s.g.StringExtended())
}

func (s *GraphSuite) TestLabelIsOrientationIndependent() {
	s.g.PutEdge(VertexB, VertexA, Weight1_5)

	l1, ok1 := s.g.Label(VertexA, VertexB)
	l2, ok2 := s.g.Label(VertexB, VertexA)
	s.True(ok1)
	s.True(ok2)
	s.Equal(l1, l2)
	s.True(s.g.HasEdge(VertexA, VertexB))
	s.True(s.g.HasEdge(VertexB, VertexA))
}

func (s *GraphSuite) TestLabelAbsent() {
	s.g.AddVertex(VertexA)
	s.g.AddVertex(VertexB)

	_, ok := s.g.Label(VertexA, VertexB)
	s.False(ok, "no edge between A and B")

	_, ok = s.g.Label(VertexX, VertexA)
	s.False(ok, "unknown vertex is absent, not an error")

	s.False(s.g.HasEdge(VertexX, VertexA))
	s.False(s.g.HasEdge(VertexA, VertexX))
}

func (s *GraphSuite) TestRemoveVertexStripsEdges() {
	require := require.New(s.T())
	s.g.PutEdge(VertexA, VertexB, Weight1)
	s.g.PutEdge(VertexA, VertexC, Weight1)
	s.g.PutEdge(VertexB, VertexC, Weight1)

	s.g.RemoveVertex(VertexA)
	require.False(s.g.HasVertex(VertexA))
	for _, x := range []string{VertexA, VertexB, VertexC, VertexX} {
		require.False(s.g.HasEdge(VertexA, x))
		require.False(s.g.HasEdge(x, VertexA))
	}
	require.Equal(1, s.g.EdgeCount())
	require.Equal("B:{B,C}(1.0)\nC:{B,C}(1.0)", s.g.StringExtended())

	// missing vertex: no-op
	s.g.RemoveVertex(VertexX)
	require.Equal(2, s.g.VertexCount())
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	s.g.PutEdge(VertexA, VertexB, Weight2_5)
	s.g.AddVertex(VertexC)

	// unknown endpoint: invalid argument, nothing removed
	_, _, err := s.g.RemoveEdge(VertexA, VertexX)
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, _, err = s.g.RemoveEdge(VertexX, VertexA)
	require.ErrorIs(err, core.ErrVertexNotFound)
	require.Equal(1, s.g.EdgeCount())

	// existing vertices but no edge: absent, unchanged
	before := s.g.StringExtended()
	_, ok, err := s.g.RemoveEdge(VertexA, VertexC)
	require.NoError(err)
	require.False(ok)
	require.Equal(before, s.g.StringExtended())

	// reverse orientation removes the stored edge
	label, ok, err := s.g.RemoveEdge(VertexB, VertexA)
	require.NoError(err)
	require.True(ok)
	require.Equal(Weight2_5, label)
	require.False(s.g.HasEdge(VertexA, VertexB))
	require.Equal(0, s.g.EdgeCount())
	require.True(s.g.HasVertex(VertexA), "vertices survive edge removal")
}

func (s *GraphSuite) TestWeight() {
	require := require.New(s.T())
	s.g.PutEdge(VertexA, VertexB, Weight2_5)

	w, err := s.g.Weight(VertexB, VertexA)
	require.NoError(err)
	require.Equal(Weight2_5, w)

	// no edge, and unknown vertices, weigh zero
	s.g.AddVertex(VertexC)
	w, err = s.g.Weight(VertexA, VertexC)
	require.NoError(err)
	require.Zero(w)
	w, err = s.g.Weight(VertexX, VertexA)
	require.NoError(err)
	require.Zero(w)
}

func (s *GraphSuite) TestIncidentAndNeighbors() {
	require := require.New(s.T())
	s.g.PutEdge(VertexC, VertexA, Weight1)
	s.g.PutEdge(VertexA, VertexB, Weight1)
	s.g.PutEdge(VertexD, VertexA, Weight1)

	nbrs, err := s.g.Neighbors(VertexA)
	require.NoError(err)
	require.Equal([]string{VertexC, VertexB, VertexD}, nbrs, "insertion order, not key order")

	edges, err := s.g.Incident(VertexA)
	require.NoError(err)
	require.Len(edges, 3)
	u, v := edges[0].Endpoints()
	require.Equal(VertexC, u)
	require.Equal(VertexA, v)

	_, err = s.g.Incident(VertexX)
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Neighbors(VertexX)
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Degree(VertexX)
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestSelfLoopAppearsOnce() {
	require := require.New(s.T())
	s.g.PutEdge(VertexA, VertexA, Weight1)

	deg, err := s.g.Degree(VertexA)
	require.NoError(err)
	require.Equal(1, deg)
	require.True(s.g.HasEdge(VertexA, VertexA))
	require.Equal("A:{A,A}(1.0)", s.g.StringExtended())

	_, ok, err := s.g.RemoveEdge(VertexA, VertexA)
	require.NoError(err)
	require.True(ok)
	require.Equal(0, s.g.EdgeCount())

	s.g.PutEdge(VertexA, VertexA, Weight1)
	s.g.RemoveVertex(VertexA)
	require.Equal(0, s.g.EdgeCount())
}

func (s *GraphSuite) TestEdgesEachOnce() {
	s.g.PutEdge(VertexC, VertexD, Weight4_5)
	s.g.PutEdge(VertexA, VertexB, Weight2_5)
	s.g.PutEdge(VertexB, VertexC, Weight1)

	var got []string
	for _, e := range s.g.Edges() {
		got = append(got, e.String())
	}
	s.Equal([]string{"{A,B}(2.5)", "{B,C}(1.0)", "{C,D}(4.5)"}, got)
}

func (s *GraphSuite) TestStringForms() {
	s.Equal("", s.g.String())
	s.Equal("", s.g.StringExtended())

	s.g.PutEdge(VertexA, VertexB, Weight2_5)
	s.g.PutEdge(VertexC, VertexD, Weight4_5)
	s.g.AddVertex(VertexE)
	s.Equal("A,B,C,D,E", s.g.String())
	s.Equal("A:{A,B}(2.5)\nB:{A,B}(2.5)\nC:{C,D}(4.5)\nD:{C,D}(4.5)\nE:", s.g.StringExtended())
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	s.g.PutEdge(VertexA, VertexB, Weight1)
	s.g.PutEdge(VertexB, VertexC, Weight2_5)

	clone := s.g.Clone()
	require.Equal(s.g.StringExtended(), clone.StringExtended())
	require.Equal(s.g.EdgeCount(), clone.EdgeCount())

	clone.PutEdge(VertexA, VertexB, Weight4_5)
	clone.RemoveVertex(VertexC)
	w, err := s.g.Weight(VertexA, VertexB)
	require.NoError(err)
	require.Equal(Weight1, w, "relabel on clone must not leak")
	require.True(s.g.HasVertex(VertexC))

	empty := s.g.CloneEmpty()
	require.Equal(s.g.Vertices(), empty.Vertices())
	require.Zero(empty.EdgeCount())

	s.g.Clear()
	require.Zero(s.g.VertexCount())
	require.Zero(s.g.EdgeCount())
	require.Equal("", s.g.String())
	s.g.PutEdge(VertexB, VertexA, Weight1)
	require.Equal("A,B", s.g.String())
}

func TestGraph_UnweightedLabels(t *testing.T) {
	g := core.NewGraph[string, string]()
	g.PutEdge(VertexA, VertexB, "friends")

	_, err := g.Weight(VertexA, VertexB)
	require.ErrorIs(t, err, core.ErrUnweightedLabel)

	// missing edge still weighs zero for unweighted graphs
	g.AddVertex(VertexC)
	w, err := g.Weight(VertexA, VertexC)
	require.NoError(t, err)
	assert.Zero(t, w)

	// unweighted edges render without a weight suffix
	assert.Equal(t, "A:{A,B}\nB:{A,B}\nC:", g.StringExtended())
}

func TestGraph_WeightedCapabilityLabels(t *testing.T) {
	g := core.NewGraph[string, friendship]()
	g.PutEdge(VertexA, VertexB, friendship{strength: 0.75})

	w, err := g.Weight(VertexA, VertexB)
	require.NoError(t, err)
	assert.Equal(t, 0.75, w)
	assert.Equal(t, "A:{A,B}(0.75)\nB:{A,B}(0.75)", g.StringExtended())
}

func TestGraph_NilPointerLabels(t *testing.T) {
	g := core.NewGraph[string, *toll]()
	g.PutEdge(VertexA, VertexB, nil)
	g.PutEdge(VertexB, VertexC, &toll{fee: 2})

	_, err := g.Weight(VertexA, VertexB)
	require.ErrorIs(t, err, core.ErrUnweightedLabel)
	w, err := g.Weight(VertexB, VertexC)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)

	edges, err := g.Incident(VertexA)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.False(t, edges[0].Weighted())
	assert.Equal(t, "A:{A,B}\nB:{A,B},{B,C}(2.0)\nC:{B,C}(2.0)", g.StringExtended())
}

func TestGraph_WeightNotation(t *testing.T) {
	cases := []struct {
		weight float64
		want   string
	}{
		{0, "A:{A,B}(0.0)"},
		{0.001, "A:{A,B}(0.001)"},
		{9999999.5, "A:{A,B}(9999999.5)"},
		{1e7, "A:{A,B}(1.0E7)"},
		{12345678.9, "A:{A,B}(1.23456789E7)"},
		{1e21, "A:{A,B}(1.0E21)"},
		{1e-4, "A:{A,B}(1.0E-4)"},
		{1.5e-5, "A:{A,B}(1.5E-5)"},
		{-2e8, "A:{A,B}(-2.0E8)"},
		{math.Inf(1), "A:{A,B}(Infinity)"},
	}
	for _, tc := range cases {
		g := core.NewGraph[string, float64]()
		g.PutEdge(VertexA, VertexB, tc.weight)
		line, _, _ := strings.Cut(g.StringExtended(), "\n")
		assert.Equal(t, tc.want, line, "weight %g", tc.weight)
	}
}

func TestGraph_HeterogeneousLabels(t *testing.T) {
	g := core.NewGraph[string, any]()
	g.PutEdge(VertexA, VertexB, 3)
	g.PutEdge(VertexB, VertexC, cost(7))
	g.PutEdge(VertexC, VertexD, "ferry")
	g.PutEdge(VertexD, VertexE, nil)

	w, err := g.Weight(VertexA, VertexB)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)

	w, err = g.Weight(VertexB, VertexC)
	require.NoError(t, err)
	assert.Equal(t, 7.0, w)

	_, err = g.Weight(VertexC, VertexD)
	assert.ErrorIs(t, err, core.ErrUnweightedLabel)
	_, err = g.Weight(VertexD, VertexE)
	assert.ErrorIs(t, err, core.ErrUnweightedLabel)
}

func TestGraph_CustomKeyOrder(t *testing.T) {
	// descending integer keys
	g := core.NewGraphFunc[int, float64](func(a, b int) bool { return a > b })
	g.PutEdge(1, 3, 1)
	g.AddVertex(2)

	assert.Equal(t, []int{3, 2, 1}, g.Vertices())
	assert.Equal(t, "3,2,1", g.String())
	assert.Equal(t, "3:{1,3}(1.0)\n2:\n1:{1,3}(1.0)", g.StringExtended())
}

func TestGraph_LabGraphInvariants(t *testing.T) {
	g := newLabGraph()
	require.Equal(t, 9, g.VertexCount())
	require.Equal(t, 12, g.EdgeCount())

	// every edge sits in exactly its two endpoints' lists
	total := 0
	for _, v := range g.Vertices() {
		edges, err := g.Incident(v)
		require.NoError(t, err)
		for _, e := range edges {
			require.True(t, e.Touches(v))
		}
		total += len(edges)
	}
	assert.Equal(t, 2*g.EdgeCount(), total)
	assert.Len(t, g.Edges(), g.EdgeCount())

	w, err := g.Weight("D", "B")
	require.NoError(t, err)
	assert.Equal(t, Weight1_5, w)
}

func TestWeightOf(t *testing.T) {
	cases := []struct {
		name  string
		label any
		want  float64
		ok    bool
	}{
		{"float64", 2.5, 2.5, true},
		{"float32", float32(0.5), 0.5, true},
		{"int", 4, 4, true},
		{"int64", int64(-3), -3, true},
		{"uint8", uint8(9), 9, true},
		{"named int", cost(11), 11, true},
		{"weighted", friendship{strength: 1.25}, 1.25, true},
		{"weighted pointer", &toll{fee: 3}, 3, true},
		{"nil weighted pointer", (*toll)(nil), 0, false},
		{"string", "road", 0, false},
		{"nil", nil, 0, false},
		{"struct", struct{}{}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := core.WeightOf(tc.label)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
