// Package dijkstra_test contains unit tests for the Dijkstra implementation.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railway/core"
	"github.com/katalvlaran/railway/dijkstra"
)

type route struct {
	from, to string
	d        int64
}

func build(t testing.TB, routes ...route) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, r := range routes {
		require.NoError(t, g.AddRoute(r.from, r.to, r.d))
	}

	return g
}

func kiwiland(t testing.TB) *core.Graph {
	return build(t,
		route{"A", "B", 5}, route{"B", "C", 4}, route{"C", "D", 8}, route{"D", "C", 8}, route{"D", "E", 6},
		route{"A", "D", 5}, route{"C", "E", 2}, route{"E", "B", 3}, route{"A", "E", 7},
	)
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewGraph())
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource, "empty source has priority over nil graph")

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(kiwiland(t), dijkstra.Source("X"))
	assert.ErrorIs(t, err, core.ErrUnknownCity)

	_, _, err = dijkstra.ShortestPath(kiwiland(t), "A", "X")
	assert.ErrorIs(t, err, core.ErrUnknownCity)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	o := dijkstra.DefaultOptions("A")
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&o) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0)(&o) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0)(&o) })
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

func TestShortestPath_Kiwiland(t *testing.T) {
	tr, d, err := dijkstra.ShortestPath(kiwiland(t), "A", "C")
	require.NoError(t, err)
	assert.EqualValues(t, 9, d)
	assert.Equal(t, "A -> B -> C", tr.String())

	w, err := tr.Weight()
	require.NoError(t, err)
	assert.Equal(t, d, w)
}

func TestShortestPath_SameCity(t *testing.T) {
	tr, d, err := dijkstra.ShortestPath(kiwiland(t), "B", "B")
	require.NoError(t, err)
	assert.Zero(t, d)
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, "B", tr.String())
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := kiwiland(t)
	_, err := g.AddCity("Z")
	require.NoError(t, err)

	_, _, err = dijkstra.ShortestPath(g, "A", "Z")
	assert.ErrorIs(t, err, core.ErrNoRouteFound)

	// nothing leads back to A
	_, _, err = dijkstra.ShortestPath(g, "C", "A")
	assert.ErrorIs(t, err, core.ErrNoRouteFound)
}

func TestDijkstra_AllDistances(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(kiwiland(t), dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 5, "C": 9, "D": 5, "E": 7}, dist)
	assert.Equal(t, "", prev["A"])
	assert.Equal(t, "B", prev["C"])
	assert.Equal(t, []string{"A", "B", "C"}, dijkstra.PathTo(prev, "A", "C"))
}

func TestDijkstra_NoPrevWithoutReturnPath(t *testing.T) {
	_, prev, err := dijkstra.Dijkstra(kiwiland(t), dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestDijkstra_UnreachedStayUnreachable(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(kiwiland(t), dijkstra.Source("C"))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreachable, dist["A"])
	assert.EqualValues(t, 0, dist["C"])
}

func TestDijkstra_TieBreakByName(t *testing.T) {
	// S→A→T and S→B→T both cost 2: A is finalized first, so its relaxation wins.
	g := build(t, route{"S", "B", 1}, route{"S", "A", 1}, route{"B", "T", 1}, route{"A", "T", 1})
	for i := 0; i < 10; i++ {
		tr, d, err := dijkstra.ShortestPath(g, "S", "T")
		require.NoError(t, err)
		assert.EqualValues(t, 2, d)
		assert.Equal(t, "S -> A -> T", tr.String())
	}
}

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(kiwiland(t), dijkstra.Source("A"), dijkstra.WithMaxDistance(6))
	require.NoError(t, err)
	assert.EqualValues(t, 5, dist["B"])
	assert.Equal(t, dijkstra.Unreachable, dist["C"])
	assert.Equal(t, dijkstra.Unreachable, dist["E"])
}

func TestDijkstra_InfThresholdClosesRoute(t *testing.T) {
	g := build(t, route{"A", "B", 2}, route{"B", "C", 4}, route{"A", "C", 5})
	tr, d, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.EqualValues(t, 6, d)
	assert.Equal(t, "A -> B -> C", tr.String())
}

func TestDijkstra_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddRoute("A", "A", 0))
	require.NoError(t, g.AddRoute("A", "B", 3))
	tr, d, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.EqualValues(t, 3, d)
	assert.Equal(t, "A -> B", tr.String())
}

func TestDijkstra_NegativeWeightDetected(t *testing.T) {
	g := kiwiland(t)
	a, _ := g.City("A")
	a.AddRoute("C", -1) // bypasses Graph.AddRoute validation
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestShortestPath_Overflow(t *testing.T) {
	g := build(t, route{"A", "B", math.MaxInt64 / 2}, route{"B", "C", math.MaxInt64 / 2}, route{"C", "D", 2})

	tr, d, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.EqualValues(t, math.MaxInt64-1, d)
	assert.Equal(t, "A -> B -> C", tr.String())

	// D is reachable, but only at a distance past int64.
	_, _, err = dijkstra.ShortestPath(g, "A", "D")
	assert.ErrorIs(t, err, core.ErrDistanceOverflow)
	assert.NotErrorIs(t, err, core.ErrNoRouteFound)

	// with a cap the same city is simply out of range
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(100))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreachable, dist["D"])
}

func TestShortestPath_OverflowAvoidedBySafePath(t *testing.T) {
	g := build(t, route{"A", "B", math.MaxInt64}, route{"B", "C", math.MaxInt64}, route{"A", "C", 7})

	_, d, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.EqualValues(t, 7, d)

	_, _, err = dijkstra.ShortestPath(g, "A", "B")
	assert.ErrorIs(t, err, core.ErrDistanceOverflow)
}

func TestPathTo_Unreached(t *testing.T) {
	assert.Nil(t, dijkstra.PathTo(map[string]string{"B": ""}, "A", "B"))
	assert.Equal(t, []string{"A"}, dijkstra.PathTo(nil, "A", "A"))
}
