package edge_test

import (
	"testing"

	"github.com/katalvlaran/bozorth3/edge"
	"github.com/katalvlaran/bozorth3/minutia"
	"github.com/stretchr/testify/require"
)

func sampleMinutiae() []minutia.Minutia {
	return []minutia.Minutia{
		{X: 0, Y: 0, Theta: 10},
		{X: 10, Y: 0, Theta: 20},
		{X: 20, Y: 10, Theta: -30},
		{X: 200, Y: 200, Theta: 90}, // far away, should be excluded by distance cutoff
	}
}

func TestBuild_SortedAndBounded(t *testing.T) {
	ms := sampleMinutiae()
	edges := edge.Build(ms, minutia.NistInternal, edge.BuildConfig{MaxMinutiaDistance: 125})
	require.NotEmpty(t, edges)

	for i, e := range edges {
		require.LessOrEqual(t, e.MinBeta, e.MaxBeta, "edge %d", i)
		require.Greater(t, e.MinBeta, int32(-180))
		require.LessOrEqual(t, e.MinBeta, int32(180))
		require.Greater(t, e.MaxBeta, int32(-180))
		require.LessOrEqual(t, e.MaxBeta, int32(180))
	}

	for i := 1; i < len(edges); i++ {
		a, b := edges[i-1], edges[i]
		less := a.DistanceSquared < b.DistanceSquared ||
			(a.DistanceSquared == b.DistanceSquared && a.MinBeta < b.MinBeta) ||
			(a.DistanceSquared == b.DistanceSquared && a.MinBeta == b.MinBeta && a.MaxBeta <= b.MaxBeta)
		require.True(t, less, "edges not sorted at %d: %+v then %+v", i, a, b)
	}

	// the far-away minutia (index 3) must not pair with anything within 125 units
	for _, e := range edges {
		require.False(t, e.K == 3 || e.J == 3, "far minutia should not form an edge")
	}
}

func TestBuild_ExcludesOppositeOrientations(t *testing.T) {
	ms := []minutia.Minutia{
		{X: 0, Y: 0, Theta: 0},
		{X: 1, Y: 1, Theta: 180},
	}
	edges := edge.Build(ms, minutia.NistInternal, edge.BuildConfig{MaxMinutiaDistance: 125})
	require.Empty(t, edges)
}

func TestBuild_Empty(t *testing.T) {
	require.Empty(t, edge.Build(nil, minutia.NistInternal, edge.BuildConfig{MaxMinutiaDistance: 125}))
}

func TestLimit_ClampsToMinAndLen(t *testing.T) {
	var edges []edge.Edge
	for i := 0; i < 10; i++ {
		edges = append(edges, edge.Edge{DistanceSquared: int32(i * 100)})
	}

	n := edge.Limit(edges, edge.LimitConfig{MaxMinutiaDistanceSquared: 0, Strict: false})
	require.Equal(t, len(edges), n, "fewer edges than MinNumberOfEdges means keep them all")

	n = edge.Limit(edges, edge.LimitConfig{MaxMinutiaDistanceSquared: 0, Strict: true})
	require.Equal(t, len(edges), n)
}

func TestLimit_StrictAndRelaxedAgreeOnCutoff(t *testing.T) {
	var edges []edge.Edge
	for i := 0; i < 2000; i++ {
		edges = append(edges, edge.Edge{DistanceSquared: int32(i)})
	}

	relaxed := edge.Limit(edges, edge.LimitConfig{MaxMinutiaDistanceSquared: 900, Strict: false})
	strict := edge.Limit(edges, edge.LimitConfig{MaxMinutiaDistanceSquared: 900, Strict: true})
	require.Equal(t, relaxed, strict)
	require.Equal(t, 901, relaxed)
}
