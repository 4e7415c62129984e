package pair_test

import (
	"testing"

	"github.com/katalvlaran/bozorth3/angle"
	"github.com/katalvlaran/bozorth3/edge"
	"github.com/katalvlaran/bozorth3/minutia"
	"github.com/katalvlaran/bozorth3/pair"
	"github.com/stretchr/testify/require"
)

func identityScore(pk, pj, gk, gj minutia.Minutia) uint32 { return 1 }

// testFactor mirrors bozorth.NewConfig's default relative-distance factor.
const testFactor float32 = 0.05

func sameEdges() []edge.Edge {
	return []edge.Edge{
		{DistanceSquared: 100, MinBeta: 10, MaxBeta: 50, K: 0, J: 1, ThetaKJ: 30, Order: edge.KJ},
		{DistanceSquared: 400, MinBeta: -20, MaxBeta: 60, K: 1, J: 2, ThetaKJ: 90, Order: edge.JK},
	}
}

func sameMinutiae() []minutia.Minutia {
	return []minutia.Minutia{
		{X: 0, Y: 0, Theta: 0},
		{X: 5, Y: 5, Theta: 10},
		{X: 10, Y: 0, Theta: 20},
	}
}

func TestMatch_IdenticalPrintsProduceDiagonalPairs(t *testing.T) {
	edges := sameEdges()
	ms := sameMinutiae()
	tol := angle.NewTolerance(11)

	ix := pair.NewIndex()
	pair.Match(edges, edges, ms, ms, identityScore, tol, testFactor, false, ix)
	require.Equal(t, 2, ix.Len())

	for i := 0; i < ix.Len(); i++ {
		p := ix.Get(i)
		require.Equal(t, int32(0), p.DeltaTheta)
		require.Equal(t, uint32(1), p.Points)
	}
}

func TestMatch_StrictModeDropsFinalProbeEdge(t *testing.T) {
	edges := sameEdges()
	ms := sameMinutiae()
	tol := angle.NewTolerance(11)

	ix := pair.NewIndex()
	pair.Match(edges, edges, ms, ms, identityScore, tol, testFactor, true, ix)
	require.Equal(t, 1, ix.Len(), "strict mode should skip matching using the last probe edge")
}

func TestMatch_Empty(t *testing.T) {
	ix := pair.NewIndex()
	pair.Match(nil, sameEdges(), sameMinutiae(), sameMinutiae(), identityScore, angle.NewTolerance(11), testFactor, false, ix)
	require.Zero(t, ix.Len())
}

func TestIndex_FindByFirstAndSecond(t *testing.T) {
	edges := sameEdges()
	ms := sameMinutiae()
	tol := angle.NewTolerance(11)

	ix := pair.NewIndex()
	pair.Match(edges, edges, ms, ms, identityScore, tol, testFactor, false, ix)
	ix.Prepare()

	r, end := ix.FindByFirst(0, 0, 0)
	require.False(t, r.Start == r.End, "expected a pair keyed on probe_k=gallery_k=0")
	require.Equal(t, r.End, end)

	indices := ix.FindBySecond(0, 1, 1)
	require.NotEmpty(t, indices)
	for _, i := range indices {
		p := ix.Get(i)
		require.Equal(t, minutia.Endpoint(1), p.ProbeJ)
		require.Equal(t, minutia.Endpoint(1), p.GalleryJ)
	}
}

func TestIndex_ResetClearsState(t *testing.T) {
	edges := sameEdges()
	ms := sameMinutiae()
	ix := pair.NewIndex()
	pair.Match(edges, edges, ms, ms, identityScore, angle.NewTolerance(11), testFactor, false, ix)
	require.NotZero(t, ix.Len())

	ix.Reset()
	require.Zero(t, ix.Len())
	r, _ := ix.FindByFirst(0, 0, 0)
	require.True(t, r.Start == r.End)
}
