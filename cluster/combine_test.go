package cluster_test

import (
	"testing"

	"github.com/katalvlaran/bozorth3/cluster"
	"github.com/stretchr/testify/require"
)

func TestCombine_PicksDisjointCompatibleSet(t *testing.T) {
	// 0 <-> 1 <-> 2 all mutually compatible (one-sided, ascending only);
	// 3 is compatible with nothing.
	clusters := []cluster.Cluster{
		{Points: 5, Compatible: []uint32{1, 2}, PointsIncludingCompatible: 5 + 4 + 3},
		{Points: 4, Compatible: []uint32{2}, PointsIncludingCompatible: 4 + 3},
		{Points: 3, PointsIncludingCompatible: 3},
		{Points: 100, PointsIncludingCompatible: 100},
	}

	score, _ := cluster.Combine(clusters, false)
	require.Equal(t, uint32(100), score, "the disjoint singleton with the highest points should win")
}

func TestCombine_SumsCompatibleChain(t *testing.T) {
	clusters := []cluster.Cluster{
		{Points: 5, Compatible: []uint32{1, 2}, PointsIncludingCompatible: 12},
		{Points: 4, Compatible: []uint32{2}, PointsIncludingCompatible: 7},
		{Points: 3, PointsIncludingCompatible: 3},
	}

	score, _ := cluster.Combine(clusters, false)
	require.Equal(t, uint32(12), score, "0+1+2 are all mutually reachable and compatible")
}

func TestCombine_CollectGathersCompatibleIDs(t *testing.T) {
	clusters := []cluster.Cluster{
		{Points: 5, Compatible: []uint32{1}, PointsIncludingCompatible: 9},
		{Points: 4, PointsIncludingCompatible: 4},
	}

	score, collected := cluster.Combine(clusters, true)
	require.Equal(t, uint32(9), score)
	require.Equal(t, []uint32{1}, collected)
}

func TestCombine_Empty(t *testing.T) {
	score, collected := cluster.Combine(nil, true)
	require.Zero(t, score)
	require.Empty(t, collected)
}
