package bozorth

import (
	"errors"

	"github.com/katalvlaran/bozorth3/cluster"
	"github.com/katalvlaran/bozorth3/edge"
	"github.com/katalvlaran/bozorth3/minutia"
	"github.com/katalvlaran/bozorth3/pair"
)

// minimumMinutiae is the fewest minutiae either print may have for a
// comparison to proceed at all.
const minimumMinutiae = 10

// ErrTooFewMinutiae is returned when either print has fewer than 10
// minutiae.
var ErrTooFewMinutiae = errors.New("bozorth3: probe or gallery print has fewer than 10 minutiae")

// MatchScore compares probeMin against galleryMin end to end: it builds
// each print's edges, limits them, matches them into candidate pairs, grows
// clusters from those pairs, accumulates which clusters are mutually
// compatible, and returns either the highest PointsIncludingCompatible of any
// cluster (its own points plus those of its later-indexed compatible
// clusters), when that falls below cfg.ScoreThreshold, or otherwise the best
// combination of mutually compatible clusters found by cluster.Combine.
// The returned ids index into the clusters discovered
// during this call; they are not stable across calls.
func MatchScore(probeMin, galleryMin []minutia.Minutia, format minutia.Format,
	score pair.ScoreFunc, cfg Snapshot, st *State) (uint32, []uint32, error) {
	if len(probeMin) < minimumMinutiae || len(galleryMin) < minimumMinutiae {
		return 0, nil, ErrTooFewMinutiae
	}

	st.Clear()

	buildCfg := edge.BuildConfig{MaxMinutiaDistance: cfg.MaxMinutiaDistance}
	limitCfg := edge.LimitConfig{MaxMinutiaDistanceSquared: cfg.MaxMinutiaDistanceSquared, Strict: cfg.StrictMode}

	probeEdges := edge.Build(probeMin, format, buildCfg)
	probeEdges = probeEdges[:edge.Limit(probeEdges, limitCfg)]

	galleryEdges := edge.Build(galleryMin, format, buildCfg)
	galleryEdges = galleryEdges[:edge.Limit(galleryEdges, limitCfg)]

	pair.Match(probeEdges, galleryEdges, probeMin, galleryMin, score, cfg.AngleTolerance, cfg.Factor, cfg.StrictMode, st.Pairs)
	if st.Pairs.Len() == 0 {
		return 0, nil, nil
	}

	growCfg := cluster.GrowConfig{
		MinPairsToBuildCluster: cfg.MinPairsToBuildCluster,
		MaxClusters:            cfg.MaxClusters,
		MaxGroups:              cfg.MaxGroups,
		Tolerance:              cfg.AngleTolerance,
		Strict:                 cfg.StrictMode,
	}
	cluster.Grow(st.Pairs, probeMin, galleryMin, growCfg, st.Clusters)
	if len(st.Clusters.Clusters) == 0 {
		return 0, nil, nil
	}

	cluster.AccumulateCompatible(st.Clusters.Clusters, format, cfg.AngleTolerance, cfg.Factor)

	initialScore, initialClusters := bestSingleSeed(st.Clusters.Clusters)
	if initialScore < cfg.ScoreThreshold {
		return initialScore, initialClusters, nil
	}

	finalScore, combined := cluster.Combine(st.Clusters.Clusters, true)
	return finalScore, combined, nil
}

// bestSingleSeed finds the cluster with the highest PointsIncludingCompatible,
// breaking ties toward the later cluster (matching the legacy matcher's
// Iterator::max_by_key tie-break), and reports it alongside its own id and
// its recorded compatible cluster ids.
func bestSingleSeed(clusters []cluster.Cluster) (uint32, []uint32) {
	if len(clusters) == 0 {
		return 0, nil
	}

	bestScore := clusters[0].PointsIncludingCompatible
	bestIdx := 0
	for i := 1; i < len(clusters); i++ {
		if clusters[i].PointsIncludingCompatible >= bestScore {
			bestScore = clusters[i].PointsIncludingCompatible
			bestIdx = i
		}
	}

	out := append([]uint32{uint32(bestIdx)}, clusters[bestIdx].Compatible...)
	return bestScore, out
}
