package edge

import (
	"sort"

	"github.com/katalvlaran/bozorth3/angle"
	"github.com/katalvlaran/bozorth3/minutia"
)

// Build emits every admissible ordered edge (k, j), k < j, over ms, which
// must already be pruned and sorted by (x, y) ascending (minutia.Prune's
// output order). Edges whose minutiae have opposite orientations are
// skipped; edges whose squared distance exceeds cfg.MaxMinutiaDistance
// squared are skipped, with the inner loop breaking early once dx alone
// exceeds the linear cutoff (ms is x-sorted, so all later j only grow
// farther apart in x). Build stops once MaxNumberOfEdges-1 edges have been
// emitted. The result is sorted by (DistanceSquared, MinBeta, MaxBeta).
func Build(ms []minutia.Minutia, format minutia.Format, cfg BuildConfig) []Edge {
	if len(ms) == 0 {
		return nil
	}

	maxDist := cfg.MaxMinutiaDistance
	maxDistSq := maxDist * maxDist

	edges := make([]Edge, 0, len(ms)*4)

main:
	for k := 0; k < len(ms)-1; k++ {
		for j := k + 1; j < len(ms); j++ {
			if angle.Opposite(ms[k].Theta, ms[j].Theta) {
				continue
			}

			dx := ms[j].X - ms[k].X
			dy := ms[j].Y - ms[k].Y
			distSq := dx*dx + dy*dy
			if distSq > maxDistSq {
				if dx > maxDist {
					break
				}
				continue
			}

			dyPrime := dy
			if format == minutia.Ansi {
				dyPrime = -dy
			}
			thetaKJ := angle.Atan2RoundDegree(dx, dyPrime)

			betaK := angle.Normalize(thetaKJ - ms[k].Theta)
			betaJ := angle.Normalize(thetaKJ - ms[j].Theta + 180)

			var e Edge
			e.ThetaKJ = thetaKJ
			e.K = minutia.Endpoint(k)
			e.J = minutia.Endpoint(j)
			if betaK < betaJ {
				e.MinBeta, e.MaxBeta, e.Order = betaK, betaJ, KJ
			} else {
				e.MinBeta, e.MaxBeta, e.Order = betaJ, betaK, JK
			}
			e.DistanceSquared = distSq

			edges = append(edges, e)
			if len(edges) == MaxNumberOfEdges-1 {
				break main
			}
		}
	}

	sort.SliceStable(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.DistanceSquared != b.DistanceSquared {
			return a.DistanceSquared < b.DistanceSquared
		}
		if a.MinBeta != b.MinBeta {
			return a.MinBeta < b.MinBeta
		}
		return a.MaxBeta < b.MaxBeta
	})

	return edges
}

// Limit returns how many of edges (already sorted by Build) to retain: the
// count of edges whose DistanceSquared is within cfg.MaxMinutiaDistanceSquared,
// clamped to [MinNumberOfEdges, len(edges)].
func Limit(edges []Edge, cfg LimitConfig) int {
	var n int
	if cfg.Strict {
		n = limitByLengthStrict(edges, cfg.MaxMinutiaDistanceSquared)
	} else {
		n = sort.Search(len(edges), func(i int) bool {
			return edges[i].DistanceSquared > cfg.MaxMinutiaDistanceSquared
		})
	}

	if n < MinNumberOfEdges {
		n = MinNumberOfEdges
	}
	if n > len(edges) {
		n = len(edges)
	}

	return n
}

// limitByLengthStrict is the strict-mode cutoff search, laid out like the
// legacy matcher's limit_edges_by_length: it halves the bounds [0, len+1]
// until current is the number of leading edges whose distance is within
// maxDistance. On Build's distance-sorted output it returns the same count
// as the relaxed sort.Search path.
func limitByLengthStrict(edges []Edge, maxDistance int32) int {
	lower := 0
	upper := len(edges) + 1
	current := 0

	for upper-lower > 1 {
		mid := (lower + upper) / 2
		if edges[mid-1].DistanceSquared > maxDistance {
			upper = mid
		} else {
			lower = mid
			current = mid
		}
	}

	if current > len(edges) {
		return len(edges)
	}

	return current
}
