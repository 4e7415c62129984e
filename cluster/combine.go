package cluster

import "sort"

type combineFrame struct {
	cluster   uint32
	connected []uint32
	index     int
}

// intersectionOfSorted returns the elements common to two ascending,
// duplicate-free slices, walking both with a single pass.
func intersectionOfSorted(a, b []uint32) []uint32 {
	var out []uint32
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] > b[j]:
			j++
		case a[i] < b[j]:
			i++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func dedupSortedUint32(s []uint32) []uint32 {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Combine searches for the highest-scoring set of mutually compatible
// clusters, using an explicit DFS stack rather than recursion: each frame
// tracks the clusters still reachable from its own Compatible list that are
// also reachable from every ancestor frame (via intersectionOfSorted), so
// the search only ever explores combinations where every pair is
// compatible. If collect is true, the best path's compatible-cluster ids
// are gathered, sorted, and deduplicated and returned alongside the score;
// otherwise only the score is computed. Scanning stops early for any seed
// cluster whose own PointsIncludingCompatible can't beat the current best.
func Combine(clusters []Cluster, collect bool) (uint32, []uint32) {
	var stack []combineFrame
	var bestScore uint32
	var best []uint32

	for clusterIndex := range clusters {
		if bestScore >= clusters[clusterIndex].PointsIncludingCompatible {
			continue
		}

		stack = append(stack, combineFrame{
			cluster:   uint32(clusterIndex),
			connected: clusters[clusterIndex].Compatible,
		})

		for len(stack) > 0 {
			last := &stack[len(stack)-1]
			if last.index < len(last.connected) {
				next := last.connected[last.index]
				connected := intersectionOfSorted(last.connected, clusters[next].Compatible)
				stack = append(stack, combineFrame{cluster: next, connected: connected})
				continue
			}

			if len(last.connected) == 0 {
				var score uint32
				for _, f := range stack {
					score += clusters[f.cluster].Points
				}
				if score > bestScore {
					bestScore = score
					if collect {
						var collected []uint32
						for _, f := range stack {
							collected = append(collected, clusters[f.cluster].Compatible...)
						}
						sort.Slice(collected, func(i, j int) bool { return collected[i] < collected[j] })
						best = dedupSortedUint32(collected)
					}
				}
			}

			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				stack[len(stack)-1].index++
			}
		}
	}

	return bestScore, best
}
