package cluster

import (
	"github.com/katalvlaran/bozorth3/angle"
	"github.com/katalvlaran/bozorth3/minutia"
	"github.com/katalvlaran/bozorth3/pair"
)

// GrowConfig configures Grow's cluster-construction thresholds.
type GrowConfig struct {
	MinPairsToBuildCluster int
	MaxClusters            int
	MaxGroups              int
	Tolerance              angle.Tolerance
	Strict                 bool
}

// visitedEndpoints is one (probe, gallery) endpoint pair queued during a
// single traversal, recorded so the associations it made can be undone
// once the traversal finishes.
type visitedEndpoints struct {
	probe, gallery minutia.Endpoint
}

// assignClusterToEndpoints is the core traversal step: it decides, based on
// whatever probeEndpoint/galleryEndpoint are currently associated with,
// whether to fold pairIndex into the cluster being grown, queue it for
// further traversal, or record a conflict as a Group for later
// backtracking.
func assignClusterToEndpoints(clusterIndex, pairIndex uint32, probeEndpoint, galleryEndpoint minutia.Endpoint,
	st *State, cfg GrowConfig, toVisit *[]visitedEndpoints) {
	associatedGallery, hasGallery := st.associator.GetByProbe(probeEndpoint)
	associatedProbe, hasProbe := st.associator.GetByGallery(galleryEndpoint)

	switch {
	case !hasGallery && !hasProbe:
		if c, ok := st.assigner.GetCluster(pairIndex); !ok || c != clusterIndex {
			st.selectedPairs = append(st.selectedPairs, pairIndex)
			st.assigner.Assign(pairIndex, clusterIndex)
		}
		st.associator.Associate(probeEndpoint, galleryEndpoint)
		*toVisit = append(*toVisit, visitedEndpoints{probeEndpoint, galleryEndpoint})

	case hasGallery && hasProbe && associatedGallery == galleryEndpoint:
		if c, ok := st.assigner.GetCluster(pairIndex); ok && c == clusterIndex {
			return
		}
		st.selectedPairs = append(st.selectedPairs, pairIndex)
		st.assigner.Assign(pairIndex, clusterIndex)

		if cfg.Strict {
			// The legacy matcher compares to_visit's probe endpoints against
			// pairIndex cast directly into an Endpoint, not against
			// probeEndpoint — a bug we preserve for bit-compatibility.
			buggyKey := minutia.Endpoint(pairIndex)
			shouldInsert := true
			for _, v := range *toVisit {
				if v.probe == buggyKey {
					shouldInsert = false
					break
				}
			}
			if shouldInsert {
				*toVisit = append(*toVisit, visitedEndpoints{probeEndpoint, galleryEndpoint})
			}
		}

	default:
		if cfg.Strict && len(st.groups) >= cfg.MaxGroups {
			return
		}
		if hasGallery {
			mergeIntoGroup(&st.groups, probeSide, probeEndpoint, associatedGallery, galleryEndpoint, cfg.Strict, cfg.MaxGroups)
		}
		if hasProbe {
			mergeIntoGroup(&st.groups, gallerySide, galleryEndpoint, associatedProbe, probeEndpoint, cfg.Strict, cfg.MaxGroups)
		}
	}
}

// traverseEdges grows one cluster outward from startPairIndex, breadth-
// first, via the pair index's endpoint range caches, then undoes every
// association it made (the cluster's membership survives in
// st.selectedPairs and st.assigner; only the associator's transient state
// is rolled back).
func traverseEdges(ix *pair.Index, startPairIndex, clusterIndex uint32, st *State, cfg GrowConfig) {
	var toVisit []visitedEndpoints

	start := ix.Get(int(startPairIndex))
	firstRange, nextNotConnected := ix.FindByFirst(int(startPairIndex), start.ProbeK, start.GalleryK)
	for i := firstRange.Start; i < firstRange.End; i++ {
		p := ix.Get(i)
		assignClusterToEndpoints(clusterIndex, uint32(i), p.ProbeJ, p.GalleryJ, st, cfg, &toVisit)
	}

	cursor := 0
	for cursor < len(toVisit) {
		v := toVisit[cursor]
		cursor++

		for _, i := range ix.FindBySecond(nextNotConnected, v.probe, v.gallery) {
			p := ix.Get(i)
			if p.ProbeK != start.ProbeK && p.GalleryK != start.GalleryK {
				assignClusterToEndpoints(clusterIndex, uint32(i), p.ProbeK, p.GalleryK, st, cfg, &toVisit)
			}
		}

		nextRange, _ := ix.FindByFirst(nextNotConnected, v.probe, v.gallery)
		for i := nextRange.Start; i < nextRange.End; i++ {
			p := ix.Get(i)
			assignClusterToEndpoints(clusterIndex, uint32(i), p.ProbeJ, p.GalleryJ, st, cfg, &toVisit)
		}
	}

	for _, v := range toVisit {
		st.associator.ClearByProbe(v.probe)
	}
}

func calculatePoints(ix *pair.Index, selected []uint32) uint32 {
	var sum uint32
	for _, idx := range selected {
		sum += ix.Get(int(idx)).Points
	}
	return sum
}

func calculateAverageDeltaTheta(ix *pair.Index, selected []uint32) int32 {
	var avg angle.Averager
	for _, idx := range selected {
		avg.Push(ix.Get(int(idx)).DeltaTheta)
	}
	return avg.Average()
}

// filterSelected drops every selected pair whose delta theta disagrees,
// beyond tol, with the set's average delta theta. It filters in place.
func filterSelected(selected []uint32, ix *pair.Index, tol angle.Tolerance) []uint32 {
	average := calculateAverageDeltaTheta(ix, selected)

	out := selected[:0]
	for _, idx := range selected {
		if angle.EqualWithTolerance(ix.Get(int(idx)).DeltaTheta, average, tol) {
			out = append(out, idx)
		}
	}
	return out
}

func calculateAverages(probeMin, galleryMin []minutia.Minutia, ix *pair.Index, selected []uint32) Averages {
	var a Averages
	var avg angle.Averager

	for _, idx := range selected {
		p := ix.Get(int(idx))
		avg.Push(p.DeltaTheta)

		a.ProbeX += probeMin[p.ProbeK.AsInt()].X
		a.ProbeY += probeMin[p.ProbeK.AsInt()].Y
		a.GalleryX += galleryMin[p.GalleryK.AsInt()].X
		a.GalleryY += galleryMin[p.GalleryK.AsInt()].Y
	}

	n := int32(len(selected))
	a.DeltaTheta = avg.Average()
	a.ProbeX /= n
	a.ProbeY /= n
	a.GalleryX /= n
	a.GalleryY /= n
	return a
}

func buildEndpoints(ix *pair.Index, selected []uint32) Endpoints {
	var e Endpoints
	for _, idx := range selected {
		p := ix.Get(int(idx))
		e.setProbe(p.ProbeK.AsInt())
		e.setProbe(p.ProbeJ.AsInt())
		e.setGallery(p.GalleryK.AsInt())
		e.setGallery(p.GalleryJ.AsInt())
	}
	return e
}

func maybeCreateCluster(ix *pair.Index, probeMin, galleryMin []minutia.Minutia, startPairIndex uint32, st *State, cfg GrowConfig) {
	newClusterIndex := uint32(len(st.Clusters))
	st.selectedPairs = st.selectedPairs[:0]

	traverseEdges(ix, startPairIndex, newClusterIndex, st, cfg)

	if len(st.selectedPairs) >= cfg.MinPairsToBuildCluster {
		st.selectedPairs = filterSelected(st.selectedPairs, ix, cfg.Tolerance)
	}

	if len(st.selectedPairs) < cfg.MinPairsToBuildCluster {
		for _, idx := range st.selectedPairs {
			st.assigner.Unassign(idx, cfg.Strict)
		}
		return
	}

	selected := append([]uint32(nil), st.selectedPairs...)
	st.Clusters = append(st.Clusters, Cluster{
		Points:    calculatePoints(ix, selected),
		Averages:  calculateAverages(probeMin, galleryMin, ix, selected),
		Endpoints: buildEndpoints(ix, selected),
		Selected:  selected,
	})
}

// Grow builds every cluster reachable from ix's pairs: it seeds a traversal
// from each not-yet-assigned pair, then backtracks through that seed's
// conflict groups (via FindNextNotConflictingAssociations) to discover every
// alternative cluster the same seed can produce, before moving to the next
// seed. Results accumulate in st.Clusters; call st.Clear first to start a
// fresh comparison.
func Grow(ix *pair.Index, probeMin, galleryMin []minutia.Minutia, cfg GrowConfig, st *State) {
	ix.Prepare()

	limit := ix.Len()
	if cfg.Strict && limit > 0 {
		limit--
	}

	for startIdx := 0; startIdx < limit; startIdx++ {
		if _, ok := st.assigner.GetCluster(uint32(startIdx)); ok {
			continue
		}

		start := ix.Get(startIdx)
		st.associator.Associate(start.ProbeK, start.GalleryK)
		st.groups = st.groups[:0]

		for {
			maybeCreateCluster(ix, probeMin, galleryMin, uint32(startIdx), st, cfg)

			if len(st.Clusters) > cfg.MaxClusters-1 {
				break
			}
			if !FindNextNotConflictingAssociations(st.groups, &st.associator, cfg.Strict) {
				break
			}
		}

		if len(st.Clusters) > cfg.MaxClusters-1 {
			break
		}
		st.associator.ClearByProbe(start.ProbeK)
	}
}
