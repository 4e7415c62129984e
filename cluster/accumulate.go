package cluster

import (
	"github.com/katalvlaran/bozorth3/angle"
	"github.com/katalvlaran/bozorth3/minutia"
)

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func compatible(a, b Averages, format minutia.Format, tol angle.Tolerance, factor float32) bool {
	if !angle.EqualWithTolerance(b.DeltaTheta, a.DeltaTheta, tol) {
		return false
	}

	probeDx := b.ProbeX - a.ProbeX
	probeDy := b.ProbeY - a.ProbeY
	galleryDx := b.GalleryX - a.GalleryX
	galleryDy := b.GalleryY - a.GalleryY

	probeDistSq := probeDx*probeDx + probeDy*probeDy
	galleryDistSq := galleryDx*galleryDx + galleryDy*galleryDy

	af := 2.0 * factor * float32(probeDistSq+galleryDistSq)
	bf := float32(absInt32(probeDistSq - galleryDistSq))
	if bf > af {
		return false
	}

	avg := angle.Average(a.DeltaTheta, b.DeltaTheta)

	var difference int32
	if format == minutia.Ansi {
		difference = angle.SlopeDegrees(probeDx, -probeDy) - angle.SlopeDegrees(galleryDx, -galleryDy)
	} else {
		difference = angle.SlopeDegrees(probeDx, probeDy) - angle.SlopeDegrees(galleryDx, galleryDy)
	}

	return angle.EqualWithTolerance(avg, angle.Normalize(difference), tol)
}

// AccumulateCompatible fills in each cluster's Compatible list and
// PointsIncludingCompatible by, for every cluster, scanning every
// later-indexed cluster for one that shares no endpoints and whose average
// geometry agrees within tol/factor. The relation is deliberately one-sided
// (cluster i records cluster j as compatible but j does not record i) —
// Combine's DFS only ever walks forward through these lists, so the
// asymmetry doesn't lose candidate combinations, it just avoids storing the
// redundant reverse edge.
func AccumulateCompatible(clusters []Cluster, format minutia.Format, tol angle.Tolerance, factor float32) {
	for i := range clusters {
		var pointsFromOthers uint32
		var compatibleClusters []uint32

		for j := i + 1; j < len(clusters); j++ {
			if Overlap(clusters[i].Endpoints, clusters[j].Endpoints) {
				continue
			}
			if !compatible(clusters[i].Averages, clusters[j].Averages, format, tol, factor) {
				continue
			}

			pointsFromOthers += clusters[j].Points
			compatibleClusters = append(compatibleClusters, uint32(j))
		}

		clusters[i].PointsIncludingCompatible = clusters[i].Points + pointsFromOthers
		clusters[i].Compatible = compatibleClusters
	}
}
