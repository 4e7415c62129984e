package pair

import (
	"github.com/katalvlaran/bozorth3/angle"
	"github.com/katalvlaran/bozorth3/edge"
	"github.com/katalvlaran/bozorth3/minutia"
)

// Match walks probeEdges and galleryEdges (both sorted by DistanceSquared
// ascending, per edge.Build's output order) and, for every probe/gallery
// edge whose squared distances are within the relative factor tolerance and
// whose beta angles agree within tol, appends a Pair to out.
//
// The inner cursor (start) only ever advances, since both edge lists are
// distance-sorted: once a gallery edge's distance has fallen too far below
// the current probe edge's, no earlier gallery edge can satisfy a later
// (necessarily larger-distance) probe edge either.
//
// factor is the legacy matcher's relative-distance-tolerance constant,
// applied as 2*factor*(sum of the two squared distances) against the
// absolute difference of those squared distances, computed in float32 to
// match the legacy matcher's f32 arithmetic (and cluster.compatible's
// identical formula) bit-for-bit at the tolerance boundary.
//
// In strict mode the final probe edge is skipped entirely, reproducing the
// legacy matcher's off-by-one edge-list truncation.
func Match(probeEdges, galleryEdges []edge.Edge, probeMin, galleryMin []minutia.Minutia,
	score ScoreFunc, tol angle.Tolerance, factor float32, strict bool, out *Index) {
	if len(probeEdges) == 0 || len(galleryEdges) == 0 {
		return
	}

	edges := probeEdges
	if strict && len(edges) > 0 {
		edges = edges[:len(edges)-1]
	}

	start := 0
	for _, probe := range edges {
		for j := start; j < len(galleryEdges); j++ {
			gallery := galleryEdges[j]

			dz := gallery.DistanceSquared - probe.DistanceSquared
			fi := 2.0 * factor * float32(gallery.DistanceSquared+probe.DistanceSquared)

			absDz := dz
			if absDz < 0 {
				absDz = -absDz
			}
			if float32(absDz) > fi {
				if dz < 0 {
					start = j + 1
					continue
				}
				break
			}

			if !angle.EqualWithTolerance(probe.MinBeta, gallery.MinBeta, tol) ||
				!angle.EqualWithTolerance(probe.MaxBeta, gallery.MaxBeta, tol) {
				continue
			}

			deltaTheta := probe.ThetaKJ - gallery.ThetaKJ
			if probe.Order != gallery.Order {
				deltaTheta -= 180
			}

			galleryK, galleryJ := gallery.K, gallery.J
			if probe.Order != gallery.Order {
				galleryK, galleryJ = gallery.J, gallery.K
			}

			p := Pair{
				DeltaTheta: angle.Normalize(deltaTheta),
				ProbeK:     probe.K,
				ProbeJ:     probe.J,
				GalleryK:   galleryK,
				GalleryJ:   galleryJ,
				Points: score(
					probeMin[probe.K.AsInt()], probeMin[probe.J.AsInt()],
					galleryMin[galleryK.AsInt()], galleryMin[galleryJ.AsInt()],
				),
			}

			if len(out.forward) == MaxNumberOfPairs {
				return
			}
			out.forward = append(out.forward, p)
			out.dirty = true
		}
	}
}
