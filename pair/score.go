package pair

import "github.com/katalvlaran/bozorth3/minutia"

// DefaultScore is the stock point-weighting callback: every candidate pair
// scores 1, regardless of minutia kind. This reproduces the legacy
// matcher's behavior, where points are simply a pair count.
func DefaultScore(_, _, _, _ minutia.Minutia) uint32 {
	return 1
}

// KindAwareScore rewards pairs whose endpoint kinds agree: 4 points when
// both probe/gallery endpoint pairs share the same kind, 3 when exactly one
// of the two endpoint pairs agrees, 2 when neither does.
func KindAwareScore(probeK, probeJ, galleryK, galleryJ minutia.Minutia) uint32 {
	kAgrees := probeK.Kind == galleryK.Kind
	jAgrees := probeJ.Kind == galleryJ.Kind

	switch {
	case kAgrees && jAgrees:
		return 4
	case kAgrees || jAgrees:
		return 3
	default:
		return 2
	}
}
