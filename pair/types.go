package pair

import "github.com/katalvlaran/bozorth3/minutia"

// MaxNumberOfPairs bounds how many pairs a single Match call will ever
// produce, mirroring edge.MaxNumberOfEdges for the pair stage.
const MaxNumberOfPairs = 20000

// Pair records one candidate correspondence between a probe edge and a
// gallery edge: their endpoints line up (within the caller's beta
// tolerance), possibly after a K/J swap when the two edges disagree on
// which endpoint produced MinBeta.
type Pair struct {
	DeltaTheta                         int32
	ProbeK, ProbeJ, GalleryK, GalleryJ minutia.Endpoint
	Points                             uint32
}

// ScoreFunc awards a point value to a candidate pair based on the four
// minutiae it links; Match calls it once per emitted pair.
type ScoreFunc func(probeK, probeJ, galleryK, galleryJ minutia.Minutia) uint32

// Range is a half-open [Start, End) slice of pair indices, as returned by
// the endpoint-range cache.
type Range struct {
	Start, End int
}

func (r Range) empty() bool { return r.Start == r.End }

// optionalRange marks "no pairs for this endpoint combination" with equal
// start/end sentinels rather than a pointer, to keep the MaxMinutiae^2
// cache a flat, allocation-free array.
type optionalRange struct {
	start, end int32
}

const rangeEmpty = -1

func (r optionalRange) toRange(offset int) Range {
	if r.start == rangeEmpty {
		return Range{Start: offset, End: offset}
	}
	return Range{Start: int(r.start), End: int(r.end)}
}

// Index holds the pairs produced by Match, plus the forward/backward sort
// orders and range caches that make endpoint lookups during cluster growth
// O(1) instead of a linear scan. Callers must call Prepare after the last
// Match/reset and before any Find call.
type Index struct {
	forward       []Pair
	forwardRanges []optionalRange // keyed by probe_k*MaxMinutiae + gallery_k

	backward       []int32 // indices into forward, sorted by (probe_j, gallery_j)
	backwardRanges []optionalRange

	dirty bool
}

// NewIndex allocates an Index with its range caches pre-sized for
// minutia.MaxMinutiae endpoints per print.
func NewIndex() *Index {
	size := minutia.MaxMinutiae * minutia.MaxMinutiae
	ix := &Index{
		forward:        make([]Pair, 0, MaxNumberOfPairs),
		forwardRanges:  make([]optionalRange, size),
		backward:       make([]int32, 0, MaxNumberOfPairs),
		backwardRanges: make([]optionalRange, size),
	}
	ix.resetRanges()
	return ix
}

func (ix *Index) resetRanges() {
	for i := range ix.forwardRanges {
		ix.forwardRanges[i] = optionalRange{start: rangeEmpty, end: rangeEmpty}
	}
	for i := range ix.backwardRanges {
		ix.backwardRanges[i] = optionalRange{start: rangeEmpty, end: rangeEmpty}
	}
}

// Reset clears the index so it can be reused for a new probe/gallery pair.
func (ix *Index) Reset() {
	ix.forward = ix.forward[:0]
	ix.backward = ix.backward[:0]
	ix.resetRanges()
	ix.dirty = false
}

// Len reports how many pairs the index currently holds.
func (ix *Index) Len() int { return len(ix.forward) }

// Get returns the pair at the given forward index.
func (ix *Index) Get(i int) Pair { return ix.forward[i] }
