package pair

import (
	"sort"

	"github.com/katalvlaran/bozorth3/minutia"
)

func endpointKey(p, g minutia.Endpoint) int {
	return p.AsInt()*minutia.MaxMinutiae + g.AsInt()
}

// Prepare builds the backward sort order and both range caches from the
// pairs accumulated by Match. It is a no-op if nothing changed since the
// last Prepare. Find* calls are only valid after Prepare.
func (ix *Index) Prepare() {
	if !ix.dirty {
		return
	}

	sort.SliceStable(ix.forward, func(i, j int) bool {
		a, b := ix.forward[i], ix.forward[j]
		if a.ProbeK != b.ProbeK {
			return a.ProbeK < b.ProbeK
		}
		if a.GalleryK != b.GalleryK {
			return a.GalleryK < b.GalleryK
		}
		return a.ProbeJ < b.ProbeJ
	})

	ix.backward = ix.backward[:0]
	for i := range ix.forward {
		ix.backward = append(ix.backward, int32(i))
	}
	sort.SliceStable(ix.backward, func(i, j int) bool {
		a, b := ix.forward[ix.backward[i]], ix.forward[ix.backward[j]]
		if a.ProbeJ != b.ProbeJ {
			return a.ProbeJ < b.ProbeJ
		}
		return a.GalleryJ < b.GalleryJ
	})

	makeRangeCache(ix.forwardRanges, len(ix.forward), func(i int) int {
		p := ix.forward[i]
		return endpointKey(p.ProbeK, p.GalleryK)
	})
	makeRangeCache(ix.backwardRanges, len(ix.backward), func(i int) int {
		p := ix.forward[ix.backward[i]]
		return endpointKey(p.ProbeJ, p.GalleryJ)
	})

	ix.dirty = false
}

// makeRangeCache scans a sequence already grouped (not necessarily sorted
// globally, only contiguous per key) by keyOf and records, for every key
// seen, the contiguous [start, end) span of positions sharing it.
func makeRangeCache(ranges []optionalRange, n int, keyOf func(i int) int) {
	if n == 0 {
		return
	}

	previous := keyOf(0)
	rangeStart := 0
	for i := 1; i < n; i++ {
		current := keyOf(i)
		if current != previous {
			ranges[previous] = optionalRange{start: int32(rangeStart), end: int32(i)}
			previous = current
			rangeStart = i
		}
	}
	ranges[previous] = optionalRange{start: int32(rangeStart), end: int32(n)}
}

func leftTrim(r Range, offset int) Range {
	switch {
	case offset >= r.Start && offset < r.End:
		return Range{Start: offset, End: r.End}
	case offset >= r.End:
		return Range{Start: r.End, End: r.End}
	default:
		return r
	}
}

// FindByFirst returns the (offset-trimmed) range of forward-order pair
// indices whose ProbeK/GalleryK equal p/g, and the range's end — callers
// use that end as the next call's offset to walk monotonically.
func (ix *Index) FindByFirst(offset int, p, g minutia.Endpoint) (Range, int) {
	r := ix.forwardRanges[endpointKey(p, g)].toRange(offset)
	r = leftTrim(r, offset)
	return r, r.End
}

// FindBySecond returns the forward-order pair indices, in backward-sort
// order, whose ProbeJ/GalleryJ equal p/g and whose own index is >= offset.
func (ix *Index) FindBySecond(offset int, p, g minutia.Endpoint) []int {
	r := ix.backwardRanges[endpointKey(p, g)].toRange(offset)
	if r.empty() {
		return nil
	}

	out := make([]int, 0, r.End-r.Start)
	for _, bi := range ix.backward[r.Start:r.End] {
		if int(bi) >= offset {
			out = append(out, int(bi))
		}
	}
	return out
}
