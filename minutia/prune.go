package minutia

import "sort"

// Prune selects up to maxMinutiae of the highest-quality raw minutiae and
// returns them re-indexed in ascending (x, y) order — the order in which
// every downstream component (edge building, pruning-dependent endpoint
// indices) expects to see them.
//
// In strict mode the quality-descending selection uses a direct
// transliteration of the legacy matcher's three-way median-of-three
// quicksort (sortOrderDecreasing) so that ties on quality break in the same
// order the legacy matcher breaks them, which in turn makes the subsequent
// (x, y) re-sort produce byte-identical results for strict-mode
// reproduction (spec scenario: "strict vs relaxed"). Relaxed mode uses a
// plain stable sort, which is observably equivalent whenever qualities are
// distinct and merely "a valid but different" tie-break when they are not.
func Prune(raw []Raw, maxMinutiae int, strict bool) []Minutia {
	survivors := make([]Raw, len(raw))
	copy(survivors, raw)

	if len(survivors) > maxMinutiae {
		if strict {
			quality := make([]int32, len(survivors))
			for i, m := range survivors {
				quality[i] = m.Quality
			}
			order := sortOrderDecreasing(quality)
			picked := make([]Raw, maxMinutiae)
			for i, idx := range order[:maxMinutiae] {
				picked[i] = survivors[idx]
			}
			survivors = picked
		} else {
			sort.SliceStable(survivors, func(i, j int) bool {
				return survivors[i].Quality > survivors[j].Quality
			})
			survivors = survivors[:maxMinutiae]
		}
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		if survivors[i].X != survivors[j].X {
			return survivors[i].X < survivors[j].X
		}
		return survivors[i].Y < survivors[j].Y
	})

	out := make([]Minutia, len(survivors))
	for i, m := range survivors {
		out[i] = Minutia{X: m.X, Y: m.Y, Theta: m.Theta, Kind: m.Kind}
	}

	return out
}

// cell pairs an original index with its sort key, mirroring the legacy
// matcher's weird_sort::Cell.
type cell struct {
	index int
	value int32
}

// sortOrderDecreasing returns a permutation of 0..len(values) that visits
// values in descending order, using the legacy matcher's own quicksort
// (median-of-three pivot, iterative via an explicit stack, smaller
// partition recursed into first) rather than Go's sort, so that equal-key
// ties resolve in the same sequence the legacy matcher produces.
func sortOrderDecreasing(values []int32) []int {
	cells := make([]cell, len(values))
	for i, v := range values {
		cells[i] = cell{index: i, value: v}
	}

	if len(cells) > 0 {
		qsortDecreasing(cells, 0, len(cells)-1)
	}

	order := make([]int, len(cells))
	for i, c := range cells {
		order[i] = c.index
	}

	return order
}

func selectPivot(v []cell, left, right int) int {
	mid := (left + right) / 2
	vLeft, vMid, vRight := v[left].value, v[mid].value, v[right].value

	switch {
	case vLeft <= vMid:
		switch {
		case vMid <= vRight:
			return mid
		case vRight > vLeft:
			return right
		default:
			return left
		}
	case vLeft < vRight:
		return left
	case vRight < vMid:
		return mid
	default:
		return right
	}
}

// partitionDec partitions cells[left..=right] around cells[pivot] in
// descending order, returning the bounds of the left and right partitions.
func partitionDec(cells []cell, pivot, left, right int) (leftBegin, leftEnd, rightBegin, rightEnd int) {
	leftBegin, rightEnd = left, right

	for {
		switch {
		case left < pivot:
			if cells[left].value < cells[pivot].value {
				cells[left], cells[pivot] = cells[pivot], cells[left]
				pivot = left
			} else {
				left++
			}
		case right > pivot:
			if cells[right].value > cells[pivot].value {
				cells[right], cells[pivot] = cells[pivot], cells[right]
				pivot = right
				left++
			} else {
				right--
			}
		default:
			leftEnd = pivot - 1
			if leftEnd < 0 {
				leftEnd = 0
			}
			rightBegin = pivot + 1

			return leftBegin, leftEnd, rightBegin, rightEnd
		}
	}
}

func qsortDecreasing(cells []cell, left, right int) {
	type bounds struct{ left, right int }
	stack := []bounds{{left, right}}

	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		left, right = b.left, b.right
		if left >= right {
			continue
		}

		pivot := selectPivot(cells, left, right)
		leftBegin, leftEnd, rightBegin, rightEnd := partitionDec(cells, pivot, left, right)
		leftLen := leftEnd + 1 - leftBegin
		rightLen := rightEnd + 1 - rightBegin

		if leftLen > rightLen {
			stack = append(stack, bounds{leftBegin, leftEnd}, bounds{rightBegin, rightEnd})
		} else {
			stack = append(stack, bounds{rightBegin, rightEnd}, bounds{leftBegin, leftEnd})
		}
	}
}
