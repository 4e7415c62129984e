package minutia_test

import (
	"testing"

	"github.com/katalvlaran/bozorth3/minutia"
	"github.com/stretchr/testify/require"
)

func rawSet() []minutia.Raw {
	return []minutia.Raw{
		{X: 5, Y: 1, Theta: 10, Quality: 90},
		{X: 1, Y: 2, Theta: 20, Quality: 50},
		{X: 3, Y: 0, Theta: 30, Quality: 99},
		{X: 2, Y: 2, Theta: 40, Quality: 10},
		{X: 4, Y: 4, Theta: 50, Quality: 70},
	}
}

func TestPrune_NoTruncationSortsByXY(t *testing.T) {
	out := minutia.Prune(rawSet(), 10, true)
	require.Len(t, out, 5)
	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1], out[i]
		if prev.X > cur.X || (prev.X == cur.X && prev.Y > cur.Y) {
			t.Errorf("not sorted by (x,y) at %d: %+v then %+v", i, prev, cur)
		}
	}
}

func TestPrune_TruncatesByQuality(t *testing.T) {
	strict := minutia.Prune(rawSet(), 3, true)
	relaxed := minutia.Prune(rawSet(), 3, false)
	require.Len(t, strict, 3)
	require.Len(t, relaxed, 3)

	// Both modes must keep the three highest-quality minutiae (90, 99, 70),
	// i.e. drop the (50) and (10) quality ones, regardless of tie-break order.
	wantX := map[int32]bool{5: true, 3: true, 4: true}
	for _, m := range strict {
		require.True(t, wantX[m.X], "strict kept unexpected minutia %+v", m)
	}
	for _, m := range relaxed {
		require.True(t, wantX[m.X], "relaxed kept unexpected minutia %+v", m)
	}
}

func TestPrune_Empty(t *testing.T) {
	out := minutia.Prune(nil, 5, true)
	require.Empty(t, out)
}
