package cluster

import "github.com/katalvlaran/bozorth3/pair"

// MarkerUnassigned is the strict-mode sentinel Assigner.Unassign writes
// instead of the zero value, so a pair that was assigned and then
// explicitly unassigned is distinguishable from one that was never
// assigned at all. Relaxed mode intentionally does not make this
// distinction and just zeroes the slot.
const MarkerUnassigned = ^uint32(0)

// Assigner maps pair indices to the cluster that currently owns them.
// Slot 0 means "unassigned"; slot v>0 means cluster v-1.
type Assigner struct {
	clusterByPair []uint32
}

// NewAssigner allocates an Assigner sized for pair.MaxNumberOfPairs pairs.
func NewAssigner() *Assigner {
	return &Assigner{clusterByPair: make([]uint32, pair.MaxNumberOfPairs)}
}

// Clear resets every pair to unassigned.
func (a *Assigner) Clear() {
	for i := range a.clusterByPair {
		a.clusterByPair[i] = 0
	}
}

// GetCluster returns the cluster assigned to pairIndex, if any.
func (a *Assigner) GetCluster(pairIndex uint32) (uint32, bool) {
	v := a.clusterByPair[pairIndex]
	if v == 0 {
		return 0, false
	}
	return v - 1, true
}

// Assign records that cluster owns pairIndex.
func (a *Assigner) Assign(pairIndex, cluster uint32) {
	a.clusterByPair[pairIndex] = cluster + 1
}

// Unassign releases pairIndex. In strict mode it writes MarkerUnassigned
// rather than zero, reproducing the legacy matcher's distinct "explicitly
// released" state.
func (a *Assigner) Unassign(pairIndex uint32, strict bool) {
	if strict {
		a.clusterByPair[pairIndex] = MarkerUnassigned
	} else {
		a.clusterByPair[pairIndex] = 0
	}
}
