package cluster

import "github.com/katalvlaran/bozorth3/assoc"

// State is the reusable scratch space Grow needs across one probe/gallery
// comparison: the clusters discovered so far, the endpoint associator, the
// pair-to-cluster assignment table, and the live backtracking groups.
type State struct {
	Clusters []Cluster

	associator    assoc.Table
	assigner      *Assigner
	groups        GroupVec
	selectedPairs []uint32
}

// NewState allocates a State ready for repeated use.
func NewState() *State {
	return &State{
		assigner: NewAssigner(),
	}
}

// Clear resets all scratch state so the State can be reused for a new
// probe/gallery comparison.
func (s *State) Clear() {
	s.Clusters = s.Clusters[:0]
	s.associator.Clear()
	s.assigner.Clear()
	s.groups = s.groups[:0]
	s.selectedPairs = s.selectedPairs[:0]
}
