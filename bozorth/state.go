package bozorth

import (
	"github.com/katalvlaran/bozorth3/cluster"
	"github.com/katalvlaran/bozorth3/pair"
)

// State bundles the scratch space a single probe/gallery comparison needs
// (the matched pair index and the cluster-growth state) so repeated
// MatchScore calls can reuse it instead of allocating fresh slices every
// time — the same pattern the legacy matcher's BozorthState follows.
type State struct {
	Pairs    *pair.Index
	Clusters *cluster.State
}

// NewState allocates a State ready for repeated MatchScore calls.
func NewState() *State {
	return &State{
		Pairs:    pair.NewIndex(),
		Clusters: cluster.NewState(),
	}
}

// Clear resets both the pair index and the cluster state for reuse.
func (s *State) Clear() {
	s.Pairs.Reset()
	s.Clusters.Clear()
}
