package cluster

import (
	"github.com/katalvlaran/bozorth3/assoc"
	"github.com/katalvlaran/bozorth3/minutia"
)

// side tags which print an EndpointGroup's anchor endpoint belongs to; its
// matching endpoints always belong to the other side.
type side uint8

const (
	probeSide side = iota
	gallerySide
)

// Group records one minutia from one print alongside every minutia from the
// other print it could plausibly correspond to, for as long as more than
// one candidate remains live. Index selects which candidate is currently
// tried; lastProbe and hasLast record the probe endpoint that trial
// associated, so it can be undone before trying the next candidate.
type Group struct {
	Endpoint  minutia.Endpoint
	Source    side
	Matching  []minutia.Endpoint
	Index     int
	lastProbe minutia.Endpoint
	hasLast   bool
}

// GroupVec is the live set of groups for one cluster-growth traversal.
type GroupVec []Group

// mergeIntoGroup folds a newly discovered conflict into groups: if endpoint
// already anchors a group, newEndpoint is added to its candidate list;
// otherwise a new group is created seeded with both existingEndpoint and
// newEndpoint.
func mergeIntoGroup(groups *GroupVec, source side, endpoint, existingEndpoint, newEndpoint minutia.Endpoint, strict bool, maxGroups int) {
	if !strict && len(*groups) == maxGroups {
		return
	}

	for i := range *groups {
		g := &(*groups)[i]
		if g.Source == source && g.Endpoint == endpoint {
			for _, m := range g.Matching {
				if m == newEndpoint {
					return
				}
			}
			g.Matching = append(g.Matching, newEndpoint)
			return
		}
	}

	g := Group{
		Endpoint: endpoint,
		Source:   source,
		Matching: []minutia.Endpoint{existingEndpoint, newEndpoint},
		Index:    0,
	}
	if !strict {
		// relaxed mode additionally seeds the pre-existing association so
		// it gets undone like any other trial if backtracking passes over it
		g.lastProbe, g.hasLast = existingEndpoint, true
	}
	*groups = append(*groups, g)
}

// cleanupAssociations undoes every association a group's current trial
// made, readying groups for the next trial.
func cleanupAssociations(groups GroupVec, associator *assoc.Table) {
	for i := range groups {
		g := &groups[i]
		if g.hasLast {
			associator.ClearByProbe(g.lastProbe)
			g.hasLast = false
		}
	}
}

// tryAssociateCurrentEndpoints attempts to associate every group's
// currently-selected candidate, in reverse group order, stopping (and
// leaving partial associations in place for cleanupAssociations to undo) at
// the first conflict.
func tryAssociateCurrentEndpoints(groups GroupVec, associator *assoc.Table, strict bool) bool {
	for i := len(groups) - 1; i >= 0; i-- {
		g := &groups[i]

		var probeEndpoint, galleryEndpoint minutia.Endpoint
		if g.Source == probeSide {
			probeEndpoint, galleryEndpoint = g.Endpoint, g.Matching[g.Index]
		} else {
			galleryEndpoint, probeEndpoint = g.Endpoint, g.Matching[g.Index]
		}

		switch associator.Status(probeEndpoint, galleryEndpoint) {
		case assoc.Unassociated:
			associator.Associate(probeEndpoint, galleryEndpoint)
			g.lastProbe, g.hasLast = probeEndpoint, true
		case assoc.MutuallyAssociated:
			if strict {
				g.lastProbe, g.hasLast = probeEndpoint, true
			}
		case assoc.AssociatedToOther:
			return false
		}
	}
	return true
}

// FindNextNotConflictingAssociations searches, via backtracking over every
// group's candidate list, for the next combination of associations with no
// conflicts. Groups are advanced like a mixed-radix counter whose least
// significant digit is the last group in the slice: the search restarts
// from the end every time an advance leads to a conflict.
func FindNextNotConflictingAssociations(groups GroupVec, associator *assoc.Table, strict bool) bool {
	cleanupAssociations(groups, associator)

	i := len(groups) - 1
	for i >= 0 {
		g := &groups[i]
		if g.Index+1 < len(g.Matching) {
			g.Index++

			if tryAssociateCurrentEndpoints(groups, associator, strict) {
				return true
			}

			cleanupAssociations(groups, associator)
			i = len(groups) - 1
		} else {
			g.Index = 0
			i--
		}
	}
	return false
}
