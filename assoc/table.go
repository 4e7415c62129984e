package assoc

import "github.com/katalvlaran/bozorth3/minutia"

// Relation classifies how a probe/gallery endpoint pair relates in a Table.
type Relation uint8

const (
	// Unassociated means neither endpoint is linked to anything.
	Unassociated Relation = iota
	// MutuallyAssociated means probe and gallery are linked to each other.
	MutuallyAssociated
	// AssociatedToOther means at least one endpoint is linked, but not to
	// the other one named in the query.
	AssociatedToOther
)

// Table is a bidirectional endpoint association: each probe endpoint links
// to at most one gallery endpoint and vice versa. Slot value 0 means
// unassociated; value v>0 means associated with endpoint v-1, so the zero
// value of Table is already "empty".
type Table struct {
	probeByGallery [minutia.MaxMinutiae]uint16
	galleryByProbe [minutia.MaxMinutiae]uint16
}

// Associate links p and g to each other, overwriting whatever either was
// previously linked to (the caller is responsible for clearing stale
// reverse links first if that matters for its algorithm).
func (t *Table) Associate(p, g minutia.Endpoint) {
	t.probeByGallery[g.AsInt()] = uint16(p) + 1
	t.galleryByProbe[p.AsInt()] = uint16(g) + 1
}

// ClearByProbe removes p's association, along with the matching reverse
// link, if one exists.
func (t *Table) ClearByProbe(p minutia.Endpoint) {
	v := t.galleryByProbe[p.AsInt()]
	if v == 0 {
		return
	}
	t.probeByGallery[v-1] = 0
	t.galleryByProbe[p.AsInt()] = 0
}

// GetByProbe returns the gallery endpoint p is associated with, if any.
func (t *Table) GetByProbe(p minutia.Endpoint) (minutia.Endpoint, bool) {
	v := t.galleryByProbe[p.AsInt()]
	if v == 0 {
		return 0, false
	}
	return minutia.Endpoint(v - 1), true
}

// GetByGallery returns the probe endpoint g is associated with, if any.
func (t *Table) GetByGallery(g minutia.Endpoint) (minutia.Endpoint, bool) {
	v := t.probeByGallery[g.AsInt()]
	if v == 0 {
		return 0, false
	}
	return minutia.Endpoint(v - 1), true
}

// Status reports how p and g currently relate.
func (t *Table) Status(p, g minutia.Endpoint) Relation {
	associatedGallery := t.galleryByProbe[p.AsInt()]
	associatedProbe := t.probeByGallery[g.AsInt()]

	if associatedGallery == 0 && associatedProbe == 0 {
		return Unassociated
	}
	if associatedGallery == uint16(g)+1 && associatedProbe == uint16(p)+1 {
		return MutuallyAssociated
	}
	return AssociatedToOther
}

// Clear resets every association.
func (t *Table) Clear() {
	for i := range t.probeByGallery {
		t.probeByGallery[i] = 0
	}
	for i := range t.galleryByProbe {
		t.galleryByProbe[i] = 0
	}
}
