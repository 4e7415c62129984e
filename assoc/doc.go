// Package assoc tracks, during cluster growth, which probe endpoint is
// currently linked to which gallery endpoint. It is a pair of fixed-size
// lookup tables rather than a map: every slot holds 0 for "unassociated" or
// endpoint+1 for "associated with that endpoint", so clearing and querying
// are both O(1) array accesses with no allocation.
package assoc
