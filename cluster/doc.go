// Package cluster grows groups of mutually consistent pairs ("clusters")
// from a matched pair index, finds which clusters can coexist (disjoint
// endpoints, compatible geometry), and searches for the best-scoring
// combination of coexisting clusters.
//
// Grow reproduces the legacy matcher's traversal: starting from an
// unassigned pair, it walks the pair index breadth-first, associating probe
// and gallery endpoints as it goes; when an endpoint it wants to associate
// is already taken, it records the conflict in a Group instead of failing
// outright, and once the traversal is exhausted it backtracks through every
// group's alternative associations before giving up on that seed pair.
package cluster
