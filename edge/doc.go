// Package edge builds, from a single print's pruned minutiae, the set of
// admissible ordered minutia pairs ("edges") used as the geometric unit of
// comparison between prints. Each edge precomputes the invariants (squared
// distance, the two beta angles, the k->j slope) that pair matching needs,
// and the edge list is globally sorted by (distance squared, min beta, max
// beta) so that matching can walk both prints' edges with a monotonically
// advancing cursor.
package edge
