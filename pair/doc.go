// Package pair matches edges from two prints into candidate point
// correspondences ("pairs") and indexes the result for the cluster growth
// pass. Match walks both edge lists (already sorted by distance squared)
// with a monotonically advancing cursor so the whole cross product is never
// materialized; Index then builds forward and backward sort orders plus a
// dense endpoint-pair range cache so cluster growth can look up, in O(1), all
// pairs sharing a given probe/gallery endpoint.
package pair
