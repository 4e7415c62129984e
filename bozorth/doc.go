// Package bozorth orchestrates the full probe-versus-gallery comparison:
// matching edges into pairs, growing clusters, and combining the best
// disjoint set of clusters into a final score. Config holds the tunable
// thresholds as atomics so they can be adjusted between comparisons without
// a lock, while MatchScore takes a Snapshot — a plain value copy — so a
// single comparison always sees a consistent set of thresholds even if
// another goroutine reconfigures Config mid-flight.
package bozorth
