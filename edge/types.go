package edge

import "github.com/katalvlaran/bozorth3/minutia"

// MaxNumberOfEdges bounds how many edges Build will ever emit for a single
// print, regardless of minutiae count.
const MaxNumberOfEdges = 20000

// MinNumberOfEdges is the floor Limit will never go under, provided that
// many edges actually exist.
const MinNumberOfEdges = 500

// BetaOrder records which endpoint of an Edge produced MinBeta: KJ means
// MinBeta came from endpoint K (the smaller-x minutia), JK means it came
// from endpoint J.
type BetaOrder uint8

const (
	// KJ: MinBeta is beta_k, MaxBeta is beta_j.
	KJ BetaOrder = iota
	// JK: MinBeta is beta_j, MaxBeta is beta_k.
	JK
)

// Edge is an unordered minutia pair on a single print, with its geometric
// invariants precomputed.
type Edge struct {
	DistanceSquared int32
	MinBeta         int32
	MaxBeta         int32
	K, J            minutia.Endpoint // K has the smaller x coordinate
	ThetaKJ         int32            // slope of the K->J line, in integer degrees
	Order           BetaOrder
}

// BuildConfig configures Build's distance cutoff.
type BuildConfig struct {
	// MaxMinutiaDistance is the linear distance cutoff (not squared) above
	// which an edge is never emitted. Deliberately a distinct knob from
	// LimitConfig.MaxMinutiaDistanceSquared — the legacy matcher used two
	// unrelated constants for "build" and "limit" and this asymmetry is
	// preserved intentionally (see bozorth.Config).
	MaxMinutiaDistance int32
}

// LimitConfig configures Limit's retained-edge-count cutoff.
type LimitConfig struct {
	// MaxMinutiaDistanceSquared is the squared-distance ceiling used only by
	// Limit, independent from BuildConfig.MaxMinutiaDistance.
	MaxMinutiaDistanceSquared int32
	// Strict selects the legacy-style binary search (limitByLengthStrict)
	// over a plain sort.Search for finding the cutoff position.
	Strict bool
}
