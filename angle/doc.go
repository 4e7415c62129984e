// Package angle provides degree-domain arithmetic for the bozorth3 matcher:
// normalization into (-180, 180], tolerance-aware equality (including the
// "close modulo 360" case), opposite-angle detection, and the circular mean
// used to average delta-theta rotation estimates across many pairs.
//
// All angles in this package and its callers are integer degrees. Two-value
// functions are provided for the common case; Averager accumulates more than
// two values.
package angle
