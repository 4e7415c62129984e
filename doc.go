// Package bozorth3 (bozorth3-go) is a from-scratch, single-threaded
// fingerprint-minutiae matcher derived from the NIST Bozorth3 algorithm.
//
// Given two minutiae sets — a probe and a gallery print — it computes a
// non-negative integer match score reflecting how much geometric structure
// the two prints share under some rigid rotation/translation.
//
// The engine is split into small, independently testable packages, one per
// concern:
//
//	angle/    — degree-domain arithmetic (normalization, tolerance, circular mean)
//	minutia/  — Minutia/Endpoint/Format types and quality-based pruning
//	edge/     — per-print geometric edges, built and sorted from minutiae
//	pair/     — cross-print edge matching and the two-way pair index
//	assoc/    — the probe<->gallery association table used during growth
//	cluster/  — BFS cluster growth, group backtracking, cluster combination
//	bozorth/  — the orchestrator: ties the above into MatchScore
//
// Thin collaborators sit on top of the core: parsing/ decodes .xyt, .min and
// ISO/IEC 19794-2 files; dispatch/ fans independent probe/gallery
// comparisons out across a worker pool; cmd/bz3match is the CLI.
//
// The core itself never allocates goroutines, never blocks on I/O, and owns
// all of its mutable state in a single bozorth.State value that is cleared
// and reused across matches — see bozorth.State and bozorth.Config.
//
//	go get github.com/katalvlaran/bozorth3
package bozorth3
