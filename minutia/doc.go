// Package minutia defines the Minutia data model shared by the rest of the
// matcher — position, orientation, and kind — along with Endpoint (a compact
// index into a minutiae list) and Format (the dy sign convention used when
// deriving edge slopes). It also implements quality-based pruning: selecting
// up to a configured maximum of the highest-quality minutiae and re-indexing
// them in a deterministic (x, y) order.
package minutia
