// Package dispatch fans independent probe/gallery comparisons out across a
// worker pool. Each worker owns its own bozorth.State so no comparison
// shares mutable scratch space with another.
package dispatch
