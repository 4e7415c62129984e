package minutia

// MaxMinutiae bounds the index space shared by probe and gallery minutiae
// lists; Endpoint values never exceed this.
const MaxMinutiae = 200

// MaxFileMinutiae bounds the raw (pre-prune) minutiae read from a single
// print file.
const MaxFileMinutiae = 1000

// Kind is the discrete minutia type recorded alongside position and
// orientation. It feeds only the pair scoring callback.
type Kind uint8

const (
	// Type0 is a ridge-ending minutia (NIST "RIG").
	Type0 Kind = iota
	// Type1 is a ridge-bifurcation minutia (NIST "BIF").
	Type1
)

// Format selects the sign convention used when deriving an edge's slope
// from a (dx, dy) displacement: NistInternal uses dy as-is, Ansi negates it.
type Format uint8

const (
	// NistInternal is the native NIST minutiae coordinate convention.
	NistInternal Format = iota
	// Ansi is the ANSI/INCITS 378 coordinate convention (y-flipped).
	Ansi
)

// Endpoint is a type-safe index into a minutiae list. The same index space
// is used for both probe and gallery prints; callers disambiguate which
// print an Endpoint refers to by context (see package assoc).
type Endpoint uint16

// AsInt returns e as a plain int, for slice indexing.
func (e Endpoint) AsInt() int { return int(e) }

// Minutia is a single ridge feature: integer coordinates, an orientation in
// degrees in (-180, 180], and a discrete kind.
type Minutia struct {
	X, Y  int32
	Theta int32
	Kind  Kind
}

// Raw is a minutia as read from a file, before pruning: it additionally
// carries a quality score used to select the highest-quality survivors.
type Raw struct {
	X, Y, Theta, Quality int32
	Kind                 Kind
}
