package angle

import "math"

// Tolerance bounds what counts as "equal" between two angles. A difference
// strictly between Lower and Upper is a mismatch; everything else (close, or
// close modulo 360) counts as equal.
type Tolerance struct {
	Lower int32 // degrees, e.g. 11
	Upper int32 // degrees, 360 - Lower
}

// NewTolerance builds a Tolerance from the lower bound, deriving Upper as
// 360 - lower the way consts.rs derives ANGLE_UPPER_BOUND from
// ANGLE_LOWER_BOUND.
func NewTolerance(lower int32) Tolerance {
	return Tolerance{Lower: lower, Upper: 360 - lower}
}

// Normalize reduces any integer degree value into (-180, 180].
func Normalize(d int32) int32 {
	for d > 180 {
		d -= 360
	}
	for d <= -180 {
		d += 360
	}
	return d
}

// Opposite reports whether a and b differ by exactly 180 degrees
// (a == b-180 when b > 0, a == b+180 otherwise).
func Opposite(a, b int32) bool {
	if b > 0 {
		return a == b-180
	}
	return a == b+180
}

// EqualWithTolerance reports whether a and b are equal under tol: the
// absolute difference must NOT fall strictly between tol.Lower and
// tol.Upper. This makes the predicate both reflexive and symmetric, and
// admits differences near 360 as "equal" too.
func EqualWithTolerance(a, b int32, tol Tolerance) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}

	return !(diff > tol.Lower && diff < tol.Upper)
}

func rounded(x float32) int32 {
	return int32(math.Round(float64(x)))
}

func radToDeg(rad float32) float32 {
	return float32(180.0/math.Pi) * rad
}

// Atan2RoundDegree returns the rounded-to-nearest-integer angle (in degrees)
// of the vector (dx, dy), with the degenerate dx == 0 case fixed at 90
// rather than computed from atan2. The trig itself is computed in float32,
// matching the legacy matcher's f32 arithmetic bit-for-bit at the rounding
// boundary.
func Atan2RoundDegree(dx, dy int32) int32 {
	if dx == 0 {
		return 90
	}

	return rounded(radToDeg(float32(math.Atan2(float64(float32(dy)), float64(float32(dx))))))
}

// SlopeDegrees computes the slope (in integer degrees) of the line through
// the origin and (dx, dy), folding the result back into (-180, 180] and
// handling the vertical case (dx == 0) directly. The dy/dx division and all
// arithmetic after it are float32, matching the legacy matcher's f32 pipeline.
func SlopeDegrees(dx, dy int32) int32 {
	if dx == 0 {
		if dy <= 0 {
			return -90
		}

		return 90
	}

	fi := radToDeg(float32(math.Atan(float64(float32(dy) / float32(dx)))))
	if fi < 0 {
		if dx < 0 {
			fi += 180
		}
	} else {
		if dx < 0 {
			fi -= 180
		}
	}

	result := rounded(fi)
	if result <= -180 {
		return result + 360
	}

	return result
}

// Averager accumulates angles and computes their circular mean, separating
// non-negative and negative values the way the legacy matcher does to avoid
// averaging straight across the -180/180 wraparound.
type Averager struct {
	sumPositive int32
	numPositive int
	sumNegative int32
	numNegative int
}

// Push adds value to the running circular average.
func (a *Averager) Push(value int32) {
	if value < 0 {
		a.sumNegative += value
		a.numNegative++
	} else {
		a.sumPositive += value
		a.numPositive++
	}
}

// Average returns the circular mean of all pushed values, a value in
// (-180, 180]. Calling Average on an empty Averager returns 0.
func (a *Averager) Average() int32 {
	numNegative := a.numNegative
	if numNegative < 1 {
		numNegative = 1
	}
	numPositive := a.numPositive
	if numPositive < 1 {
		numPositive = 1
	}
	numAll := a.numPositive + a.numNegative
	if numAll == 0 {
		return 0
	}

	fi := float32(a.sumPositive)/float32(numPositive) - float32(a.sumNegative)/float32(numNegative)
	if fi > 180 {
		fi = float32(a.sumPositive+a.sumNegative+int32(a.numNegative)*360) / float32(numAll)
		if fi > 180 {
			fi -= 360
		}
	} else {
		fi = float32(a.sumPositive+a.sumNegative) / float32(numAll)
	}

	average := rounded(fi)
	if average <= -180 {
		average += 360
	}

	return average
}

// Average is a convenience wrapper around Averager for the common two-value
// case (e.g. averaging two clusters' delta-theta).
func Average(a, b int32) int32 {
	var avg Averager
	avg.Push(a)
	avg.Push(b)

	return avg.Average()
}
