package gfx

import "math"

// zeroTolerance is the absolute tolerance used by the approximate float
// comparisons in this package.
const zeroTolerance = 1e-6

// isZero reports whether |a| is below zeroTolerance.
func isZero(a float32) bool {
	return math.Abs(float64(a)) < zeroTolerance
}

// isOne reports whether a is within zeroTolerance of 1.
func isOne(a float32) bool {
	return isZero(a - 1)
}

// nearEqual reports whether a and b are within zeroTolerance of each other
// or at most 4 ULPs apart.
func nearEqual(a, b float32) bool {
	if isZero(a - b) {
		return true
	}
	ai := int32(math.Float32bits(a))
	bi := int32(math.Float32bits(b))
	if (ai < 0) != (bi < 0) {
		return false
	}
	ulp := int64(ai) - int64(bi)
	if ulp < 0 {
		ulp = -ulp
	}
	return ulp <= 4
}
