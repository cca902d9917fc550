package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ZeroTolerance is the magnitude below which IsZero treats a value as zero.
const ZeroTolerance = 1e-10

// SafeSqrt returns the square root of x, treating negative input as zero.
// Sums of squares can round to a tiny negative value; this keeps them out of NaN.
func SafeSqrt(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Sqrt(x)
}

// SafeInvSqrt returns 1/sqrt(x) for positive x and fallback otherwise.
func SafeInvSqrt(fallback, x float64) float64 {
	if x > 0 {
		return 1 / math.Sqrt(x)
	}
	return fallback
}

// IsZero reports whether |x| is below ZeroTolerance.
func IsZero(x float64) bool {
	return math.Abs(x) < ZeroTolerance
}

func clamp01(t float64) float64 {
	return mgl64.Clamp(t, 0, 1)
}
