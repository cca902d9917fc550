package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lerp interpolates linearly from from to to. t is clamped to [0, 1] and the
// endpoints are returned exactly.
func Lerp(from, to Vector3, t float64) Vector3 {
	t = clamp01(t)
	if t == 0 {
		return from
	}
	if t == 1 {
		return to
	}
	return from.MulScalar(1 - t).Add(to.MulScalar(t))
}

// Slerp interpolates along the great-circle arc between the directions of
// from and to. t is clamped to [0, 1]. If either vector has no direction the
// result is Zero.
func Slerp(from, to Vector3, t float64) Vector3 {
	t = clamp01(t)
	if t == 0 {
		return from
	}
	if t == 1 || from.Equal(to) {
		return to
	}

	m := from.Magnitude() * to.Magnitude()
	if IsZero(m) {
		return Zero
	}

	theta := math.Acos(mgl64.Clamp(Dot(from, to)/m, -1, 1))
	if theta == 0 {
		return to
	}

	sinTheta := math.Sin(theta)
	wFrom := math.Sin((1-t)*theta) / sinTheta
	wTo := math.Sin(t*theta) / sinTheta
	return from.MulScalar(wFrom).Add(to.MulScalar(wTo))
}
