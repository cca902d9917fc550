package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagnitude(t *testing.T) {
	assert.Equal(t, 5.0, NewVector3(3, 4, 0).Magnitude())
	assert.Equal(t, 25.0, NewVector3(3, 4, 0).SquaredMagnitude())
	assert.Equal(t, 0.0, Zero.Magnitude())
	assert.True(t, math.IsInf(PositiveInfinity.Magnitude(), 1))
	assert.True(t, math.IsNaN(NewVector3(math.NaN(), 0, 0).Magnitude()))
}

func TestDotMatchesSquaredMagnitude(t *testing.T) {
	for _, v := range sampleVectors {
		assert.Equal(t, v.SquaredMagnitude(), Dot(v, v))
	}
	assert.Equal(t, 32.0, Dot(NewVector3(1, 2, 3), NewVector3(4, 5, 6)))
	assert.Equal(t, 0.0, Dot(UnitX, UnitY))
}

func TestCross(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	assert.Equal(t, Vector3{-3, 6, -3}, Cross(a, b))
	assert.Equal(t, Vector3{-3, 6, -3}, a.Cross(b))
	assert.Equal(t, Vector3{3, -6, 3}, b.Cross(a))
	assert.Equal(t, UnitZ, Cross(UnitX, UnitY))
	assert.Equal(t, UnitX, Cross(UnitY, UnitZ))
	assert.Equal(t, UnitY, Cross(UnitZ, UnitX))

	for _, v := range sampleVectors[:3] {
		assert.True(t, Cross(v, v).Equal(Zero), "Cross(v, v), v=%v", v)
	}
}

func TestNormalize(t *testing.T) {
	testCases := []Vector3{
		{3, 4, 0},
		{1, 1, 1},
		{-0.001, 0.002, 0.0005},
		{1e150, -2e150, 3e150},
	}

	for _, v := range testCases {
		n := v.Normalized()
		assert.True(t, almostEqual(1, n.Magnitude()), "|Normalized(%v)| = %v", v, n.Magnitude())

		m := v
		m.Normalize()
		assert.Equal(t, n, m)
	}

	v := NewVector3(3, 4, 0)
	_ = v.Normalized()
	assert.Equal(t, Vector3{3, 4, 0}, v)
	assert.True(t, v.Normalized().ApproxEqual(NewVector3(0.6, 0.8, 0), float64EqualityThreshold))
}

func TestNormalizeZeroVector(t *testing.T) {
	assert.Equal(t, Zero, Zero.Normalized())

	v := Zero
	v.Normalize()
	assert.Equal(t, Zero, v)
}

func TestAbs(t *testing.T) {
	v := NewVector3(-1, 2, -3)
	assert.Equal(t, Vector3{1, 2, 3}, v.Absolute())
	assert.Equal(t, Vector3{-1, 2, -3}, v)

	v.Abs()
	assert.Equal(t, Vector3{1, 2, 3}, v)
}

func TestDistance(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 6, 3)

	assert.Equal(t, 5.0, Distance(a, b))
	assert.Equal(t, 25.0, SquaredDistance(a, b))
	assert.Equal(t, Distance(a, b), Distance(b, a))
	assert.Equal(t, 0.0, Distance(a, a))

	for _, p := range sampleVectors {
		for _, q := range sampleVectors {
			assert.Equal(t, Distance(p, q), Distance(q, p))
		}
		assert.Equal(t, 0.0, Distance(p, p))
	}
}

func TestAngle(t *testing.T) {
	assert.True(t, almostEqual(math.Pi/2, Angle(UnitX, UnitY)))
	assert.True(t, almostEqual(math.Pi, Angle(UnitX, UnitX.Neg())))
	assert.Equal(t, 0.0, Angle(UnitX, NewVector3(5, 0, 0)))
	assert.Equal(t, 0.0, Angle(Zero, UnitX))
	assert.False(t, math.IsNaN(Angle(NewVector3(1e-3, 1e-3, 1e-3), NewVector3(2e-3, 2e-3, 2e-3))))
}

func TestMinMaxInPlace(t *testing.T) {
	v := NewVector3(1, 5, -3)
	v.Min(NewVector3(2, 4, -4))
	assert.Equal(t, Vector3{1, 4, -4}, v)

	v = NewVector3(1, 5, -3)
	v.Max(NewVector3(2, 4, -4))
	assert.Equal(t, Vector3{2, 5, -3}, v)

	v = NewVector3(1, 5, -3)
	v.MinScalar(2)
	assert.Equal(t, Vector3{1, 2, -3}, v)

	v = NewVector3(1, 5, -3)
	v.MaxScalar(2)
	assert.Equal(t, Vector3{2, 5, 2}, v)
}

func TestMinMaxPure(t *testing.T) {
	a := NewVector3(1, 5, -3)
	b := NewVector3(2, 4, -4)

	assert.Equal(t, Vector3{1, 4, -4}, Min(a, b))
	assert.Equal(t, Vector3{2, 5, -3}, Max(a, b))
	assert.Equal(t, Vector3{0, 0, -3}, MinScalar(a, 0))
	assert.Equal(t, Vector3{1, 5, 0}, MaxScalar(a, 0))
	assert.Equal(t, Vector3{1, 5, -3}, a)
}

func TestClamp(t *testing.T) {
	v := NewVector3(-5, 0.5, 9)

	assert.Equal(t, Vector3{0, 0.5, 1}, ClampScalar(v, 0, 1))
	assert.Equal(t, Vector3{-1, 0.5, 3}, Clamp(v, NewVector3(-1, -1, -1), NewVector3(1, 2, 3)))
	assert.Equal(t, Vector3{-5, 0.5, 9}, v)

	v.ClampScalar(0, 1)
	assert.Equal(t, Vector3{0, 0.5, 1}, v)

	v = NewVector3(-5, 0.5, 9)
	v.Clamp(NewVector3(-10, 1, 0), NewVector3(10, 2, 8))
	assert.Equal(t, Vector3{-5, 1, 8}, v)
}
