package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Magnitude returns the Euclidean length of v.
func (v Vector3) Magnitude() float64 {
	return SafeSqrt(v.SquaredMagnitude())
}

func (v Vector3) SquaredMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize scales v to unit length in place. A zero vector is left as is.
func (v *Vector3) Normalize() {
	*v = v.Normalized()
}

// Normalized returns v scaled to unit length. A zero vector is returned as is.
func (v Vector3) Normalized() Vector3 {
	return v.MulScalar(SafeInvSqrt(1, v.SquaredMagnitude()))
}

// Abs replaces every component of v with its absolute value.
func (v *Vector3) Abs() {
	*v = v.Absolute()
}

func (v Vector3) Absolute() Vector3 {
	return Vector3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

func Dot(a, b Vector3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns v × o using the right-hand rule.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func Cross(a, b Vector3) Vector3 {
	return a.Cross(b)
}

// Distance returns the Euclidean distance between the points a and b.
func Distance(a, b Vector3) float64 {
	return SafeSqrt(SquaredDistance(a, b))
}

func SquaredDistance(a, b Vector3) float64 {
	return a.Sub(b).SquaredMagnitude()
}

// Angle returns the unsigned angle between a and b in radians. It is 0 when
// either vector has no direction.
func Angle(a, b Vector3) float64 {
	m := a.Magnitude() * b.Magnitude()
	if IsZero(m) {
		return 0
	}
	return math.Acos(mgl64.Clamp(Dot(a, b)/m, -1, 1))
}

// Min lowers each component of v to the matching component of o where o is smaller.
func (v *Vector3) Min(o Vector3) {
	*v = Min(*v, o)
}

// MinScalar lowers each component of v to s where s is smaller.
func (v *Vector3) MinScalar(s float64) {
	*v = MinScalar(*v, s)
}

// Max raises each component of v to the matching component of o where o is larger.
func (v *Vector3) Max(o Vector3) {
	*v = Max(*v, o)
}

// MaxScalar raises each component of v to s where s is larger.
func (v *Vector3) MaxScalar(s float64) {
	*v = MaxScalar(*v, s)
}

// Clamp limits each component of v to the matching [lo, hi] range.
func (v *Vector3) Clamp(lo, hi Vector3) {
	*v = Clamp(*v, lo, hi)
}

// ClampScalar limits every component of v to [lo, hi].
func (v *Vector3) ClampScalar(lo, hi float64) {
	*v = ClampScalar(*v, lo, hi)
}

func Min(a, b Vector3) Vector3 {
	return Vector3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

func MinScalar(v Vector3, s float64) Vector3 {
	return Min(v, Splat(s))
}

func Max(a, b Vector3) Vector3 {
	return Vector3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}

func MaxScalar(v Vector3, s float64) Vector3 {
	return Max(v, Splat(s))
}

// Clamp returns v with each component limited to the matching [lo, hi] range.
func Clamp(v, lo, hi Vector3) Vector3 {
	return Vector3{
		X: mgl64.Clamp(v.X, lo.X, hi.X),
		Y: mgl64.Clamp(v.Y, lo.Y, hi.Y),
		Z: mgl64.Clamp(v.Z, lo.Z, hi.Z),
	}
}

func ClampScalar(v Vector3, lo, hi float64) Vector3 {
	return Clamp(v, Splat(lo), Splat(hi))
}
