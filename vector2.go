package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector2 is a double-precision 2-component vector. It is the projection
// target of Vector3.XY and Vector3.XZ and the source for FromVector2.
type Vector2 struct {
	X float64
	Y float64
}

func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2FromAngle returns the unit vector at angle radians from the +X axis.
func Vector2FromAngle(angle float64) Vector2 {
	return Vector2{
		X: math.Cos(angle),
		Y: math.Sin(angle),
	}
}

func (v Vector2) Magnitude() float64 {
	return SafeSqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vector2) Normalized() Vector2 {
	inv := SafeInvSqrt(1, v.X*v.X+v.Y*v.Y)
	return Vector2{X: v.X * inv, Y: v.Y * inv}
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vector2) Rotate(angle float64) Vector2 {
	cosAngle := math.Cos(angle)
	sinAngle := math.Sin(angle)

	return Vector2{
		X: v.X*cosAngle - v.Y*sinAngle,
		Y: v.X*sinAngle + v.Y*cosAngle,
	}
}

// Angle returns the direction of v in radians, in (-Pi, Pi].
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// mult by scalar
func (v Vector2) Scale(scalar float64) Vector2 {
	return Vector2{
		X: v.X * scalar,
		Y: v.Y * scalar,
	}
}

func (v Vector2) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

func FromVec2(v mgl64.Vec2) Vector2 {
	return Vector2{X: v[0], Y: v[1]}
}
