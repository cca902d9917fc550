// Package vecmath provides a float64 3D vector value type and its 2D and 4D peers.
package vecmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is a double-precision 3-component vector. It is a plain value:
// copies are independent and equality is component-wise.
//
// Any float64 may appear in a component, including infinities and NaN.
// Operations never fail on such input; they produce whatever IEEE-754
// arithmetic gives.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

var (
	Zero  = Vector3{}
	One   = Vector3{X: 1, Y: 1, Z: 1}
	UnitX = Vector3{X: 1}
	UnitY = Vector3{Y: 1}
	UnitZ = Vector3{Z: 1}

	PositiveInfinity = Splat(math.Inf(1))
	NegativeInfinity = Splat(math.Inf(-1))
)

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Splat returns a vector with s in every component.
func Splat(s float64) Vector3 {
	return Vector3{X: s, Y: s, Z: s}
}

// FromVector2 composes a vector from the X and Y of v and the given z.
func FromVector2(v Vector2, z float64) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: z}
}

// Component returns the component at index i (0 = X, 1 = Y, 2 = Z).
func (v Vector3) Component(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, fmt.Errorf("component %d: %w", i, ErrIndexOutOfRange)
}

// SetComponent writes value to the component at index i. v is left
// untouched when i is out of range.
func (v *Vector3) SetComponent(i int, value float64) error {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		return fmt.Errorf("component %d: %w", i, ErrIndexOutOfRange)
	}
	return nil
}

func (v Vector3) XY() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

func (v Vector3) XZ() Vector2 {
	return Vector2{X: v.X, Y: v.Z}
}

// Vec4Zero extends v with W = 0, the homogeneous form of a direction.
func (v Vector3) Vec4Zero() Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: 0}
}

// Vec4One extends v with W = 1, the homogeneous form of a point.
func (v Vector3) Vec4One() Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: 1}
}

func (v Vector3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func FromVec3(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}
