package vecmath

import "github.com/go-gl/mathgl/mgl64"

// Vector4 is a double-precision 4-component vector, produced by extending a
// Vector3 with a W of 0 (direction) or 1 (point).
type Vector4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

func NewVector4(x, y, z, w float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// XYZ drops W.
func (v Vector4) XYZ() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector4) Vec4() mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, v.W}
}

func FromVec4(v mgl64.Vec4) Vector4 {
	return Vector4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}
