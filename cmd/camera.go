package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/smasonuk/vecmath"
)

// Camera is an orthographic orbit camera around the origin.
type Camera struct {
	angle  vecmath.Vector3
	scale  float64
	camRev mgl64.Mat4
}

func NewCamera(scale float64) *Camera {
	c := &Camera{scale: scale}
	c.AddAngle(0, 0, 0)
	return c
}

func (c *Camera) AddAngle(x, y, z float64) {
	c.angle = c.angle.Add(vecmath.NewVector3(x, y, z))

	rotY := mgl64.HomogRotate3DY(-c.angle.Y)
	rotX := mgl64.HomogRotate3DX(-c.angle.X)
	rotZ := mgl64.HomogRotate3DZ(-c.angle.Z)
	c.camRev = rotZ.Mul4(rotY).Mul4(rotX)
}

// Transform moves the world point p into camera space.
func (c *Camera) Transform(p vecmath.Vector3) vecmath.Vector3 {
	return vecmath.FromVec4(c.camRev.Mul4x1(p.Vec4One().Vec4())).XYZ()
}

// Project maps the world point p to screen coordinates centred on (cx, cy).
// Screen Y grows downwards.
func (c *Camera) Project(p vecmath.Vector3, cx, cy float64) (float32, float32) {
	q := c.Transform(p)
	return float32(cx + q.X*c.scale), float32(cy - q.Y*c.scale)
}
