package main

import (
	"math"
	"testing"

	"github.com/smasonuk/vecmath"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func TestCameraProjectWithoutRotation(t *testing.T) {
	cam := NewCamera(100)

	x, y := cam.Project(vecmath.UnitX, 320, 240)
	assert.InDelta(t, 420, x, epsilon)
	assert.InDelta(t, 240, y, epsilon)

	x, y = cam.Project(vecmath.UnitY, 320, 240)
	assert.InDelta(t, 320, x, epsilon)
	assert.InDelta(t, 140, y, epsilon)
}

func TestCameraRotationKeepsLength(t *testing.T) {
	cam := NewCamera(1)
	cam.AddAngle(0.3, -1.1, 0.7)

	for _, p := range []vecmath.Vector3{vecmath.UnitX, vecmath.NewVector3(1, 2, 3), vecmath.One} {
		q := cam.Transform(p)
		assert.InDelta(t, p.Magnitude(), q.Magnitude(), epsilon)
	}
}

func TestCameraQuarterTurn(t *testing.T) {
	cam := NewCamera(1)
	cam.AddAngle(0, math.Pi/2, 0)

	q := cam.Transform(vecmath.UnitX)
	assert.InDelta(t, 0, q.X, epsilon)
	assert.InDelta(t, 0, q.Y, epsilon)
	assert.InDelta(t, 1, math.Abs(q.Z), epsilon)
}
