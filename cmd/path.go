package main

import "github.com/smasonuk/vecmath"

type interpolator func(from, to vecmath.Vector3, t float64) vecmath.Vector3

// samplePath returns steps+1 points from from to to, both endpoints included.
func samplePath(from, to vecmath.Vector3, steps int, interp interpolator) []vecmath.Vector3 {
	points := make([]vecmath.Vector3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		points = append(points, interp(from, to, float64(i)/float64(steps)))
	}
	return points
}
