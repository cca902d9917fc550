package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/smasonuk/vecmath"
)

var (
	axisXColor  = color.RGBA{R: 255, G: 64, B: 64, A: 255}
	axisYColor  = color.RGBA{R: 64, G: 255, B: 64, A: 255}
	axisZColor  = color.RGBA{R: 64, G: 128, B: 255, A: 255}
	lerpColor   = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	slerpColor  = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	markerColor = color.White
)

func drawLine(screen *ebiten.Image, startX, startY, endX, endY float32, col color.Color) {
	vector.StrokeLine(screen, startX, startY, endX, endY, 1, col, true)
}

func drawSegment(screen *ebiten.Image, cam *Camera, a, b vecmath.Vector3, col color.Color) {
	cx, cy := screenWidth/2.0, screenHeight/2.0
	x0, y0 := cam.Project(a, cx, cy)
	x1, y1 := cam.Project(b, cx, cy)
	drawLine(screen, x0, y0, x1, y1, col)
}

func drawAxes(screen *ebiten.Image, cam *Camera) {
	drawSegment(screen, cam, vecmath.Zero, vecmath.UnitX, axisXColor)
	drawSegment(screen, cam, vecmath.Zero, vecmath.UnitY, axisYColor)
	drawSegment(screen, cam, vecmath.Zero, vecmath.UnitZ, axisZColor)
}

func drawPolyline(screen *ebiten.Image, cam *Camera, points []vecmath.Vector3, col color.Color) {
	for i := 1; i < len(points); i++ {
		drawSegment(screen, cam, points[i-1], points[i], col)
	}
}

func drawMarker(screen *ebiten.Image, cam *Camera, p vecmath.Vector3, col color.Color) {
	x, y := cam.Project(p, screenWidth/2.0, screenHeight/2.0)
	vector.DrawFilledCircle(screen, x, y, 4, col, true)
}
