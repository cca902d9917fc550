package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/smasonuk/vecmath"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

type Game struct {
	cfg          Config
	camera       *Camera
	lerpPath     []vecmath.Vector3
	slerpPath    []vecmath.Vector3
	t            float64
	isDragging   bool
	lastX, lastY int
}

func NewGame(cfg Config) *Game {
	g := &Game{
		cfg:    cfg,
		camera: NewCamera(cfg.Scale),
	}
	g.camera.AddAngle(0.4, -0.6, 0)

	log.Printf("Sampling %d steps from %v to %v", cfg.Steps, cfg.From, cfg.To)
	g.lerpPath = samplePath(cfg.From, cfg.To, cfg.Steps, vecmath.Lerp)
	g.slerpPath = samplePath(cfg.From, cfg.To, cfg.Steps, vecmath.Slerp)
	log.Printf("Angle between endpoints: %.4f rad", vecmath.Angle(cfg.From, cfg.To))

	return g
}

// advance moves the marker parameter forward, bouncing between 0 and 1.
func (g *Game) advance() {
	g.t += g.cfg.Speed
	switch {
	case g.t > 1:
		g.t = 2 - g.t
		g.cfg.Speed = -g.cfg.Speed
	case g.t < 0:
		g.t = -g.t
		g.cfg.Speed = -g.cfg.Speed
	}
	g.t = mgl64.Clamp(g.t, 0, 1)
}

func (g *Game) Update() error {
	g.advance()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.isDragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.isDragging {
		x, y := ebiten.CursorPosition()
		dx := float64(x-g.lastX) / 200.0
		dy := float64(y-g.lastY) / 200.0
		g.camera.AddAngle(dy, dx, 0)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.isDragging = false
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	drawAxes(screen, g.camera)
	drawPolyline(screen, g.camera, g.lerpPath, lerpColor)
	drawPolyline(screen, g.camera, g.slerpPath, slerpColor)

	lerp := vecmath.Lerp(g.cfg.From, g.cfg.To, g.t)
	slerp := vecmath.Slerp(g.cfg.From, g.cfg.To, g.t)
	drawMarker(screen, g.camera, lerp, markerColor)
	drawMarker(screen, g.camera, slerp, slerpColor)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f\nt: %0.2f\nlerp:  %v\nslerp: %v",
		ebiten.ActualFPS(), g.t, lerp, slerp))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML file with from, to, steps, speed and scale")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfigFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("vecmath arc viewer")
	if err := ebiten.RunGame(NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
