// squishies is the interactive hexagonal soft-body sandbox.
//
// Create mode: paint a region with the mouse (Q toggles add/erase, F flood
// fills, Backspace clears, scroll resizes the brush), then press Enter to
// convert the painted region into a particle lattice. Space switches to
// sim mode, where left click attracts the body toward the cursor, right
// click repels it, arrow keys pan, and C recenters the view on the body.
package main

import (
	"image/color"
	"log"

	softbody "github.com/TesseractionCode/hexagonal-softbodies"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

const (
	screenW = 800
	screenH = 600

	hexRadius = 10.0
	stiffness = 10000.0
	damping   = 0.0

	// Point-force strength per pixel of tool radius.
	forceFactor = 10000.0

	panSpeed = 300.0 // world units per second
)

type mode uint8

const (
	modeCreate mode = iota
	modeSim
)

type game struct {
	mode mode

	canvas      *softbody.Canvas
	canvasImage *ebiten.Image
	canvasDirty bool

	brush       *softbody.Brush
	forceRadius float64

	world *softbody.World
	wire  *softbody.Wireframe
	cam   *softbody.Camera
}

func newGame() *game {
	return &game{
		canvas:      softbody.NewCanvas(screenW, screenH),
		canvasImage: ebiten.NewImage(screenW, screenH),
		brush:       softbody.NewBrush(),
		forceRadius: 20,
		world:       softbody.NewWorld(),
		wire:        softbody.NewWireframe(),
		cam:         softbody.NewCamera(screenW, screenH),
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.mode == modeCreate {
			g.mode = modeSim
		} else {
			g.mode = modeCreate
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	switch g.mode {
	case modeCreate:
		g.updateCreate()
	case modeSim:
		g.updateSim(dt)
	}
	return nil
}

func (g *game) updateCreate() {
	mx, my := ebiten.CursorPosition()
	cursor := softbody.Vec2{X: float64(mx), Y: float64(my)}

	_, wheel := ebiten.Wheel()
	g.brush.Resize(wheel * 100)

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.brush.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.canvas.FloodFill(mx, my, softbody.DrawColor)
		g.canvasDirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.canvas.Clear()
		g.world.Clear()
		g.canvasDirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.world = softbody.BuildLattice(g.canvas, softbody.LatticeConfig{
			HexRadius: hexRadius,
			Stiffness: stiffness,
			Damping:   damping,
		})
		g.wire.Update(g.world)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.brush.StrokeTo(g.canvas, cursor)
		g.canvasDirty = true
	} else {
		g.brush.Lift()
	}
}

func (g *game) updateSim(dt float64) {
	mx, my := ebiten.CursorPosition()
	cursor := g.cam.ScreenToWorld(softbody.Vec2{X: float64(mx), Y: float64(my)})

	_, wheel := ebiten.Wheel()
	g.forceRadius = clamp(g.forceRadius+softbody.ToolSizingFactor*wheel*100,
		softbody.MinToolRadius, softbody.MaxToolRadius)

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.world.Attract(cursor, forceFactor*g.forceRadius)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.world.Repel(cursor, forceFactor*g.forceRadius)
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.cam.Pan(-panSpeed*dt, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.cam.Pan(panSpeed*dt, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.cam.Pan(0, -panSpeed*dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.cam.Pan(0, panSpeed*dt)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if cx, cy, ok := meshCenter(g.world); ok {
			g.cam.ScrollTo(cx, cy, 0.4, ease.OutQuad)
		}
	}
	g.cam.Update(float32(dt))

	g.world.Step(dt)
	g.wire.Update(g.world)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x0e, G: 0x13, B: 0x1f, A: 0xff})

	mx, my := ebiten.CursorPosition()

	switch g.mode {
	case modeCreate:
		if g.canvasDirty {
			g.canvasImage.WritePixels(g.canvas.Pix())
			g.canvasDirty = false
		}
		screen.DrawImage(g.canvasImage, nil)
		g.wire.Draw(screen, ebiten.GeoM{})

		ring := color.RGBA{R: 0x8a, G: 0x92, B: 0xa7, A: 0xff}
		if g.brush.Mode == softbody.BrushErase {
			ring = color.RGBA{R: 0x26, G: 0x2e, B: 0x43, A: 0xff}
		}
		vector.StrokeCircle(screen, float32(mx), float32(my),
			float32(g.brush.Radius()), 1, ring, true)

		ebitenutil.DebugPrintAt(screen, "CREATE MODE", 6, 8)
		ebitenutil.DebugPrintAt(screen,
			"[Space] sim mode\n- (Enter) compute lattice\n- (Backspace) clear\n"+
				"- (Q) switch brush (add/erase)\n- (F) flood fill\nScroll resizes the brush.",
			6, 28)

	case modeSim:
		g.wire.Draw(screen, g.cam.GeoM())

		vector.StrokeCircle(screen, float32(mx), float32(my),
			float32(g.forceRadius), 1, color.RGBA{R: 0xe7, G: 0x3d, B: 0x71, A: 0xff}, true)

		ebitenutil.DebugPrintAt(screen, "SIM MODE", 6, 8)
		ebitenutil.DebugPrintAt(screen,
			"[Space] create mode\nLeft click attracts, right click repels.\n"+
				"Arrow keys pan, (C) recenters. Scroll resizes the tool.",
			6, 28)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// meshCenter returns the centroid of the world's particles.
func meshCenter(w *softbody.World) (x, y float64, ok bool) {
	if len(w.Particles) == 0 {
		return 0, 0, false
	}
	for _, p := range w.Particles {
		x += p.Position.X
		y += p.Position.Y
	}
	n := float64(len(w.Particles))
	return x / n, y / n, true
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Hexagonal Softbodies")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
