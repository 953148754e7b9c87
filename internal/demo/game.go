package demo

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"muscle-dreamer/internal/core/ecs"
	"muscle-dreamer/internal/core/ecs/sstring"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

// Game wires the registry to an ebiten.Game. Update and Draw never reach
// into storage directly; both go through View2/TryGet like any other
// client would.
type Game struct {
	registry *ecs.Registry
	frame    int
}

// NewGame builds a registry seeded with a handful of moving and static
// entities, the way a level loader would populate one at startup.
func NewGame() *Game {
	r := ecs.NewRegistry(ecs.DefaultStoreConfig())
	g := &Game{registry: r}
	g.spawnActor("wanderer", 64, 64, 120, 40, color.RGBA{220, 90, 90, 255})
	g.spawnActor("drifter", 480, 240, -60, 80, color.RGBA{90, 200, 120, 255})
	g.spawnStatic("beacon", 900, 560, color.RGBA{90, 120, 220, 255})
	return g
}

func (g *Game) spawnActor(name string, x, y, dx, dy float64, c color.RGBA) {
	e := g.registry.AcquireEntity()
	g.registry.SetName(e, name)
	ecs.Assign(g.registry, e, Transform{X: x, Y: y})
	ecs.Assign(g.registry, e, Velocity{DX: dx, DY: dy})
	ecs.Assign(g.registry, e, Sprite{Label: sstring.New(name), R: c.R, G: c.G, B: c.B, A: c.A, Width: 24, Height: 24})
}

func (g *Game) spawnStatic(name string, x, y float64, c color.RGBA) {
	e := g.registry.AcquireEntity()
	g.registry.SetName(e, name)
	ecs.Assign(g.registry, e, Transform{X: x, Y: y})
	ecs.Assign(g.registry, e, Sprite{Label: sstring.New(name), R: c.R, G: c.G, B: c.B, A: c.A, Width: 32, Height: 32})
}

// Update integrates every entity that has both a Transform and a
// Velocity, bouncing it off the screen edges.
func (g *Game) Update() error {
	g.frame++
	const dt = 1.0 / 60.0
	ecs.View2[Transform, Velocity](g.registry).Each(func(e ecs.Entity) bool {
		t, v := ecs.Get2[Transform, Velocity](g.registry, e)
		t.X += v.DX * dt
		t.Y += v.DY * dt
		if t.X < 0 || t.X > screenWidth {
			v.DX = -v.DX
		}
		if t.Y < 0 || t.Y > screenHeight {
			v.DY = -v.DY
		}
		return true
	})
	return nil
}

// Draw walks every entity with a Sprite and fills its footprint; entities
// without a Transform are skipped since they have nowhere to draw.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{18, 18, 28, 255})
	ecs.View1[Sprite](g.registry).Each(func(e ecs.Entity) bool {
		t := ecs.TryGet[Transform](g.registry, e)
		if t == nil {
			return true
		}
		s := ecs.Get[Sprite](g.registry, e)
		sub := screen.SubImage(image.Rect(int(t.X), int(t.Y), int(t.X+s.Width), int(t.Y+s.Height))).(*ebiten.Image)
		sub.Fill(color.RGBA{s.R, s.G, s.B, s.A})
		return true
	})
	name, _ := g.registry.Name(firstEntity(g.registry))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("entities: %d  frame: %d  first: %s", g.registry.EntityCount(), g.frame, name))
}

// Layout fixes the demo at a constant logical resolution.
func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

// Run opens the window and drives the game loop, the same three calls
// the original prototype made before RunGame.
func (g *Game) Run() error {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("ecs demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

func firstEntity(r *ecs.Registry) (e ecs.Entity) {
	ecs.View1[Sprite](r).Each(func(found ecs.Entity) bool {
		e = found
		return false
	})
	return e
}
