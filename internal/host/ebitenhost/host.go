// Package ebitenhost runs the demo on Ebitengine as an alternative to the
// GLFW host.
package ebitenhost

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"spheres3d/internal/app"
	"spheres3d/internal/config"
	"spheres3d/internal/input"
	"spheres3d/internal/render"
)

var keyMap = map[input.Key]ebiten.Key{
	input.KeyW:      ebiten.KeyW,
	input.KeyS:      ebiten.KeyS,
	input.KeyA:      ebiten.KeyA,
	input.KeyD:      ebiten.KeyD,
	input.KeyQ:      ebiten.KeyQ,
	input.KeyE:      ebiten.KeyE,
	input.KeyEscape: ebiten.KeyEscape,
}

var buttonMap = map[input.MouseButton]ebiten.MouseButton{
	input.MouseButtonLeft:   ebiten.MouseButtonLeft,
	input.MouseButtonRight:  ebiten.MouseButtonRight,
	input.MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// Run opens the window and blocks until the demo quits.
func Run(a *app.App, cfg config.Window) error {
	g := &game{app: a, cfg: cfg}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(60)

	a.Logger().Info("window opened", zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))
	err := ebiten.RunGame(g)
	a.Logger().Info("window closed", zap.Uint64("frames", a.Frames()))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	app   *app.App
	cfg   config.Window
	frame app.Frame
}

func (g *game) Update() error {
	g.frame = g.app.Update(pollInput())
	if g.frame.Quit {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Color(g.cfg.Background).ToRGBA())
	g.app.Render(&screenDrawer{dst: screen})
	ebitenutil.DebugPrint(screen, panelText(g.app, g.frame))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// screenDrawer adapts an ebiten image to render.LineDrawer.
type screenDrawer struct {
	dst *ebiten.Image
}

func (d *screenDrawer) DrawLine(x0, y0, x1, y1 int, c render.Color) {
	vector.StrokeLine(d.dst, float32(x0)+0.5, float32(y0)+0.5, float32(x1)+0.5, float32(y1)+0.5, 1, c.ToRGBA(), false)
}

func pollInput() input.State {
	s := input.NewState()
	for k, ek := range keyMap {
		s.Keys[k] = ebiten.IsKeyPressed(ek)
	}
	for b, eb := range buttonMap {
		s.Buttons[b] = ebiten.IsMouseButtonPressed(eb)
	}
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	return s
}

func panelText(a *app.App, f app.Frame) string {
	sc := a.Scene()
	return fmt.Sprintf(
		"TPS %0.1f\nSphereA center (%.2f, %.2f, %.2f) r %.2f\nSphereB center (%.2f, %.2f, %.2f) r %.2f\ncolliding: %t",
		ebiten.ActualTPS(),
		sc.A.Center.X, sc.A.Center.Y, sc.A.Center.Z, sc.A.Radius,
		sc.B.Center.X, sc.B.Center.Y, sc.B.Center.Z, sc.B.Radius,
		f.Colliding,
	)
}
