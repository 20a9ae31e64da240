// Package display runs a simulation in an Ebiten window.
package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridcaster/internal/game"
	"gridcaster/internal/logger"
)

// Game adapts a simulation to ebiten.Game.
type Game struct {
	sim     *game.Simulation
	surface *Surface
	input   *Input
	floor   color.RGBA
	dt      float64
}

// New wraps sim for Ebiten. Each Update advances the simulation by one
// fixed tick.
func New(sim *game.Simulation) *Game {
	cfg := sim.Config()
	return &Game{
		sim:     sim,
		surface: NewSurface(true),
		input:   NewInput(cfg.GetScreenWidth(), cfg.Player.MouseBorder),
		floor:   rgb(cfg.Colors.Floor),
		dt:      cfg.GetTickMillis(),
	}
}

// Run opens the window and blocks until it closes.
func Run(sim *game.Simulation) error {
	cfg := sim.Config()
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	ebiten.SetTPS(cfg.GetTPS())
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	logger.WithComponent("display").WithField("tps", cfg.GetTPS()).Info("opening window")
	return ebiten.RunGame(New(sim))
}

// Update handles input and advances one tick
func (g *Game) Update() error {
	over := !g.sim.Active
	quit := g.input.Quit()
	if quit && (over || g.sim.Paused) {
		return ebiten.Termination
	}

	intent := g.input.Read(over)
	g.sim.Tick(g.dt, intent)

	if g.sim.Paused || !g.sim.Active {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	return nil
}

// Draw renders the first-person view and the HUD
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	g.surface.Begin(screen)
	for _, e := range g.sim.Sky() {
		g.surface.Blit(e)
	}
	vector.DrawFilledRect(screen, 0, float32(h/2), float32(w), float32(h-h/2), g.floor, false)

	g.sim.Draw(g.surface)
	drawHUD(screen, g.sim)
}

// Layout returns the screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	cfg := g.sim.Config()
	return cfg.GetScreenWidth(), cfg.GetScreenHeight()
}

func rgb(c [3]int) color.RGBA {
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
}
