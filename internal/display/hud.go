package display

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"gridcaster/internal/game"
)

var (
	hudDim       = color.RGBA{0, 0, 0, 160}
	hudCrosshair = color.RGBA{230, 230, 230, 200}
	hudHealth    = color.RGBA{200, 40, 40, 255}
	hudTitle     = color.RGBA{220, 40, 40, 255}
	hudMarker    = color.RGBA{255, 60, 60, 230}
)

func drawHUD(screen *ebiten.Image, sim *game.Simulation) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	if pain := sim.Effects.Pain(); pain > 0 {
		flash := color.RGBA{uint8(120 * pain), 0, 0, uint8(120 * pain)}
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), flash, false)
	}

	cx, cy := float32(w/2), float32(h/2)
	cross := hudCrosshair
	if sim.Effects.Marker() {
		cross = hudMarker
		vector.StrokeLine(screen, cx-6, cy-6, cx+6, cy+6, 2, cross, false)
		vector.StrokeLine(screen, cx-6, cy+6, cx+6, cy-6, 2, cross, false)
	}
	vector.StrokeLine(screen, cx-8, cy, cx+8, cy, 1, cross, false)
	vector.StrokeLine(screen, cx, cy-8, cx, cy+8, 1, cross, false)

	p := sim.Player
	barW := float32(200)
	fill := barW * float32(max(p.Health, 0)) / float32(p.MaxHealth)
	vector.DrawFilledRect(screen, 10, float32(h-26), barW, 16, hudDim, false)
	vector.DrawFilledRect(screen, 10, float32(h-26), fill, 16, hudHealth, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d  kills %d/%d", p.Health, p.Kills, len(sim.Enemies)), 14, h-44)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()), 10, 10)

	switch {
	case sim.Victory:
		drawBanner(screen, "Victory", "Enter or R to play again, Q to quit")
	case sim.GameOver:
		drawBanner(screen, "Game Over", "Enter or R to try again, Q to quit")
	case sim.Paused:
		drawBanner(screen, "Paused", "Esc to resume, R to restart, Q to quit")
	}
}

func drawBanner(screen *ebiten.Image, title, hint string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), hudDim, false)

	face := basicfont.Face7x13
	drawCentered(screen, title, face, w/2, h/2-10, hudTitle)
	drawCentered(screen, hint, face, w/2, h/2+14, color.White)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	width := font.MeasureString(face, s).Round()
	ebitext.Draw(screen, s, face, x-width/2, y+face.Metrics().Ascent.Round(), c)
}
