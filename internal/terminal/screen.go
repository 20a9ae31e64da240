// Package terminal draws a simulation as character cells with tcell.
package terminal

import (
	"fmt"
	"image"
	"math"

	"github.com/gdamore/tcell/v2"

	"gridcaster/internal/config"
	"gridcaster/internal/game"
	"gridcaster/internal/render"
)

// shades go from near to far.
var shades = []rune{'█', '▓', '▒', '░'}

// Screen is a render.Surface that maps projection pixels onto the cells of
// a tcell screen. Each cell takes the colour of the source pixel under its
// centre.
type Screen struct {
	screen   tcell.Screen
	proj     config.Projection
	sky      tcell.Style
	floor    tcell.Style
	cols     int
	rows     int
	maxDepth float64
}

// NewScreen wraps s for frames of the given projection.
func NewScreen(s tcell.Screen, proj config.Projection, colors config.ColorsConfig) *Screen {
	return &Screen{
		screen:   s,
		proj:     proj,
		sky:      tcell.StyleDefault.Background(rgb(colors.Sky)),
		floor:    tcell.StyleDefault.Background(rgb(colors.Floor)),
		maxDepth: float64(proj.MaxDepth),
	}
}

// Begin sizes the surface to the terminal and paints sky and floor.
func (t *Screen) Begin() {
	t.cols, t.rows = t.screen.Size()
	half := t.rows / 2
	for y := 0; y < t.rows; y++ {
		style := t.sky
		if y >= half {
			style = t.floor
		}
		for x := 0; x < t.cols; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Blit satisfies render.Surface.
func (t *Screen) Blit(e render.Entry) {
	src, ok := e.Image.(image.Image)
	if !ok || t.cols == 0 || t.rows == 0 || e.Dst.W <= 0 || e.Dst.H <= 0 {
		return
	}
	sr := e.Source().Intersect(src.Bounds())
	if sr.Empty() {
		return
	}

	sx := float64(t.proj.ScreenWidth) / float64(t.cols)
	sy := float64(t.proj.ScreenHeight) / float64(t.rows)
	x0 := max(int(math.Floor(e.Dst.X/sx)), 0)
	x1 := min(int(math.Ceil((e.Dst.X+e.Dst.W)/sx)), t.cols)
	y0 := max(int(math.Floor(e.Dst.Y/sy)), 0)
	y1 := min(int(math.Ceil((e.Dst.Y+e.Dst.H)/sy)), t.rows)
	glyph := t.shade(e.Depth)

	for cy := y0; cy < y1; cy++ {
		py := (float64(cy) + 0.5) * sy
		if py < e.Dst.Y || py >= e.Dst.Y+e.Dst.H {
			continue
		}
		v := sr.Min.Y + int((py-e.Dst.Y)/e.Dst.H*float64(sr.Dy()))
		for cx := x0; cx < x1; cx++ {
			px := (float64(cx) + 0.5) * sx
			if px < e.Dst.X || px >= e.Dst.X+e.Dst.W {
				continue
			}
			u := sr.Min.X + int((px-e.Dst.X)/e.Dst.W*float64(sr.Dx()))
			r, g, b, a := src.At(min(u, sr.Max.X-1), min(v, sr.Max.Y-1)).RGBA()
			if a < 0x8000 {
				continue
			}
			fg := tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
			t.screen.SetContent(cx, cy, glyph, nil, tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack))
		}
	}
}

func (t *Screen) shade(depth float64) rune {
	if depth <= 0 || t.maxDepth <= 0 {
		return shades[0]
	}
	i := int(depth / t.maxDepth * float64(len(shades)) * 2)
	return shades[min(i, len(shades)-1)]
}

// Status writes the round summary on the top row.
func (t *Screen) Status(sim *game.Simulation) {
	line := fmt.Sprintf(" HP %d  kills %d/%d ", sim.Player.Health, sim.Player.Kills, len(sim.Enemies))
	switch {
	case sim.Victory:
		line += " VICTORY  r: again  q: quit "
	case sim.GameOver:
		line += " GAME OVER  r: retry  q: quit "
	case sim.Paused:
		line += " PAUSED  p: resume  q: quit "
	}
	t.text(0, 0, line, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed))

	mx, my := t.cols/2, t.rows/2
	if mx < t.cols && my < t.rows {
		cross, style := '+', tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if sim.Effects.Marker() {
			cross, style = 'x', tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
		t.screen.SetContent(mx, my, cross, nil, style)
	}
	if sim.Effects.Pain() > 0.5 {
		t.text(0, t.rows-1, " HIT ", tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed))
	}
}

func (t *Screen) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= t.cols {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Draw composes one full frame and shows it.
func (t *Screen) Draw(sim *game.Simulation) {
	t.Begin()
	sim.Draw(t)
	t.Status(sim)
	t.screen.Show()
}

func rgb(c [3]int) tcell.Color {
	return tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))
}
