package game

import (
	"image/color"
	"math"

	"gridcaster/internal/render"
)

// skyScroll is how many pixels the sky moves per pixel of mouse motion.
const skyScroll = 4.5

// ScrollSky moves a sky offset by rel pixels of mouse motion, wrapped into
// [0, width).
func ScrollSky(offset, rel float64, width int) float64 {
	if width <= 0 {
		return 0
	}
	w := float64(width)
	return math.Mod(math.Mod(offset+skyScroll*rel, w)+w, w)
}

// SkyOffset returns the current horizontal sky displacement in pixels.
func (s *Simulation) SkyOffset() float64 {
	return s.skyOffset
}

// Sky returns the two side-by-side strips covering the upper half of the
// screen, drawn before Frame's entries.
func (s *Simulation) Sky() [2]render.Entry {
	w, h := s.proj.ScreenWidth, int(s.proj.HalfHeight)
	c := s.cfg.Colors.Sky
	img := s.assets.Sky(w, h, color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255})

	fw, fh := float64(w), s.proj.HalfHeight
	return [2]render.Entry{
		{Image: img, Dst: render.Rect{X: -s.skyOffset, W: fw, H: fh}},
		{Image: img, Dst: render.Rect{X: fw - s.skyOffset, W: fw, H: fh}},
	}
}
