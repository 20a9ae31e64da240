package display

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"gridcaster/internal/render"
)

// minBrightness keeps far walls from going fully black.
const minBrightness = 0.15

// Surface blits render entries onto an ebiten screen. Plain images are
// uploaded once and cached by identity.
type Surface struct {
	screen *ebiten.Image
	cache  map[render.Image]*ebiten.Image
	shade  bool
}

// NewSurface creates a surface; shade darkens entries with depth.
func NewSurface(shade bool) *Surface {
	return &Surface{
		cache: make(map[render.Image]*ebiten.Image),
		shade: shade,
	}
}

// Begin targets screen for the following blits.
func (s *Surface) Begin(screen *ebiten.Image) {
	s.screen = screen
}

// Cached returns how many images have been uploaded.
func (s *Surface) Cached() int {
	return len(s.cache)
}

func (s *Surface) upload(img render.Image) *ebiten.Image {
	switch v := img.(type) {
	case *ebiten.Image:
		return v
	case image.Image:
		if e, ok := s.cache[img]; ok {
			return e
		}
		e := ebiten.NewImageFromImage(v)
		s.cache[img] = e
		return e
	}
	return nil
}

// Blit satisfies render.Surface.
func (s *Surface) Blit(e render.Entry) {
	if s.screen == nil {
		return
	}
	img := s.upload(e.Image)
	if img == nil {
		return
	}
	src := e.Source()
	if src.Dx() <= 0 || src.Dy() <= 0 || e.Dst.W <= 0 || e.Dst.H <= 0 {
		return
	}
	sub, ok := img.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(e.Dst.W/float64(src.Dx()), e.Dst.H/float64(src.Dy()))
	opts.GeoM.Translate(e.Dst.X, e.Dst.Y)
	if s.shade && e.Depth > 0 {
		b := float32(Brightness(e.Depth))
		opts.ColorScale.Scale(b, b, b, 1)
	}
	opts.Blend = ebiten.BlendSourceOver
	s.screen.DrawImage(sub, opts)
}

// Brightness is the colour scale applied at depth tiles.
func Brightness(depth float64) float64 {
	b := 1 / (1 + math.Pow(depth, 5)*0.00002)
	if b < minBrightness {
		return minBrightness
	}
	return b
}
