package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Surface accepts blits in back-to-front order.
type Surface interface {
	Blit(e Entry)
}

// Compose blits every entry onto s in order.
func Compose(s Surface, entries []Entry) {
	for _, e := range entries {
		s.Blit(e)
	}
}

// Canvas is a software Surface backed by an RGBA image.
type Canvas struct {
	img    *image.RGBA
	scaler xdraw.Scaler
}

// NewCanvas allocates a w x h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		scaler: xdraw.NearestNeighbor,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear paints the top half with sky and the bottom half with floor.
func (c *Canvas) Clear(sky, floor color.Color) {
	b := c.img.Bounds()
	half := b.Min.Y + b.Dy()/2
	xdraw.Draw(c.img, image.Rect(b.Min.X, b.Min.Y, b.Max.X, half), image.NewUniform(sky), image.Point{}, xdraw.Src)
	xdraw.Draw(c.img, image.Rect(b.Min.X, half, b.Max.X, b.Max.Y), image.NewUniform(floor), image.Point{}, xdraw.Src)
}

// Blit scales the entry's source region onto its destination rectangle.
// Entries whose image is not an image.Image are skipped.
func (c *Canvas) Blit(e Entry) {
	src, ok := e.Image.(image.Image)
	if !ok {
		return
	}
	dr := image.Rect(
		int(math.Floor(e.Dst.X)),
		int(math.Floor(e.Dst.Y)),
		int(math.Ceil(e.Dst.X+e.Dst.W)),
		int(math.Ceil(e.Dst.Y+e.Dst.H)),
	)
	if dr.Empty() || !dr.Overlaps(c.img.Bounds()) {
		return
	}
	sr := e.Source().Intersect(src.Bounds())
	if sr.Empty() {
		return
	}
	c.scaler.Scale(c.img, dr, src, sr, xdraw.Over, nil)
}
