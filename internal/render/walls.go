package render

import (
	"image"

	"gridcaster/internal/config"
	"gridcaster/internal/raycast"
	"gridcaster/internal/world"
)

// TextureSource resolves a wall material to its square texture.
type TextureSource interface {
	WallTexture(m world.Material) Image
}

// WallEntries turns ray columns into textured wall strips, one per hit
// column. Strips taller than the screen sample only the visible middle of
// the texture so their destination never exceeds the screen height.
func WallEntries(dst *List, columns []raycast.Column, textures TextureSource, proj config.Projection) {
	scale := proj.Scale
	height := float64(proj.ScreenHeight)
	for _, col := range columns {
		if !col.Hit {
			continue
		}
		tex := textures.WallTexture(col.Material)
		if tex == nil {
			continue
		}
		b := tex.Bounds()
		size := b.Dx()
		u := b.Min.X + int(col.Offset*float64(size-scale))
		x := float64(col.Index * scale)

		var e Entry
		if col.Height < height {
			e = Entry{
				Src: image.Rect(u, b.Min.Y, u+scale, b.Min.Y+b.Dy()),
				Dst: Rect{X: x, Y: proj.HalfHeight - float64(int(col.Height)/2), W: float64(scale), H: col.Height},
			}
		} else {
			texHeight := float64(b.Dy()) * height / col.Height
			top := b.Min.Y + b.Dy()/2 - int(texHeight)/2
			e = Entry{
				Src: image.Rect(u, top, u+scale, top+maxInt(1, int(texHeight))),
				Dst: Rect{X: x, Y: 0, W: float64(scale), H: height},
			}
		}
		e.Depth = col.Depth
		e.Image = tex
		dst.Add(e)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
