package graphics

import (
	"hash/fnv"
	"image"
	"image/color"
	"math"

	"gridcaster/internal/world"
)

// palette gives each material a base colour; ids past the end wrap.
var palette = []color.RGBA{
	{150, 60, 45, 255},   // brick
	{110, 110, 120, 255}, // stone
	{70, 110, 60, 255},   // moss
	{120, 90, 50, 255},   // wood
	{60, 80, 130, 255},   // tile
}

// WallTexture draws a size x size brick pattern tinted per material.
func WallTexture(m world.Material, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	base := palette[(int(m)-1+len(palette))%len(palette)]
	mortar := color.RGBA{40, 36, 32, 255}

	rows := 4
	brickH := size / rows
	if brickH < 2 {
		brickH = 2
	}
	brickW := size / 2
	if brickW < 2 {
		brickW = 2
	}
	line := size / 64
	if line < 1 {
		line = 1
	}

	for y := 0; y < size; y++ {
		row := y / brickH
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		for x := 0; x < size; x++ {
			if y%brickH < line || (x+offset)%brickW < line {
				img.SetRGBA(x, y, mortar)
				continue
			}
			// cheap deterministic grain
			n := noise(x, y, int(m))
			img.SetRGBA(x, y, shade(base, 0.85+0.3*n))
		}
	}
	return img
}

// Prop draws a placeholder static billboard. Transparent background.
func Prop(name string) *image.RGBA {
	const w, h = 64, 96
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	c := nameColor(name)
	switch name {
	case "plant":
		pot := color.RGBA{140, 80, 40, 255}
		fill(img, image.Rect(20, 70, 44, 96), pot)
		leaf := color.RGBA{40, 150, 60, 255}
		drawDisc(img, 32, 40, 24, leaf)
		drawDisc(img, 20, 55, 14, shade(leaf, 0.8))
		drawDisc(img, 44, 55, 14, shade(leaf, 0.8))
	case "lamp":
		fill(img, image.Rect(30, 20, 34, 96), color.RGBA{60, 60, 60, 255})
		drawDisc(img, 32, 16, 14, color.RGBA{250, 230, 140, 255})
	default:
		fill(img, image.Rect(8, 8, w-8, h), c)
	}
	return img
}

// PropFrames draws n variants of Prop(name) with the glow pulsing, for
// animated props.
func PropFrames(name string, n int) []image.Image {
	if n < 1 {
		n = 1
	}
	frames := make([]image.Image, n)
	for i := range frames {
		img := Prop(name)
		f := 0.7 + 0.3*math.Sin(float64(i)*2*math.Pi/float64(n))
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := img.RGBAAt(x, y)
				if c.A == 0 || int(c.R)+int(c.G) < 300 {
					continue
				}
				img.SetRGBA(x, y, shade(c, f))
			}
		}
		frames[i] = img
	}
	return frames
}

// EnemyFrames draws a simple humanoid for each frame of set.
func EnemyFrames(kind, set string) []image.Image {
	body := nameColor(kind)
	var frames []image.Image
	switch set {
	case AnimIdle:
		for i := 0; i < 2; i++ {
			frames = append(frames, humanoid(body, 0, float64(i), false))
		}
	case AnimWalk:
		for i := 0; i < 4; i++ {
			frames = append(frames, humanoid(body, math.Sin(float64(i)*math.Pi/2), 0, false))
		}
	case AnimAttack:
		frames = append(frames, humanoid(body, 0, 0, false), humanoid(body, 0, 0, true))
	case AnimPain:
		frames = append(frames, humanoid(color.RGBA{230, 60, 60, 255}, 0, 0, false))
	case AnimDeath:
		for i := 0; i < 5; i++ {
			frames = append(frames, fallen(body, float64(i)/4))
		}
	default:
		frames = append(frames, humanoid(body, 0, 0, false))
	}
	return frames
}

// WeaponFrames draws a gun from the viewer's perspective, recoiling.
func WeaponFrames(n int) []image.Image {
	if n < 1 {
		n = 1
	}
	frames := make([]image.Image, n)
	for i := range frames {
		img := image.NewRGBA(image.Rect(0, 0, 96, 96))
		kick := 0
		if i > 0 {
			kick = 12 * (n - i) / n
		}
		fill(img, image.Rect(38, 30+kick, 58, 96), color.RGBA{70, 70, 80, 255})
		fill(img, image.Rect(44, 20+kick, 52, 30+kick), color.RGBA{40, 40, 45, 255})
		if i == 1 {
			drawDisc(img, 48, 12, 10, color.RGBA{255, 200, 60, 255})
		}
		frames[i] = img
	}
	return frames
}

func humanoid(body color.RGBA, stride, breathe float64, firing bool) *image.RGBA {
	const w, h = 64, 128
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	skin := color.RGBA{220, 180, 140, 255}
	dark := shade(body, 0.6)

	drawDisc(img, 32, 18, 12, skin)
	top := 32 + int(breathe)
	fill(img, image.Rect(18, top, 46, 80), body)
	legShift := int(stride * 6)
	fill(img, image.Rect(20+legShift, 80, 30+legShift, 126), dark)
	fill(img, image.Rect(34-legShift, 80, 44-legShift, 126), dark)
	if firing {
		fill(img, image.Rect(26, 44, 38, 52), color.RGBA{50, 50, 50, 255})
		drawDisc(img, 32, 40, 6, color.RGBA{255, 210, 80, 255})
	} else {
		fill(img, image.Rect(12, top+4, 18, 70), dark)
		fill(img, image.Rect(46, top+4, 52, 70), dark)
	}
	return img
}

// SkyTexture draws a w x h sky band: base at the top brightening toward the
// horizon, with drifting cloud bands and a few stars so horizontal scrolling
// is visible. The left and right edges meet without a seam.
func SkyTexture(w, h int, base color.RGBA) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := float64(y) / float64(h)
		row := shade(base, 1+0.8*v)
		for x := 0; x < w; x++ {
			u := 2 * math.Pi * float64(x) / float64(w)
			cloud := math.Sin(3*u+v*4) + 0.5*math.Sin(7*u-v*9)
			c := row
			if cloud > 0.9 && v > 0.3 {
				c = shade(row, 1+0.4*(cloud-0.9))
			}
			if v < 0.6 && noise(x, y, 7) > 0.997 {
				c = color.RGBA{230, 230, 250, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func fallen(body color.RGBA, t float64) *image.RGBA {
	const w, h = 64, 128
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	height := int(96 * (1 - t))
	if height < 12 {
		height = 12
	}
	fill(img, image.Rect(18-int(t*10), h-height, 46+int(t*10), h), shade(body, 1-0.4*t))
	if t >= 1 {
		fill(img, image.Rect(8, h-6, 56, h), color.RGBA{120, 20, 20, 255})
	}
	return img
}

func drawDisc(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r && (image.Point{X: x, Y: y}).In(img.Bounds()) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, float64(v)*f)))
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

func nameColor(name string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	s := h.Sum32()
	return color.RGBA{uint8(80 + s%120), uint8(80 + (s>>8)%120), uint8(80 + (s>>16)%120), 255}
}

// noise returns a deterministic value in [0, 1) for a texel
func noise(x, y, seed int) float64 {
	n := uint32(x*374761393+y*668265263+seed*2147483647) ^ 0x5bd1e995
	n = (n ^ (n >> 13)) * 1274126177
	return float64(n&0xffff) / 65536
}
