package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"gridcaster/internal/render"
	"gridcaster/internal/world"
)

// Enemy animation sets.
const (
	AnimIdle   = "idle"
	AnimWalk   = "walk"
	AnimAttack = "attack"
	AnimPain   = "pain"
	AnimDeath  = "death"
)

// SpriteManager hands out wall textures, billboard images and animation
// frames. Files under its asset root win; anything missing is generated.
type SpriteManager struct {
	root        string
	textureSize int
	sprites     map[string]image.Image
	frames      map[string][]image.Image
	textures    map[world.Material]image.Image
}

// NewSpriteManager creates a manager loading from root (may be empty).
func NewSpriteManager(root string, textureSize int) *SpriteManager {
	if textureSize <= 0 {
		textureSize = 256
	}
	return &SpriteManager{
		root:        root,
		textureSize: textureSize,
		sprites:     make(map[string]image.Image),
		frames:      make(map[string][]image.Image),
		textures:    make(map[world.Material]image.Image),
	}
}

// WallTexture satisfies render.TextureSource.
func (sm *SpriteManager) WallTexture(m world.Material) render.Image {
	if m <= world.MaterialNone {
		return nil
	}
	if tex, ok := sm.textures[m]; ok {
		return tex
	}
	tex := sm.load(filepath.Join("textures", fmt.Sprintf("%d.png", m)))
	if tex == nil {
		tex = WallTexture(m, sm.textureSize)
	}
	sm.textures[m] = tex
	return tex
}

// Sky returns the sky band, loaded from textures/sky.png or generated at
// w x h from base.
func (sm *SpriteManager) Sky(w, h int, base color.RGBA) image.Image {
	if sprite, exists := sm.sprites["textures/sky"]; exists {
		return sprite
	}
	img := sm.load(filepath.Join("textures", "sky.png"))
	if img == nil {
		img = SkyTexture(w, h, base)
	}
	sm.sprites["textures/sky"] = img
	return img
}

// GetSprite returns the static image called name.
func (sm *SpriteManager) GetSprite(name string) image.Image {
	if sprite, exists := sm.sprites[name]; exists {
		return sprite
	}
	img := sm.load(filepath.Join("sprites", "static", name+".png"))
	if img == nil {
		img = Prop(name)
	}
	sm.sprites[name] = img
	return img
}

// Frames returns the animation frames of set for kind, e.g. ("trooper",
// "walk"). Files are numbered 0.png, 1.png, ... in sprites/<kind>/<set>/.
func (sm *SpriteManager) Frames(kind, set string) []image.Image {
	key := kind + "/" + set
	if f, ok := sm.frames[key]; ok {
		return f
	}
	var frames []image.Image
	for i := 0; ; i++ {
		img := sm.load(filepath.Join("sprites", kind, set, fmt.Sprintf("%d.png", i)))
		if img == nil {
			break
		}
		frames = append(frames, img)
	}
	if len(frames) == 0 {
		frames = EnemyFrames(kind, set)
	}
	sm.frames[key] = frames
	return frames
}

// PropFrames returns the frames of an animated prop, loaded from
// sprites/animated/<name>/ or generated with n frames.
func (sm *SpriteManager) PropFrames(name string, n int) []image.Image {
	key := "animated/" + name
	if f, ok := sm.frames[key]; ok {
		return f
	}
	var frames []image.Image
	for i := 0; ; i++ {
		img := sm.load(filepath.Join("sprites", "animated", name, fmt.Sprintf("%d.png", i)))
		if img == nil {
			break
		}
		frames = append(frames, img)
	}
	if len(frames) == 0 {
		frames = PropFrames(name, n)
	}
	sm.frames[key] = frames
	return frames
}

// WeaponFrames returns the weapon overlay animation, first frame at rest.
func (sm *SpriteManager) WeaponFrames(n int) []image.Image {
	key := fmt.Sprintf("weapon/%d", n)
	if f, ok := sm.frames[key]; ok {
		return f
	}
	var frames []image.Image
	for i := 0; i < n; i++ {
		img := sm.load(filepath.Join("sprites", "weapon", fmt.Sprintf("%d.png", i)))
		if img == nil {
			frames = WeaponFrames(n)
			break
		}
		frames = append(frames, img)
	}
	sm.frames[key] = frames
	return frames
}

// load decodes root/rel, returning nil when the file is absent or invalid
func (sm *SpriteManager) load(rel string) image.Image {
	if sm.root == "" {
		return nil
	}
	file, err := os.Open(filepath.Join(sm.root, rel))
	if err != nil {
		return nil
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil
	}
	return img
}

// ToRender converts a frame list for use in render entries.
func ToRender(frames []image.Image) []render.Image {
	out := make([]render.Image, len(frames))
	for i, f := range frames {
		out[i] = f
	}
	return out
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}
