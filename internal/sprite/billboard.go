package sprite

import (
	"github.com/segmentio/ksuid"

	"gridcaster/internal/render"
	"gridcaster/internal/world"
)

// Billboard is a flat image standing at a world position, always facing the
// viewer.
type Billboard struct {
	ID    string
	Pos   world.Point
	Image render.Image
	// Scale multiplies the projected size; Shift moves the image down by a
	// fraction of its projected height.
	Scale float64
	Shift float64
}

// Drawable is anything the projector can place on screen.
type Drawable interface {
	Billboard() Billboard
}

// Animatable advances its own animation by dt milliseconds.
type Animatable interface {
	Animate(dt float64)
}

// NewBillboard creates a static billboard with a fresh ID.
func NewBillboard(pos world.Point, img render.Image, scale, shift float64) *Billboard {
	return &Billboard{
		ID:    ksuid.New().String(),
		Pos:   pos,
		Image: img,
		Scale: scale,
		Shift: shift,
	}
}

// Billboard satisfies Drawable.
func (b *Billboard) Billboard() Billboard {
	return *b
}

// Animated is a billboard cycling through frames on a fixed period.
type Animated struct {
	Base      Billboard
	Clock     Clock
	Animation Animation
}

// NewAnimated creates an animated billboard. period is in milliseconds.
func NewAnimated(pos world.Point, frames []render.Image, period, scale, shift float64) *Animated {
	a := &Animated{
		Clock:     Clock{Period: period},
		Animation: Animation{Frames: frames},
	}
	var first render.Image
	if len(frames) > 0 {
		first = frames[0]
	}
	a.Base = *NewBillboard(pos, first, scale, shift)
	return a
}

// Animate steps to the next frame whenever the clock fires.
func (a *Animated) Animate(dt float64) {
	if a.Clock.Advance(dt) {
		a.Animation.Step()
	}
}

// Billboard returns the billboard showing the current frame.
func (a *Animated) Billboard() Billboard {
	b := a.Base
	if f := a.Animation.Frame(); f != nil {
		b.Image = f
	}
	return b
}
