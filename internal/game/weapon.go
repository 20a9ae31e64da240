package game

import (
	"math"

	"gridcaster/internal/config"
	"gridcaster/internal/render"
	"gridcaster/internal/sprite"
)

// Weapon is the first-person gun overlay. Firing starts a reload that plays
// every frame once before the next shot is allowed.
type Weapon struct {
	Damage int
	Scale  float64

	reloading bool
	played    int
	clock     sprite.Clock
	anim      sprite.Animation
}

// NewWeapon creates a weapon at rest on its first frame.
func NewWeapon(cfg config.WeaponConfig, frames []render.Image) *Weapon {
	return &Weapon{
		Damage: cfg.Damage,
		Scale:  cfg.Scale,
		clock:  sprite.Clock{Period: float64(cfg.FrameDuration)},
		anim:   sprite.Animation{Frames: frames},
	}
}

// Ready reports whether a new shot may start.
func (w *Weapon) Ready() bool {
	return !w.reloading
}

// Reloading reports whether the reload animation is playing.
func (w *Weapon) Reloading() bool {
	return w.reloading
}

// Trigger starts the reload cycle.
func (w *Weapon) Trigger() {
	w.reloading = true
	w.played = 0
}

// Update advances the reload. A shot only lives for the tick it was fired
// in, so any shot no enemy consumed is cleared here.
func (w *Weapon) Update(dt float64, p *Player) {
	triggered := w.clock.Advance(dt)
	if !w.reloading {
		return
	}
	p.Fire = false
	if !triggered {
		return
	}
	w.anim.Step()
	w.played++
	if w.played >= len(w.anim.Frames) {
		w.reloading = false
		w.played = 0
	}
}

// Frame returns the frame currently shown.
func (w *Weapon) Frame() render.Image {
	return w.anim.Frame()
}

// Overlay places the current frame centred at the bottom of the screen.
func (w *Weapon) Overlay(proj config.Projection) (render.Entry, bool) {
	img := w.anim.Frame()
	if img == nil {
		return render.Entry{}, false
	}
	b := img.Bounds()
	width := float64(b.Dx()) * w.Scale
	height := float64(b.Dy()) * w.Scale
	return render.Entry{
		Image: img,
		Dst: render.Rect{
			X: math.Floor(proj.HalfWidth - width/2),
			Y: float64(proj.ScreenHeight) - height,
			W: width,
			H: height,
		},
	}, true
}
