package game

import (
	"math"

	"gridcaster/internal/collision"
)

// Movement helpers for the player's viewpoint

// GetForward returns the heading as a unit vector
func (p *Player) GetForward() (float64, float64) {
	return math.Cos(p.View.Angle), math.Sin(p.View.Angle)
}

// GetRight returns the unit vector a quarter turn clockwise of the heading
func (p *Player) GetRight() (float64, float64) {
	return -math.Sin(p.View.Angle), math.Cos(p.View.Angle)
}

// Displacement converts an intent into a world-space step for dt
// milliseconds. Diagonal input is not normalised.
func (p *Player) Displacement(in Intent, dt float64) (float64, float64) {
	speed := p.cfg.Speed * dt
	fx, fy := p.GetForward()
	rx, ry := p.GetRight()
	dx := (in.Forward*fx + in.Strafe*rx) * speed
	dy := (in.Forward*fy + in.Strafe*ry) * speed
	return dx, dy
}

// Move walks the player through the integrator with a look-ahead of
// SizeScale/dt.
func (p *Player) Move(in Intent, dt float64, integrator *collision.Integrator) bool {
	dx, dy := p.Displacement(in, dt)
	if dx == 0 && dy == 0 {
		return false
	}
	return integrator.Move(&p.View, dx, dy, collision.Scale(p.cfg.SizeScale, dt))
}

// Turn rotates by the keyboard turn axis when key rotation is enabled.
func (p *Player) Turn(in Intent, dt float64) {
	if !p.cfg.KeyRotation || in.Turn == 0 {
		return
	}
	p.View.Rotate(in.Turn * p.cfg.RotationSpeed * dt)
}
