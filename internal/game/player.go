package game

import (
	"gridcaster/internal/audio"
	"gridcaster/internal/config"
	"gridcaster/internal/world"
)

// Player is the viewpoint plus everything enemies can do to it.
type Player struct {
	View      world.Viewpoint
	Health    int
	MaxHealth int
	// Fire is a shot in flight for this tick; the first enemy under the
	// crosshair consumes it.
	Fire  bool
	Kills int

	cfg    config.PlayerConfig
	recoup int
	audio  audio.Sink
	stats  *RoundStats
}

// NewPlayer places a player at start with full health. recoup is the
// health regained per kill.
func NewPlayer(start world.Viewpoint, cfg config.PlayerConfig, recoup int, sink audio.Sink) *Player {
	if sink == nil {
		sink = audio.Nop{}
	}
	view := start
	view.Rotate(cfg.StartAngle)
	return &Player{
		View:      view,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		cfg:       cfg,
		recoup:    recoup,
		audio:     sink,
	}
}

// Position satisfies monster.Target.
func (p *Player) Position() world.Point {
	return p.View.Position()
}

// Firing satisfies monster.Target.
func (p *Player) Firing() bool {
	return p.Fire
}

// ConsumeShot satisfies monster.Target.
func (p *Player) ConsumeShot() {
	p.Fire = false
	if p.stats != nil {
		p.stats.Hits++
	}
}

// TakeDamage satisfies monster.Target.
func (p *Player) TakeDamage(amount int) {
	if p.cfg.InfiniteHealth {
		return
	}
	p.Health -= amount
	p.audio.Play(audio.PlayerPain)
	if p.stats != nil {
		p.stats.DamageTaken += amount
	}
}

// OnKill satisfies monster.Target.
func (p *Player) OnKill() {
	p.Kills++
	p.Health += p.recoup
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	if p.stats != nil {
		p.stats.Kills++
	}
}

// Dead reports whether health has run out.
func (p *Player) Dead() bool {
	return p.Health < 1
}

// Shoot starts a shot when neither a shot nor a reload is in progress.
func (p *Player) Shoot(w *Weapon) bool {
	if p.Fire || !w.Ready() {
		return false
	}
	p.audio.Play(audio.Shot)
	p.Fire = true
	w.Trigger()
	if p.stats != nil {
		p.stats.Shots++
	}
	return true
}
