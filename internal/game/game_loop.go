package game

import (
	"time"

	"github.com/sirupsen/logrus"

	"gridcaster/internal/monitoring"
	"gridcaster/internal/monster"
	"gridcaster/internal/raycast"
	"gridcaster/internal/render"
)

// Tick advances the round by dt milliseconds of input. Restart and Pause
// are honoured even when the round is over or paused.
func (s *Simulation) Tick(dt float64, in Intent) {
	if in.Restart {
		s.log.Info("restart requested")
		s.Reset()
		return
	}
	if in.Pause && s.Active {
		s.Paused = !s.Paused
		s.log.WithField("paused", s.Paused).Info("pause toggled")
	}
	if !s.Active || s.Paused {
		return
	}

	hits, damage := s.stats.Hits, s.stats.DamageTaken
	s.Effects.Update(dt)
	s.updatePlayer(dt, in)
	s.skyOffset = ScrollSky(s.skyOffset, ClampRelative(in.MouseDX, s.cfg.Player.MouseMaxRelative), s.proj.ScreenWidth)
	s.monitor.ProfiledFunction(monitoring.StageAgents, func() {
		s.updateEnemies(dt)
	})
	if s.stats.Hits > hits {
		s.Effects.Hit()
	}
	if s.stats.DamageTaken > damage {
		s.Effects.Hurt()
	}
	s.Weapon.Update(dt, s.Player)
	s.stats.Elapsed += time.Duration(dt * float64(time.Millisecond))

	s.checkRound()
	s.updatePerformanceMetrics()
	s.maybeLogFrameStats(time.Now())
}

// updatePlayer handles movement, looking and shooting
func (s *Simulation) updatePlayer(dt float64, in Intent) {
	s.Player.Move(in, dt, s.integrator)
	s.Player.Turn(in, dt)
	s.Player.MouseLook(in.MouseDX, dt)
	if in.Fire {
		s.Player.Shoot(s.Weapon)
	}
}

// updateEnemies rebuilds the occupancy set and runs every enemy once.
func (s *Simulation) updateEnemies(dt float64) {
	for _, a := range s.animated {
		a.Animate(dt)
	}

	monster.FillOccupancy(s.occupancy, s.Enemies)
	env := &monster.Environment{
		Grid:         s.Grid,
		Integrator:   s.integrator,
		Pathfinder:   s.pathfinder,
		Occupancy:    s.occupancy,
		Projector:    s.projector,
		View:         s.Player.View,
		Target:       s.Player,
		Audio:        s.audio,
		MaxDepth:     s.proj.MaxDepth,
		HalfWidth:    s.proj.HalfWidth,
		WeaponDamage: s.Weapon.Damage,
		Rand:         s.rng,
	}
	for _, e := range s.Enemies {
		e.Animate(dt)
		e.Update(env)
	}
}

// checkRound ends the round on the player's death or the last enemy's.
func (s *Simulation) checkRound() {
	switch {
	case s.Player.Dead():
		s.GameOver = true
	case len(s.Enemies) > 0 && s.Alive() == 0:
		s.Victory = true
	default:
		return
	}
	s.Active = false

	msg := "victory"
	if s.GameOver {
		msg = "game over"
	}
	s.log.WithFields(logrus.Fields{
		"kills":    s.stats.Kills,
		"shots":    s.stats.Shots,
		"accuracy": s.stats.Accuracy(),
		"damage":   s.stats.DamageTaken,
		"time":     FormatPlayTime(s.stats.Elapsed),
	}).Info(msg)
}

// Cast runs the wall raycaster for the current viewpoint. The returned
// slice is reused by the next call.
func (s *Simulation) Cast() []raycast.Column {
	timer := s.monitor.Start(monitoring.StageRaycast)
	s.columns = s.caster.Cast(s.Grid, s.Player.View)
	timer.End()
	return s.columns
}

// Frame builds this frame's render list: wall strips and every visible
// billboard, sorted back to front. The weapon overlay is not included; see
// Overlay. The returned slice is reused by the next call.
func (s *Simulation) Frame() []render.Entry {
	frame := s.monitor.Start(monitoring.StageFrame)
	defer frame.End()

	s.list.Reset()
	render.WallEntries(&s.list, s.Cast(), s.assets, s.proj)

	timer := s.monitor.Start(monitoring.StageSprites)
	view := s.Player.View
	for _, d := range s.props {
		if e, _, ok := s.projector.Project(d, view); ok {
			s.list.Add(e)
		}
	}
	timer.End()

	timer = s.monitor.Start(monitoring.StageSort)
	entries := s.list.Sorted()
	timer.End()
	return entries
}

// Overlay returns the weapon entry, drawn after the sorted list.
func (s *Simulation) Overlay() (render.Entry, bool) {
	return s.Weapon.Overlay(s.proj)
}

// Draw composes a whole frame onto surface, weapon last.
func (s *Simulation) Draw(surface render.Surface) {
	entries := s.Frame()
	timer := s.monitor.Start(monitoring.StageCompose)
	render.Compose(surface, entries)
	if e, ok := s.Overlay(); ok {
		surface.Blit(e)
	}
	timer.End()
}
