package game

import (
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"gridcaster/internal/audio"
	"gridcaster/internal/collision"
	"gridcaster/internal/config"
	"gridcaster/internal/graphics"
	"gridcaster/internal/logger"
	"gridcaster/internal/monitoring"
	"gridcaster/internal/monster"
	"gridcaster/internal/pathfinding"
	"gridcaster/internal/raycast"
	"gridcaster/internal/render"
	"gridcaster/internal/sprite"
	"gridcaster/internal/world"
)

// Assets supplies every image the simulation puts on screen.
// *graphics.SpriteManager implements it.
type Assets interface {
	render.TextureSource
	GetSprite(name string) image.Image
	Frames(kind, set string) []image.Image
	PropFrames(name string, n int) []image.Image
	WeaponFrames(n int) []image.Image
	Sky(w, h int, base color.RGBA) image.Image
}

// Simulation is one playable round: the grid, the player, the enemies and
// the props, plus the state flags a frontend shows screens for. It is not
// safe for concurrent use.
type Simulation struct {
	cfg    *config.Config
	level  *world.Level
	assets Assets
	audio  audio.Sink
	seed   int64
	rng    *rand.Rand
	log    *logrus.Entry

	Grid    *world.Grid
	Player  *Player
	Weapon  *Weapon
	Enemies []*monster.Enemy
	Effects HitEffects

	props      []sprite.Drawable
	animated   []sprite.Animatable
	occupancy  pathfinding.Occupancy
	integrator *collision.Integrator
	pathfinder *pathfinding.Pathfinder

	proj      config.Projection
	caster    *raycast.Caster
	projector *sprite.Projector
	list      render.List
	columns   []raycast.Column
	skyOffset float64

	monitor      *monitoring.FrameMonitor
	lastStatsLog time.Time
	stats        RoundStats

	// Active is false once the round ended in victory or game over.
	Active   bool
	Paused   bool
	Victory  bool
	GameOver bool
}

// NewSimulation builds a simulation for level and starts the first round.
// A nil sink discards sound events.
func NewSimulation(cfg *config.Config, level *world.Level, assets Assets, sink audio.Sink) *Simulation {
	if sink == nil {
		sink = audio.Nop{}
	}
	proj := cfg.Projection()
	s := &Simulation{
		cfg:       cfg,
		level:     level,
		assets:    assets,
		audio:     sink,
		seed:      time.Now().UnixNano(),
		log:       logger.WithComponent("game"),
		proj:      proj,
		caster:    raycast.NewCaster(proj),
		projector: sprite.NewProjector(proj),
		occupancy: pathfinding.NewOccupancy(),
		monitor:   monitoring.NewFrameMonitor(),
	}
	s.Reset()
	return s
}

// SetSeed fixes the random source used from the next Reset on.
func (s *Simulation) SetSeed(seed int64) {
	s.seed = seed
}

// Reset starts a new round: the grid, player, weapon and every enemy and
// prop are rebuilt from the level.
func (s *Simulation) Reset() {
	s.rng = rand.New(rand.NewSource(s.seed))
	s.seed++

	s.Grid = s.level.Rebuild()
	if s.integrator == nil {
		s.integrator = collision.NewIntegrator(s.Grid)
	} else {
		s.integrator.UpdateTileChecker(s.Grid)
	}

	s.pathfinder = nil
	if s.cfg.Pathfinding.Enabled {
		mode, err := pathfinding.ParseCacheMode(s.cfg.Pathfinding.Cache)
		if err != nil {
			s.log.WithError(err).Warn("falling back to occupancy route cache")
			mode = pathfinding.CacheOccupancy
		}
		s.pathfinder = pathfinding.NewPathfinder(pathfinding.NewGraph(s.Grid), mode)
	}

	s.Player = NewPlayer(s.level.Start, s.cfg.Player, s.cfg.Enemy.HealthRecoup, s.audio)
	s.Player.stats = &s.stats
	s.Weapon = NewWeapon(s.cfg.Weapon, graphics.ToRender(s.assets.WeaponFrames(s.cfg.Weapon.Frames)))
	s.spawnEnemies()
	s.spawnProps()
	s.occupancy.Reset()
	s.stats = RoundStats{}
	s.Effects.Clear()
	s.monitor.Reset()

	s.Active = true
	s.Paused = false
	s.Victory = false
	s.GameOver = false

	s.log.WithFields(logrus.Fields{
		"level":   s.level.Name,
		"enemies": len(s.Enemies),
		"props":   len(s.props),
		"route":   s.routeMode(),
	}).Info("round started")
}

func (s *Simulation) spawnEnemies() {
	s.Enemies = s.Enemies[:0]
	for _, spawn := range s.level.Enemies {
		stats, err := monster.StatsFor(spawn.Kind, s.cfg.Enemy)
		if err != nil {
			s.log.WithError(err).WithField("kind", spawn.Kind).Warn("unknown enemy kind, using defaults")
		}
		anims := monster.Animations{
			Idle:   graphics.ToRender(s.assets.Frames(stats.Sprite, graphics.AnimIdle)),
			Walk:   graphics.ToRender(s.assets.Frames(stats.Sprite, graphics.AnimWalk)),
			Attack: graphics.ToRender(s.assets.Frames(stats.Sprite, graphics.AnimAttack)),
			Pain:   graphics.ToRender(s.assets.Frames(stats.Sprite, graphics.AnimPain)),
			Death:  graphics.ToRender(s.assets.Frames(stats.Sprite, graphics.AnimDeath)),
		}
		pos := world.Point{X: spawn.X, Y: spawn.Y}
		s.Enemies = append(s.Enemies, monster.NewEnemy(spawn.Kind, pos, stats, anims, s.rng))
	}
}

func (s *Simulation) spawnProps() {
	s.props = s.props[:0]
	s.animated = s.animated[:0]
	for _, p := range s.level.Props {
		pos := world.Point{X: p.X, Y: p.Y}
		scale := p.Scale
		if scale == 0 {
			scale = 1
		}
		if p.AnimationMs > 0 {
			frames := graphics.ToRender(s.assets.PropFrames(p.Sprite, p.Frames))
			a := sprite.NewAnimated(pos, frames, p.AnimationMs, scale, p.Shift)
			s.props = append(s.props, a)
			s.animated = append(s.animated, a)
			continue
		}
		s.props = append(s.props, sprite.NewBillboard(pos, s.assets.GetSprite(p.Sprite), scale, p.Shift))
	}
	for _, e := range s.Enemies {
		s.props = append(s.props, e)
	}
}

func (s *Simulation) routeMode() string {
	if s.pathfinder == nil {
		return "direct"
	}
	return s.pathfinder.Mode().String()
}

// View returns the player's viewpoint.
func (s *Simulation) View() world.Viewpoint {
	return s.Player.View
}

// Projection returns the screen constants shared by walls and sprites.
func (s *Simulation) Projection() config.Projection {
	return s.proj
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() *config.Config {
	return s.cfg
}

// Monitor returns the frame stage timer.
func (s *Simulation) Monitor() *monitoring.FrameMonitor {
	return s.monitor
}

// Stats returns the current round's statistics.
func (s *Simulation) Stats() RoundStats {
	return s.stats
}

// Alive counts living enemies.
func (s *Simulation) Alive() int {
	n := 0
	for _, e := range s.Enemies {
		if e.IsAlive() {
			n++
		}
	}
	return n
}

// Occupancy returns the tiles held by living enemies as of the last tick.
func (s *Simulation) Occupancy() pathfinding.Occupancy {
	return s.occupancy
}

// Pathfinder returns the route planner, nil when enemies chase directly.
func (s *Simulation) Pathfinder() *pathfinding.Pathfinder {
	return s.pathfinder
}
