package monster

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"gridcaster/internal/audio"
	"gridcaster/internal/collision"
	"gridcaster/internal/logger"
	"gridcaster/internal/pathfinding"
	"gridcaster/internal/raycast"
	"gridcaster/internal/sprite"
	"gridcaster/internal/world"
)

// Target is the player as seen by enemies.
type Target interface {
	Position() world.Point
	// Firing reports a shot that no enemy has absorbed yet.
	Firing() bool
	ConsumeShot()
	TakeDamage(amount int)
	OnKill()
}

// Environment is everything an enemy reads during one logic tick. Occupancy
// must already hold every living enemy's tile.
type Environment struct {
	Grid       *world.Grid
	Integrator *collision.Integrator
	// Pathfinder is nil when enemies chase the player directly.
	Pathfinder   *pathfinding.Pathfinder
	Occupancy    pathfinding.Occupancy
	Projector    *sprite.Projector
	View         world.Viewpoint
	Target       Target
	Audio        audio.Sink
	MaxDepth     int
	HalfWidth    float64
	WeaponDamage int
	Rand         *rand.Rand
}

func (env *Environment) roll() float64 {
	if env.Rand != nil {
		return env.Rand.Float64()
	}
	return rand.Float64()
}

func (env *Environment) play(e audio.Event) {
	if env.Audio != nil {
		env.Audio.Play(e)
	}
}

// FillOccupancy resets occ to the tiles of the living enemies.
func FillOccupancy(occ pathfinding.Occupancy, enemies []*Enemy) {
	occ.Reset()
	for _, e := range enemies {
		if e.alive {
			occ.Add(e.Tile())
		}
	}
}

// Update runs one logic tick. Animate must have been called first so the
// animation clock reflects this tick.
func (e *Enemy) Update(env *Environment) {
	if !e.alive {
		e.animateDeath()
		return
	}

	target := env.Target.Position()
	e.Sight = raycast.LineOfSight(env.Grid, e.Pos, target, env.MaxDepth)
	e.checkShot(env)

	switch {
	case e.pain:
		e.State = StatePain
		e.play(&e.hurt)
		if e.clock.Triggered() {
			e.pain = false
		}
	case e.Sight:
		e.SearchActive = true
		if e.Pos.DistanceTo(target) < float64(e.AttackRange) {
			e.State = StateAttacking
			e.play(&e.attack)
			e.fire(env)
		} else {
			e.State = StateSearching
			e.play(&e.walk)
			e.move(env)
		}
	case e.SearchActive:
		e.State = StateSearching
		e.play(&e.walk)
		e.move(env)
	default:
		e.State = StateIdle
		e.play(&e.idle)
	}

	if !e.alive {
		e.State = StateDead
	}
}

// checkShot takes the player's pending shot when the enemy is visible and
// under the crosshair.
func (e *Enemy) checkShot(env *Environment) {
	if !e.Sight || !env.Target.Firing() || env.Projector == nil {
		return
	}
	_, pr, ok := env.Projector.Project(e, env.View)
	if !ok {
		return
	}
	if pr.ScreenX <= env.HalfWidth-pr.HalfWidth || pr.ScreenX >= env.HalfWidth+pr.HalfWidth {
		return
	}

	env.play(audio.EnemyPain)
	env.Target.ConsumeShot()
	if e.TakeHit(env.WeaponDamage) {
		env.play(audio.EnemyDeath)
		env.Target.OnKill()
		logger.WithComponent("monster").WithFields(logrus.Fields{
			"id":   e.ID,
			"kind": e.Kind,
			"x":    e.Pos.X,
			"y":    e.Pos.Y,
		}).Info("enemy killed")
	}
}

// fire shoots at the player once per animation frame.
func (e *Enemy) fire(env *Environment) {
	if !e.clock.Triggered() {
		return
	}
	env.play(audio.EnemyAttack)
	if env.roll() < e.Stats.Precision {
		env.Target.TakeDamage(e.Stats.Damage)
	}
}

// move walks towards the centre of the next tile on the way to the player,
// holding still when another enemy already stands there.
func (e *Enemy) move(env *Environment) {
	next := env.Target.Position().Tile()
	if env.Pathfinder != nil {
		next = env.Pathfinder.Route(e.Tile(), next, env.Occupancy)
	}
	if env.Occupancy.Has(next) {
		return
	}

	angle := headingTo(e.Pos, next)
	dx := math.Cos(angle) * e.Stats.Speed
	dy := math.Sin(angle) * e.Stats.Speed
	env.Integrator.Move(&e.Pos, dx, dy, e.Stats.Size)
}

func (e *Enemy) animateDeath() {
	e.State = StateDead
	e.current = &e.death
	if e.clock.Triggered() {
		e.death.StepOnce()
	}
}
