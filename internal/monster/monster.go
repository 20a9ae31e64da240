package monster

import (
	"math/rand"

	"github.com/segmentio/ksuid"

	"gridcaster/internal/sprite"
	"gridcaster/internal/world"
)

// Combatant is anything the player's shots can hurt.
type Combatant interface {
	IsAlive() bool
	Position() world.Point
	// TakeHit applies damage and reports whether it was lethal.
	TakeHit(damage int) bool
}

// Enemy is an animated billboard that sees, chases and shoots the player.
// Dead enemies stay in the world showing their death animation.
type Enemy struct {
	ID    string
	Kind  string
	Pos   world.Point
	Stats Stats

	Health       int
	AttackRange  int
	State        State
	Sight        bool
	SearchActive bool

	alive bool
	pain  bool

	clock   sprite.Clock
	current *sprite.Animation
	idle    sprite.Animation
	walk    sprite.Animation
	attack  sprite.Animation
	hurt    sprite.Animation
	death   sprite.Animation
}

// NewEnemy creates a living enemy of kind at pos. rng picks the attack
// range; nil uses the package source.
func NewEnemy(kind string, pos world.Point, stats Stats, anims Animations, rng *rand.Rand) *Enemy {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	anims = anims.withFallback()
	e := &Enemy{
		ID:          ksuid.New().String(),
		Kind:        kind,
		Pos:         pos,
		Stats:       stats,
		Health:      stats.Health,
		AttackRange: rollAttackRange(stats.AttackRangeMin, stats.AttackRangeMax, intn),
		State:       StateIdle,
		alive:       true,
		clock:       sprite.Clock{Period: stats.AnimationDuration},
		idle:        sprite.Animation{Frames: anims.Idle},
		walk:        sprite.Animation{Frames: anims.Walk},
		attack:      sprite.Animation{Frames: anims.Attack},
		hurt:        sprite.Animation{Frames: anims.Pain},
		death:       sprite.Animation{Frames: anims.Death},
	}
	e.current = &e.idle
	return e
}

// IsAlive satisfies Combatant.
func (e *Enemy) IsAlive() bool {
	return e.alive
}

// Position satisfies Combatant.
func (e *Enemy) Position() world.Point {
	return e.Pos
}

// Tile returns the tile the enemy stands in.
func (e *Enemy) Tile() world.Tile {
	return e.Pos.Tile()
}

// TakeHit satisfies Combatant. Any hit puts the enemy in pain.
func (e *Enemy) TakeHit(damage int) bool {
	if !e.alive {
		return false
	}
	e.pain = true
	e.Health -= damage
	if e.Health < 1 {
		e.alive = false
		e.State = StateDead
		e.death.Rewind()
		return true
	}
	return false
}

// InPain reports whether the pain animation is still playing.
func (e *Enemy) InPain() bool {
	return e.pain
}

// Animate advances the animation clock. Frames only change during Update,
// which looks at whether this call fired.
func (e *Enemy) Animate(dt float64) {
	e.clock.Advance(dt)
}

// Billboard satisfies sprite.Drawable.
func (e *Enemy) Billboard() sprite.Billboard {
	return sprite.Billboard{
		ID:    e.ID,
		Pos:   e.Pos,
		Image: e.current.Frame(),
		Scale: e.Stats.Scale,
		Shift: e.Stats.HeightShift,
	}
}

// play shows a and steps it when the clock fired.
func (e *Enemy) play(a *sprite.Animation) {
	e.current = a
	if e.clock.Triggered() {
		a.Step()
	}
}
