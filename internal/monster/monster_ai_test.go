package monster

import (
	"math"
	"math/rand"
	"testing"

	"gridcaster/internal/audio"
	"gridcaster/internal/collision"
	"gridcaster/internal/config"
	"gridcaster/internal/pathfinding"
	"gridcaster/internal/sprite"
	"gridcaster/internal/world"
)

// fakeTarget records what enemies do to the player
type fakeTarget struct {
	pos      world.Point
	firing   bool
	consumed int
	damage   int
	kills    int
}

func (f *fakeTarget) Position() world.Point { return f.pos }
func (f *fakeTarget) Firing() bool          { return f.firing }
func (f *fakeTarget) ConsumeShot()          { f.firing = false; f.consumed++ }
func (f *fakeTarget) TakeDamage(n int)      { f.damage += n }
func (f *fakeTarget) OnKill()               { f.kills++ }

var (
	hall = [][]int{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	corridor = [][]int{
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
	}
	divided = [][]int{
		{1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 1, 0, 0, 1},
		{1, 0, 0, 1, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1},
	}
)

func newTestEnv(layout [][]int, target *fakeTarget) (*Environment, *audio.Recorder) {
	grid := world.NewGrid(layout)
	proj := config.NewProjection(320, 200, 160, math.Pi/3, 20, 64)
	rec := &audio.Recorder{}
	env := &Environment{
		Grid:         grid,
		Integrator:   collision.NewIntegrator(grid),
		Pathfinder:   pathfinding.NewPathfinder(pathfinding.NewGraph(grid), pathfinding.CacheOccupancy),
		Occupancy:    pathfinding.NewOccupancy(),
		Projector:    sprite.NewProjector(proj),
		View:         world.Viewpoint{X: target.pos.X, Y: target.pos.Y},
		Target:       target,
		Audio:        rec,
		MaxDepth:     20,
		HalfWidth:    proj.HalfWidth,
		WeaponDamage: 50,
		Rand:         rand.New(rand.NewSource(1)),
	}
	return env, rec
}

func tick(env *Environment, dt float64, enemies ...*Enemy) {
	FillOccupancy(env.Occupancy, enemies)
	for _, e := range enemies {
		e.Animate(dt)
		e.Update(env)
	}
}

func TestEnemyIdleWithoutSight(t *testing.T) {
	target := &fakeTarget{pos: world.Point{X: 5.5, Y: 3.5}}
	env, _ := newTestEnv(divided, target)
	e := NewEnemy("trooper", world.Point{X: 1.5, Y: 3.5}, testStats(), testAnims(), nil)

	for i := 0; i < 10; i++ {
		tick(env, 100, e)
	}
	if e.Sight || e.SearchActive {
		t.Fatalf("sight=%v search=%v, expected the wall to hide the player", e.Sight, e.SearchActive)
	}
	if e.State != StateIdle {
		t.Errorf("state = %v, want idle", e.State)
	}
	if e.Pos != (world.Point{X: 1.5, Y: 3.5}) {
		t.Errorf("idle enemy moved to %+v", e.Pos)
	}
}

func TestEnemyChasesWhenSeen(t *testing.T) {
	target := &fakeTarget{pos: world.Point{X: 1.5, Y: 1.5}}
	env, _ := newTestEnv(hall, target)
	e := NewEnemy("trooper", world.Point{X: 8.5, Y: 1.5}, testStats(), testAnims(), nil)

	tick(env, 10, e)
	if !e.Sight || !e.SearchActive {
		t.Fatalf("sight=%v search=%v", e.Sight, e.SearchActive)
	}
	if e.State != StateSearching {
		t.Errorf("state = %v, want searching", e.State)
	}
	if e.Pos.X >= 8.5 {
		t.Errorf("enemy did not approach: %+v", e.Pos)
	}

	before := e.Pos.DistanceTo(target.pos)
	for i := 0; i < 50; i++ {
		tick(env, 10, e)
	}
	if after := e.Pos.DistanceTo(target.pos); after >= before {
		t.Errorf("distance grew from %.3f to %.3f", before, after)
	}
}

func TestEnemyKeepsSearchingAfterLosingSight(t *testing.T) {
	target := &fakeTarget{pos: world.Point{X: 1.5, Y: 1.5}}
	env, _ := newTestEnv(divided, target)
	e := NewEnemy("trooper", world.Point{X: 1.5, Y: 3.5}, testStats(), testAnims(), nil)
	e.AttackRange = 1

	tick(env, 10, e)
	if !e.SearchActive {
		t.Fatal("expected the first sighting to activate search")
	}

	target.pos = world.Point{X: 4.5, Y: 3.5}
	env.View = world.Viewpoint{X: 4.5, Y: 3.5}
	tick(env, 10, e)
	if e.Sight {
		t.Fatal("player behind the divider should be hidden")
	}
	if e.State != StateSearching {
		t.Errorf("state = %v, want searching", e.State)
	}
}

func TestEnemyAttacksInRange(t *testing.T) {
	target := &fakeTarget{pos: world.Point{X: 1.5, Y: 1.5}}
	env, rec := newTestEnv(hall, target)
	e := NewEnemy("trooper", world.Point{X: 3.5, Y: 1.5}, testStats(), testAnims(), nil)

	for i := 0; i < 3; i++ {
		tick(env, 100, e)
	}
	if e.State != StateAttacking {
		t.Fatalf("state = %v, want attacking", e.State)
	}
	if got := rec.Count(audio.EnemyAttack); got != 3 {
		t.Errorf("attack events = %d, want 3", got)
	}
	if target.damage != 30 {
		t.Errorf("damage = %d, want 30 at precision 1", target.damage)
	}
	if e.Pos != (world.Point{X: 3.5, Y: 1.5}) {
		t.Errorf("attacking enemy moved to %+v", e.Pos)
	}
}

func TestEnemyAttackPrecision(t *testing.T) {
	target := &fakeTarget{pos: world.Point{X: 1.5, Y: 1.5}}
	env, rec := newTestEnv(hall, target)
	s := testStats()
	s.Precision = 0
	e := NewEnemy("trooper", world.Point{X: 3.5, Y: 1.5}, s, testAnims(), nil)

	for i := 0; i < 5; i++ {
		tick(env, 100, e)
	}
	if rec.Count(audio.EnemyAttack) != 5 {
		t.Errorf("attack events = %d, want 5", rec.Count(audio.EnemyAttack))
	}
	if target.damage != 0 {
		t.Errorf("precision 0 should never land, damage = %d", target.damage)
	}
}

func TestEnemyAttacksOnlyOnFrameTrigger(t *testing.T) {
	target := &fakeTarget{pos: world.Point{X: 1.5, Y: 1.5}}
	env, rec := newTestEnv(hall, target)
	e := NewEnemy("trooper", world.Point{X: 3.5, Y: 1.5}, testStats(), testAnims(), nil)

	for i := 0; i < 9; i++ {
		tick(env, 25, e)
	}
	// 225ms at a 100ms period fires twice
	if got := rec.Count(audio.EnemyAttack); got != 2 {
		t.Errorf("attack events = %d, want 2", got)
	}
}

func TestShotHitsEnemyUnderCrosshair(t *testing.T) {
	target := &fakeTarget{pos: world.Point{X: 1.5, Y: 1.5}, firing: true}
	env, rec := newTestEnv(hall, target)
	e := NewEnemy("trooper", world.Point{X: 5.5, Y: 1.5}, testStats(), testAnims(), nil)

	tick(env, 10, e)
	if target.consumed != 1 || target.firing {
		t.Fatalf("shot not consumed: consumed=%d firing=%v", target.consumed, target.firing)
	}
	if e.Health != 50 {
		t.Errorf("health = %d, want 50", e.Health)
	}
	if e.State != StatePain || !e.InPain() {
		t.Errorf("state = %v pain = %v", e.State, e.InPain())
	}
	if rec.Count(audio.EnemyPain) != 1 {
		t.Errorf("pain events = %d", rec.Count(audio.EnemyPain))
	}
}

func TestShotMissesEnemyOffCrosshair(t *testing.T) {
	target := &fakeTarget{pos: world.Point{X: 1.5, Y: 1.5}, firing: true}
	env, _ := newTestEnv(hall, target)
	e := NewEnemy("trooper", world.Point{X: 5.5, Y: 2.4}, testStats(), testAnims(), nil)

	tick(env, 10, e)
	if !e.Sight {
		t.Fatal("enemy should be visible in the open hall")
	}
	if target.consumed != 0 || !target.firing {
		t.Errorf("shot consumed by an enemy off the crosshair")
	}
	if e.Health != 100 {
		t.Errorf("health = %d, want 100", e.Health)
	}
}

func TestShotBlockedByWall(t *testing.T) {
	target := &fakeTarget{pos: world.Point{X: 1.5, Y: 3.5}, firing: true}
	env, _ := newTestEnv(divided, target)
	e := NewEnemy("trooper", world.Point{X: 5.5, Y: 3.5}, testStats(), testAnims(), nil)

	tick(env, 10, e)
	if target.consumed != 0 || e.Health != 100 {
		t.Errorf("shot went through a wall: consumed=%d health=%d", target.consumed, e.Health)
	}
}

func TestEnemyKilledByShots(t *testing.T) {
	target := &fakeTarget{pos: world.Point{X: 1.5, Y: 1.5}, firing: true}
	env, rec := newTestEnv(hall, target)
	e := NewEnemy("trooper", world.Point{X: 5.5, Y: 1.5}, testStats(), testAnims(), nil)

	tick(env, 10, e)
	target.firing = true
	tick(env, 10, e)

	if e.IsAlive() {
		t.Fatalf("enemy survived two 50 damage shots, health %d", e.Health)
	}
	if e.State != StateDead {
		t.Errorf("state = %v, want dead", e.State)
	}
	if target.kills != 1 {
		t.Errorf("kills = %d, want 1", target.kills)
	}
	if rec.Count(audio.EnemyDeath) != 1 || rec.Count(audio.EnemyPain) != 2 {
		t.Errorf("events = %v", rec.Events())
	}

	pos := e.Pos
	for i := 0; i < 10; i++ {
		target.firing = true
		tick(env, 100, e)
	}
	if e.Pos != pos {
		t.Errorf("dead enemy moved to %+v", e.Pos)
	}
	if !e.death.AtEnd() {
		t.Errorf("death animation at %d, want last frame", e.death.Index())
	}
	if target.kills != 1 || target.consumed != 2 {
		t.Errorf("dead enemy still absorbs shots: kills=%d consumed=%d", target.kills, target.consumed)
	}
}

func TestPainClearsOnFrameTrigger(t *testing.T) {
	target := &fakeTarget{pos: world.Point{X: 1.5, Y: 1.5}, firing: true}
	env, _ := newTestEnv(hall, target)
	e := NewEnemy("trooper", world.Point{X: 5.5, Y: 1.5}, testStats(), testAnims(), nil)

	tick(env, 50, e)
	if !e.InPain() {
		t.Fatal("expected pain after the hit")
	}
	tick(env, 50, e)
	if e.InPain() {
		t.Fatal("pain should clear once the animation clock fires")
	}
	tick(env, 50, e)
	if e.State == StatePain {
		t.Errorf("state = %v after pain cleared", e.State)
	}
}

func TestEnemyWaitsBehindOccupiedTile(t *testing.T) {
	target := &fakeTarget{pos: world.Point{X: 1.5, Y: 1.5}}
	env, _ := newTestEnv(corridor, target)
	front := NewEnemy("trooper", world.Point{X: 4.5, Y: 1.5}, testStats(), testAnims(), nil)
	back := NewEnemy("trooper", world.Point{X: 5.5, Y: 1.5}, testStats(), testAnims(), nil)
	front.AttackRange, back.AttackRange = 10, 1

	tick(env, 10, front, back)
	if back.State != StateSearching {
		t.Fatalf("back state = %v, want searching", back.State)
	}
	if back.Pos != (world.Point{X: 5.5, Y: 1.5}) {
		t.Errorf("back enemy walked into an occupied corridor: %+v", back.Pos)
	}
}

func TestEnemyDirectChaseWithoutPathfinder(t *testing.T) {
	target := &fakeTarget{pos: world.Point{X: 1.5, Y: 1.5}}
	env, _ := newTestEnv(corridor, target)
	env.Pathfinder = nil
	e := NewEnemy("trooper", world.Point{X: 5.5, Y: 1.5}, testStats(), testAnims(), nil)
	e.AttackRange = 1

	tick(env, 10, e)
	if e.Pos.X >= 5.5 || e.Pos.Y != 1.5 {
		t.Errorf("direct chase moved to %+v", e.Pos)
	}
}

func TestEnemyNeverEntersWall(t *testing.T) {
	layout := [][]int{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 1, 1, 0, 0, 1, 1, 0, 1},
		{1, 0, 0, 1, 0, 0, 1, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	target := &fakeTarget{pos: world.Point{X: 1.5, Y: 4.5}}
	env, _ := newTestEnv(layout, target)
	enemies := []*Enemy{
		NewEnemy("trooper", world.Point{X: 8.5, Y: 1.5}, testStats(), testAnims(), nil),
		NewEnemy("trooper", world.Point{X: 7.5, Y: 3.5}, testStats(), testAnims(), nil),
		NewEnemy("trooper", world.Point{X: 4.5, Y: 3.5}, testStats(), testAnims(), nil),
	}
	for _, e := range enemies {
		e.AttackRange = 1
		e.SearchActive = true
	}

	spots := []world.Point{{X: 1.5, Y: 4.5}, {X: 8.5, Y: 4.5}, {X: 1.5, Y: 1.5}, {X: 5.5, Y: 1.5}}
	for i := 0; i < 4000; i++ {
		if i%500 == 0 {
			target.pos = spots[(i/500)%len(spots)]
			env.View = world.Viewpoint{X: target.pos.X, Y: target.pos.Y}
		}
		tick(env, 16, enemies...)
		for _, e := range enemies {
			if !env.Grid.IsOpen(e.Tile()) {
				t.Fatalf("tick %d: enemy %s entered wall tile %v at %+v", i, e.ID, e.Tile(), e.Pos)
			}
		}
	}
}
