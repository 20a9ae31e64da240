package monster

import "gridcaster/internal/render"

// State is what an enemy did on its last update.
type State int

const (
	StateIdle State = iota
	StateSearching
	StateAttacking
	StatePain
	StateDead
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateAttacking:
		return "attacking"
	case StatePain:
		return "pain"
	case StateDead:
		return "dead"
	}
	return "unknown"
}

// Animations holds the frame sets an enemy switches between.
type Animations struct {
	Idle   []render.Image
	Walk   []render.Image
	Attack []render.Image
	Pain   []render.Image
	Death  []render.Image
}

// withFallback fills empty sets with the idle frames.
func (a Animations) withFallback() Animations {
	for _, set := range []*[]render.Image{&a.Walk, &a.Attack, &a.Pain, &a.Death} {
		if len(*set) == 0 {
			*set = a.Idle
		}
	}
	return a
}
