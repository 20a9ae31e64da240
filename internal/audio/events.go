package audio

import "sync"

// Event is a game moment that may make a sound.
type Event int

const (
	Shot Event = iota
	EnemyPain
	EnemyDeath
	EnemyAttack
	PlayerPain
	numEvents
)

func (e Event) String() string {
	switch e {
	case Shot:
		return "shot"
	case EnemyPain:
		return "enemy_pain"
	case EnemyDeath:
		return "enemy_death"
	case EnemyAttack:
		return "enemy_attack"
	case PlayerPain:
		return "player_pain"
	}
	return "unknown"
}

// Sink receives fire-and-forget sound triggers.
type Sink interface {
	Play(e Event)
}

// Nop discards every event.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Event) {}

// Recorder keeps every event it receives. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Play records e.
func (r *Recorder) Play(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Count returns how many times e was played.
func (r *Recorder) Count(e Event) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.events {
		if got == e {
			n++
		}
	}
	return n
}

// Reset forgets recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
