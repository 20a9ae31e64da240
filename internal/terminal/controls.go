package terminal

import (
	"github.com/gdamore/tcell/v2"

	"gridcaster/internal/game"
)

// DefaultHold is how many ticks a key press keeps its action held.
// Terminals report presses and auto-repeat but never releases.
const DefaultHold = 8

type action int

const (
	actForward action = iota
	actBack
	actStrafeLeft
	actStrafeRight
	actTurnLeft
	actTurnRight
	actCount
)

// Controls turns tcell key events into per-tick intents.
type Controls struct {
	hold    int
	held    [actCount]int
	fire    bool
	pause   bool
	restart bool
}

// NewControls creates controls holding each press for hold ticks.
func NewControls(hold int) *Controls {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Controls{hold: hold}
}

// Handle records a key event. It reports true for the quit keys.
func (c *Controls) Handle(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		c.press(actForward)
	case tcell.KeyDown:
		c.press(actBack)
	case tcell.KeyLeft:
		c.press(actTurnLeft)
	case tcell.KeyRight:
		c.press(actTurnRight)
	case tcell.KeyEscape:
		c.pause = true
	case tcell.KeyEnter:
		c.restart = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'w', 'W':
			c.press(actForward)
		case 's', 'S':
			c.press(actBack)
		case 'a', 'A':
			c.press(actStrafeLeft)
		case 'd', 'D':
			c.press(actStrafeRight)
		case ',', '<':
			c.press(actTurnLeft)
		case '.', '>':
			c.press(actTurnRight)
		case ' ', 'f', 'F':
			c.fire = true
		case 'p', 'P':
			c.pause = true
		case 'r', 'R':
			c.restart = true
		}
	}
	return false
}

func (c *Controls) press(a action) {
	c.held[a] = c.hold
	switch a {
	case actForward:
		c.held[actBack] = 0
	case actBack:
		c.held[actForward] = 0
	case actStrafeLeft:
		c.held[actStrafeRight] = 0
	case actStrafeRight:
		c.held[actStrafeLeft] = 0
	case actTurnLeft:
		c.held[actTurnRight] = 0
	case actTurnRight:
		c.held[actTurnLeft] = 0
	}
}

// Intent returns this tick's intent and ages held actions. Buttons are
// reported once.
func (c *Controls) Intent() game.Intent {
	in := game.Intent{
		Forward: game.Axis(c.held[actBack] > 0, c.held[actForward] > 0),
		Strafe:  game.Axis(c.held[actStrafeLeft] > 0, c.held[actStrafeRight] > 0),
		Turn:    game.Axis(c.held[actTurnLeft] > 0, c.held[actTurnRight] > 0),
		Fire:    c.fire,
		Pause:   c.pause,
		Restart: c.restart,
	}
	for i := range c.held {
		if c.held[i] > 0 {
			c.held[i]--
		}
	}
	c.fire, c.pause, c.restart = false, false, false
	return in
}
