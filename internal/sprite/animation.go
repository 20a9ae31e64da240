package sprite

import "gridcaster/internal/render"

// Clock accumulates elapsed time and fires once per Period.
type Clock struct {
	Period    float64 // milliseconds
	elapsed   float64
	triggered bool
}

// Advance adds dt milliseconds and reports whether a period boundary was
// crossed. At most one trigger is reported per call and the leftover time
// never exceeds one period.
func (c *Clock) Advance(dt float64) bool {
	c.triggered = false
	if c.Period <= 0 {
		c.triggered = true
		return true
	}
	if dt > 0 {
		c.elapsed += dt
	}
	if c.elapsed >= c.Period {
		c.elapsed -= c.Period
		if c.elapsed >= c.Period {
			c.elapsed = 0
		}
		c.triggered = true
	}
	return c.triggered
}

// Triggered reports whether the last Advance fired.
func (c *Clock) Triggered() bool {
	return c.triggered
}

// Reset clears accumulated time.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.triggered = false
}

// Animation is an ordered frame sequence with a cursor.
type Animation struct {
	Frames []render.Image
	pos    int
}

// Frame returns the current frame, or nil for an empty animation.
func (a *Animation) Frame() render.Image {
	if len(a.Frames) == 0 {
		return nil
	}
	return a.Frames[a.pos]
}

// Step moves to the next frame, wrapping around.
func (a *Animation) Step() render.Image {
	if len(a.Frames) == 0 {
		return nil
	}
	a.pos = (a.pos + 1) % len(a.Frames)
	return a.Frames[a.pos]
}

// StepOnce moves to the next frame but stops on the last one. It reports
// whether the cursor moved.
func (a *Animation) StepOnce() bool {
	if a.pos >= len(a.Frames)-1 {
		return false
	}
	a.pos++
	return true
}

// Index returns the cursor position.
func (a *Animation) Index() int {
	return a.pos
}

// AtEnd reports whether the cursor is on the last frame.
func (a *Animation) AtEnd() bool {
	return len(a.Frames) == 0 || a.pos == len(a.Frames)-1
}

// Rewind returns to the first frame.
func (a *Animation) Rewind() {
	a.pos = 0
}
