package monster

import (
	"math"

	"gridcaster/internal/world"
)

// headingTo returns the angle from p to the centre of tile t.
func headingTo(p world.Point, t world.Tile) float64 {
	c := t.Center()
	return math.Atan2(c.Y-p.Y, c.X-p.X)
}

// rollAttackRange picks a whole-tile attack distance in [lo, hi].
func rollAttackRange(lo, hi int, intn func(int) int) int {
	if hi <= lo {
		return lo
	}
	return lo + intn(hi-lo+1)
}
