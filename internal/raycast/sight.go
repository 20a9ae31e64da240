package raycast

import (
	"math"

	"gridcaster/internal/world"
)

// LineOfSight reports whether to is visible from from: marching from from
// toward to, the target tile is reached before any wall tile. Points sharing
// a tile always see each other.
func LineOfSight(g *world.Grid, from, to world.Point, maxDepth int) bool {
	target := to.Tile()
	if from.Tile() == target {
		return true
	}

	sin, cos := math.Sincos(math.Atan2(to.Y-from.Y, to.X-from.X))
	probe := func(t world.Tile) outcome {
		if t == target {
			return outcomeTarget
		}
		if g.IsWall(t) {
			return outcomeWall
		}
		return outcomeContinue
	}

	var targetDepth, wallDepth float64
	for _, m := range []marchResult{
		marchHorizontal(from.X, from.Y, sin, cos, maxDepth, probe),
		marchVertical(from.X, from.Y, sin, cos, maxDepth, probe),
	} {
		switch m.Outcome {
		case outcomeTarget:
			targetDepth = math.Max(targetDepth, m.Depth)
		case outcomeWall:
			wallDepth = math.Max(wallDepth, m.Depth)
		}
	}

	return targetDepth > 0 && (wallDepth == 0 || targetDepth < wallDepth)
}
