package raycast

import (
	"math"

	"gridcaster/internal/mathutil"
	"gridcaster/internal/world"
)

// parallelEpsilon is the smallest |sin| or |cos| a march will step with.
// Below it the ray runs along that family's grid lines and never crosses one.
const parallelEpsilon = 1e-9

// backstep puts a line coordinate just inside the tile behind the boundary
// when marching in the negative direction.
const backstep = 1e-6

// outcome is what a march probe reports for one tile.
type outcome int

const (
	outcomeContinue outcome = iota
	outcomeWall
	outcomeTarget
)

// probeFunc classifies a tile a march has stepped into.
type probeFunc func(t world.Tile) outcome

// marchResult is where one family of grid lines stopped the ray.
type marchResult struct {
	Outcome outcome
	Depth   float64 // distance along the ray, not fisheye corrected
	X, Y    float64 // intersection point
	Tile    world.Tile
}

// stopped reports whether the march ended on a wall or the target.
func (m marchResult) stopped() bool {
	return m.Outcome != outcomeContinue
}

// marchHorizontal steps the ray from (ox, oy) across successive horizontal
// grid lines (integer y) for at most maxDepth lines.
func marchHorizontal(ox, oy, sin, cos float64, maxDepth int, probe probeFunc) marchResult {
	if math.Abs(sin) < parallelEpsilon {
		return marchResult{}
	}
	mapY := math.Floor(oy)
	y, dy := mapY+1, 1.0
	if sin < 0 {
		y, dy = mapY-backstep, -1
	}
	depth := (y - oy) / sin
	x := ox + depth*cos
	deltaDepth := dy / sin
	dx := deltaDepth * cos

	for i := 0; i < maxDepth; i++ {
		tile := world.Tile{X: mathutil.FloorInt(x), Y: mathutil.FloorInt(y)}
		if o := probe(tile); o != outcomeContinue {
			return marchResult{Outcome: o, Depth: depth, X: x, Y: y, Tile: tile}
		}
		x += dx
		y += dy
		depth += deltaDepth
	}
	return marchResult{}
}

// marchVertical is marchHorizontal for vertical grid lines (integer x).
func marchVertical(ox, oy, sin, cos float64, maxDepth int, probe probeFunc) marchResult {
	if math.Abs(cos) < parallelEpsilon {
		return marchResult{}
	}
	mapX := math.Floor(ox)
	x, dx := mapX+1, 1.0
	if cos < 0 {
		x, dx = mapX-backstep, -1
	}
	depth := (x - ox) / cos
	y := oy + depth*sin
	deltaDepth := dx / cos
	dy := deltaDepth * sin

	for i := 0; i < maxDepth; i++ {
		tile := world.Tile{X: mathutil.FloorInt(x), Y: mathutil.FloorInt(y)}
		if o := probe(tile); o != outcomeContinue {
			return marchResult{Outcome: o, Depth: depth, X: x, Y: y, Tile: tile}
		}
		x += dx
		y += dy
		depth += deltaDepth
	}
	return marchResult{}
}

// wallProbe stops on any wall tile of g.
func wallProbe(g *world.Grid) probeFunc {
	return func(t world.Tile) outcome {
		if g.IsWall(t) {
			return outcomeWall
		}
		return outcomeContinue
	}
}
