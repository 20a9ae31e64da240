package collision

import (
	"math"

	"gridcaster/internal/mathutil"
)

// TileChecker interface for checking if tiles block movement
type TileChecker interface {
	IsTileBlocking(tileX, tileY int) bool
	GetWorldBounds() (width, height int)
}

// Position is anything with a mutable continuous position in tile units.
type Position interface {
	Pos() (x, y float64)
	SetPos(x, y float64)
}

// Integrator applies desired displacements against the tile grid one axis at
// a time, so an entity blocked on one axis still slides along the other.
type Integrator struct {
	tileChecker TileChecker
}

// NewIntegrator creates a movement integrator over the given tiles.
func NewIntegrator(tileChecker TileChecker) *Integrator {
	return &Integrator{tileChecker: tileChecker}
}

// UpdateTileChecker swaps the grid (used when a round restarts)
func (in *Integrator) UpdateTileChecker(tileChecker TileChecker) {
	in.tileChecker = tileChecker
}

// Scale converts a collision radius into the look-ahead factor applied to a
// displacement. dt is the frame delta in the same unit the entity's speed is
// expressed in; dt <= 0 is treated as one unit.
func Scale(radius, dt float64) float64 {
	if dt <= 0 {
		dt = 1
	}
	return radius / dt
}

// IsOpen reports whether the floored position (x, y) may be occupied.
// Tiles outside the world bounds are never open.
func (in *Integrator) IsOpen(x, y float64) bool {
	tx, ty := mathutil.FloorInt(x), mathutil.FloorInt(y)
	width, height := in.tileChecker.GetWorldBounds()
	if tx < 0 || ty < 0 || tx >= width || ty >= height {
		return false
	}
	return !in.tileChecker.IsTileBlocking(tx, ty)
}

// Step resolves a desired displacement (dx, dy) from (x, y) and returns the
// new position. The x axis is probed first; the y probe then uses the
// possibly updated x. An axis commits only when every tile from the current
// one out to the farther of the look-ahead (d*scale) and the landing point
// (d) is open, so steps longer than a tile never cross a wall.
func (in *Integrator) Step(x, y, dx, dy, scale float64) (float64, float64) {
	if dx != 0 && in.spanOpen(x, dx, scale, func(tx int) bool {
		return in.IsOpen(float64(tx), y)
	}) {
		x += dx
	}
	if dy != 0 && in.spanOpen(y, dy, scale, func(ty int) bool {
		return in.IsOpen(x, float64(ty))
	}) {
		y += dy
	}
	return x, y
}

// spanOpen walks the tiles crossed along one axis from v to the farther of
// v+d*scale and v+d, excluding the tile v starts in.
func (in *Integrator) spanOpen(v, d, scale float64, open func(t int) bool) bool {
	reach := d
	if math.Abs(d*scale) > math.Abs(d) {
		reach = d * scale
	}
	from, to := mathutil.FloorInt(v), mathutil.FloorInt(v+reach)
	step := 1
	if to < from {
		step = -1
	}
	for t := from + step; t != to+step; t += step {
		if !open(t) {
			return false
		}
	}
	return true
}

// Move applies Step to p in place and reports whether it moved at all.
func (in *Integrator) Move(p Position, dx, dy, scale float64) bool {
	x, y := p.Pos()
	nx, ny := in.Step(x, y, dx, dy, scale)
	if nx == x && ny == y {
		return false
	}
	p.SetPos(nx, ny)
	return true
}
