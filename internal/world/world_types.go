package world

import (
	"math"

	"gridcaster/internal/mathutil"
)

// Material identifies a wall texture. Zero means open floor; any positive
// value is both a wall marker and a texture selector.
type Material int

// MaterialNone is the open-floor material.
const MaterialNone Material = 0

// Tile is an integer grid coordinate.
type Tile struct {
	X int
	Y int
}

// Add returns the tile offset by (dx, dy).
func (t Tile) Add(dx, dy int) Tile {
	return Tile{X: t.X + dx, Y: t.Y + dy}
}

// Center returns the continuous position of the tile centre.
func (t Tile) Center() Point {
	return Point{X: float64(t.X) + 0.5, Y: float64(t.Y) + 0.5}
}

// Point is a continuous position in tile units.
type Point struct {
	X float64
	Y float64
}

// Tile returns the tile containing the point.
func (p Point) Tile() Tile {
	return TileAt(p.X, p.Y)
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// TileAt floors a continuous position to its tile.
func TileAt(x, y float64) Tile {
	return Tile{X: mathutil.FloorInt(x), Y: mathutil.FloorInt(y)}
}

// Viewpoint is a position plus heading. The heading is kept in [0, 2π).
type Viewpoint struct {
	X     float64
	Y     float64
	Angle float64
}

// Position returns the viewpoint position.
func (v Viewpoint) Position() Point {
	return Point{X: v.X, Y: v.Y}
}

// Tile returns the tile the viewpoint stands in.
func (v Viewpoint) Tile() Tile {
	return TileAt(v.X, v.Y)
}

// Rotate turns the heading by delta radians and wraps it back into [0, 2π).
func (v *Viewpoint) Rotate(delta float64) {
	v.Angle = mathutil.WrapAngle(v.Angle + delta)
}

// Forward returns the unit heading vector.
func (v Viewpoint) Forward() (float64, float64) {
	return math.Cos(v.Angle), math.Sin(v.Angle)
}

// Pos returns the point coordinates.
func (p Point) Pos() (float64, float64) { return p.X, p.Y }

// SetPos moves the point.
func (p *Point) SetPos(x, y float64) { p.X, p.Y = x, y }

// Pos returns the viewpoint coordinates.
func (v Viewpoint) Pos() (float64, float64) { return v.X, v.Y }

// SetPos moves the viewpoint without changing its heading.
func (v *Viewpoint) SetPos(x, y float64) { v.X, v.Y = x, y }
