package raycast

import (
	"math"

	"gridcaster/internal/config"
	"gridcaster/internal/mathutil"
	"gridcaster/internal/world"
)

// firstRayNudge keeps the first ray off exact axis-aligned headings.
const firstRayNudge = 0.0001

// heightEpsilon bounds projected wall height for a viewpoint touching a wall.
const heightEpsilon = 0.0001

// Column is the wall visible through one screen column.
type Column struct {
	Index    int
	Angle    float64 // absolute ray angle
	Depth    float64 // fisheye corrected; MaxDepth for background
	Height   float64 // projected wall height in pixels
	Material world.Material
	Offset   float64 // texture u in [0, 1)
	Hit      bool
	Vertical bool // the vertical-line march won
}

// Caster casts the per-frame fan of rays for a fixed projection.
type Caster struct {
	proj    config.Projection
	columns []Column
}

// NewCaster creates a caster for proj.
func NewCaster(proj config.Projection) *Caster {
	return &Caster{
		proj:    proj,
		columns: make([]Column, proj.NumRays),
	}
}

// Projection returns the projection the caster was built with.
func (c *Caster) Projection() config.Projection {
	return c.proj
}

// Cast returns exactly NumRays columns left to right. The returned slice is
// reused by the next call.
func (c *Caster) Cast(g *world.Grid, vp world.Viewpoint) []Column {
	angle := vp.Angle - c.proj.HalfFOV + firstRayNudge
	for i := range c.columns {
		c.columns[i] = c.castRay(g, vp, i, angle)
		angle += c.proj.AngleStep
	}
	return c.columns
}

// CastRay resolves a single ray at an absolute angle.
func (c *Caster) CastRay(g *world.Grid, vp world.Viewpoint, angle float64) Column {
	return c.castRay(g, vp, 0, angle)
}

func (c *Caster) castRay(g *world.Grid, vp world.Viewpoint, index int, angle float64) Column {
	sin, cos := math.Sincos(angle)
	probe := wallProbe(g)
	hor := marchHorizontal(vp.X, vp.Y, sin, cos, c.proj.MaxDepth, probe)
	ver := marchVertical(vp.X, vp.Y, sin, cos, c.proj.MaxDepth, probe)

	col := Column{
		Index: index,
		Angle: angle,
		Depth: float64(c.proj.MaxDepth),
	}

	var win marchResult
	switch {
	case hor.stopped() && ver.stopped():
		win = hor
		col.Vertical = ver.Depth < hor.Depth
		if col.Vertical {
			win = ver
		}
	case ver.stopped():
		win, col.Vertical = ver, true
	case hor.stopped():
		win = hor
	default:
		col.Height = c.proj.ScreenDistance / (col.Depth + heightEpsilon)
		return col
	}

	if col.Vertical {
		col.Offset = mathutil.Frac(win.Y)
		if cos <= 0 {
			col.Offset = mathutil.Frac(1 - win.Y)
		}
	} else {
		col.Offset = mathutil.Frac(1 - win.X)
		if sin <= 0 {
			col.Offset = mathutil.Frac(win.X)
		}
	}

	col.Hit = true
	col.Material, _ = g.MaterialAt(win.Tile)
	col.Depth = math.Max(0, win.Depth*math.Cos(vp.Angle-angle))
	col.Height = c.proj.ScreenDistance / (col.Depth + heightEpsilon)
	return col
}
