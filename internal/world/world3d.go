package world

// Grid is the static tile world: a sparse map from tile to wall material.
// Tiles absent from the map are open. The grid is built once per round and
// never mutated afterwards.
type Grid struct {
	Width  int
	Height int
	walls  map[Tile]Material
}

// NewGrid builds a grid from rows of material ids, where 0 (or any
// non-positive id) is open floor. Width is the longest row so ragged input is
// tolerated here; level loading rejects it earlier.
func NewGrid(layout [][]int) *Grid {
	g := &Grid{
		Height: len(layout),
		walls:  make(map[Tile]Material),
	}
	for y, row := range layout {
		if len(row) > g.Width {
			g.Width = len(row)
		}
		for x, id := range row {
			if id > 0 {
				g.walls[Tile{X: x, Y: y}] = Material(id)
			}
		}
	}
	return g
}

// MaterialAt returns the wall material at t and whether t is a wall.
func (g *Grid) MaterialAt(t Tile) (Material, bool) {
	m, ok := g.walls[t]
	return m, ok
}

// IsWall reports whether t holds a wall.
func (g *Grid) IsWall(t Tile) bool {
	_, ok := g.walls[t]
	return ok
}

// IsTileBlocking satisfies collision.TileChecker.
func (g *Grid) IsTileBlocking(tileX, tileY int) bool {
	return g.IsWall(Tile{X: tileX, Y: tileY})
}

// InBounds reports whether t lies within the layout extents.
func (g *Grid) InBounds(t Tile) bool {
	return t.X >= 0 && t.Y >= 0 && t.X < g.Width && t.Y < g.Height
}

// IsOpen reports whether t is inside the layout and not a wall.
func (g *Grid) IsOpen(t Tile) bool {
	return g.InBounds(t) && !g.IsWall(t)
}

// GetWorldBounds returns the layout extents in tiles.
func (g *Grid) GetWorldBounds() (width, height int) {
	return g.Width, g.Height
}

// WallCount returns the number of wall tiles.
func (g *Grid) WallCount() int {
	return len(g.walls)
}

// OpenTiles lists every open in-bounds tile in row-major order.
func (g *Grid) OpenTiles() []Tile {
	tiles := make([]Tile, 0, g.Width*g.Height-len(g.walls))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			t := Tile{X: x, Y: y}
			if !g.IsWall(t) {
				tiles = append(tiles, t)
			}
		}
	}
	return tiles
}
